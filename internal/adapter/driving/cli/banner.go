package cli

import (
	"fmt"
	"io"

	"github.com/diillson/azure-usage-report-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
// O banner vai para w (stderr) para não se misturar ao relatório.
func displayWelcomeBanner(w io.Writer) {
	banner := `
   _   _                         ____                       _
  | | | |___  __ _  __ _  ___   |  _ \ ___ _ __   ___  _ __| |_
  | | | / __|/ _' |/ _' |/ _ \  | |_) / _ \ '_ \ / _ \| '__| __|
  | |_| \__ \ (_| | (_| |  __/  |  _ <  __/ |_) | (_) | |  | |_
   \___/|___/\__,_|\__, |\___|  |_| \_\___| .__/ \___/|_|   \__|
                   |___/                  |_|
`
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, cyan(banner))
	fmt.Fprintln(w, blue(fmt.Sprintf("Azure Usage Cost Report CLI (v%s)", version.FormatVersion())))
}
