package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

// Info agrupa os dados de build exibidos por --version.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
}

// settingsReader abstrai debug.ReadBuildInfo para testes.
type settingsReader func() (map[string]string, bool)

func readBuildSettings() (map[string]string, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return nil, false
	}
	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}
	return settings, true
}

// resolve completa base com as informações de VCS embutidas pelo Go.
// Valores vindos de ldflags (versão diferente de dev) nunca são sobrescritos.
func resolve(base Info, read settingsReader) Info {
	if base.Version != "" && base.Version != "0.0.0-dev" {
		return base
	}

	settings, ok := read()
	if !ok {
		return base
	}

	if base.Commit == "" {
		if rev := settings["vcs.revision"]; len(rev) >= 7 {
			base.Commit = rev[:7]
		}
	}

	if base.BuildTime == "" {
		if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			base.BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	if tag := settings["vcs.tag"]; tag != "" {
		base.Version = strings.TrimPrefix(tag, "v")
		if strings.EqualFold(settings["vcs.modified"], "true") {
			base.Version += "-dirty"
		}
	}

	return base
}

func init() {
	info := resolve(Info{Version: Version, Commit: Commit, BuildTime: BuildTime}, readBuildSettings)
	Version, Commit, BuildTime = info.Version, info.Commit, info.BuildTime
}

// Get devolve as informações de build atuais.
func Get() Info {
	return Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
}

// String formata a versão com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func (i Info) String() string {
	ver := i.Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	if i.Commit == "" {
		if i.BuildTime == "" {
			return fmt.Sprintf("%s (development)", ver)
		}
		return fmt.Sprintf("%s (commit: development, built at: %s)", ver, i.BuildTime)
	}

	if i.BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, i.Commit, i.BuildTime)
	}

	return fmt.Sprintf("%s (commit: %s)", ver, i.Commit)
}

// FormatVersion retorna a versão formatada do binário atual.
func FormatVersion() string {
	return Get().String()
}
