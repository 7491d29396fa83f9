package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/azure-usage-report-go/pkg/console"
	"github.com/diillson/azure-usage-report-go/pkg/version"

	"github.com/diillson/azure-usage-report-go/internal/application/usecase"
	"github.com/diillson/azure-usage-report-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp() *CLIApp {
	app := &CLIApp{}

	rootCmd := &cobra.Command{
		Use:           "usage-report",
		Short:         "Monthly cost report from Azure consumption exports",
		Long:          "Reads monthly usage export files (JSON), aggregates pretax cost by meter category and resource, and prints a report per month plus a cost trend.",
		Version:       version.FormatVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Usage Report version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("input-dir", "i", "", "Directory holding the usage export files (default: current directory)")
	rootCmd.PersistentFlags().StringArrayP("period", "p", nil, "Billing period as label=file, repeatable and processed in order (default: August to October 2025 exports)")
	rootCmd.PersistentFlags().String("currency", "", "Currency symbol appended to amounts (default: €)")
	rootCmd.PersistentFlags().Bool("show-resources", false, "Also print the cost breakdown by resource")
	rootCmd.PersistentFlags().Int("top-resources", 0, "Limit the resource breakdown to the N most expensive resources")
	rootCmd.PersistentFlags().Bool("trend-bars", false, "Display the month-over-month trend as bars")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf, xlsx")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("debug", false, "Print debug messages")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Do not print the welcome banner")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	inputDir, _ := flags.GetString("input-dir")
	periodValues, _ := flags.GetStringArray("period")
	currency, _ := flags.GetString("currency")
	showResources, _ := flags.GetBool("show-resources")
	topResources, _ := flags.GetInt("top-resources")
	trendBars, _ := flags.GetBool("trend-bars")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	debug, _ := flags.GetBool("debug")
	noBanner, _ := flags.GetBool("no-banner")

	periods := make([]types.PeriodConfig, 0, len(periodValues))
	for _, value := range periodValues {
		period, err := usecase.ParsePeriod(value)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}

	// Converte para caminho absoluto; vazio fica a cargo da configuração ou do exportador
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	if topResources < 0 {
		topResources = 0
	}

	args := &types.CLIArgs{
		ConfigFile:    configFile,
		InputDir:      inputDir,
		Periods:       periods,
		Currency:      currency,
		ShowResources: showResources,
		TopResources:  topResources,
		TrendBars:     trendBars,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		Debug:         debug,
		NoBanner:      noBanner,
		Explicit:      make(map[string]bool),
	}

	for _, name := range []string{
		types.FlagInputDir, types.FlagPeriod, types.FlagCurrency,
		types.FlagShowResources, types.FlagTopResources, types.FlagTrendBars,
		types.FlagReportName, types.FlagReportType, types.FlagDir,
	} {
		if flags.Changed(name) {
			args.Explicit[name] = true
		}
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if !cliArgs.NoBanner {
		displayWelcomeBanner(os.Stderr)
	}

	if cliArgs.Debug {
		console.EnableDebug()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.reportUseCase.RunReport(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
