package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/azure-usage-report-go/internal/adapter/driven/config"
	"github.com/diillson/azure-usage-report-go/internal/adapter/driven/export"
	"github.com/diillson/azure-usage-report-go/internal/adapter/driven/usage"
	"github.com/diillson/azure-usage-report-go/internal/application/usecase"
	"github.com/diillson/azure-usage-report-go/internal/shared/types"
	"github.com/diillson/azure-usage-report-go/pkg/console"
)

func TestMain(m *testing.M) {
	// Spinner e logs do pterm não interessam aqui; o relatório sai por fmt.
	pterm.DisableOutput()
	os.Exit(m.Run())
}

func newTestApp(out, logs *bytes.Buffer) *CLIApp {
	app := NewCLIApp()
	app.SetReportUseCase(usecase.NewReportUseCase(
		usage.NewUsageRepository(),
		export.NewExportRepository(),
		config.NewConfigRepository(),
		console.NewConsoleWithWriters(out, logs),
	))
	return app
}

func TestParseArgs(t *testing.T) {
	app := NewCLIApp()
	require.NoError(t, app.rootCmd.ParseFlags([]string{
		"--period", "Août 2025=august.json",
		"-p", "Septembre 2025=september.json",
		"--input-dir", "exports",
		"--currency", "EUR",
		"--show-resources",
		"--top-resources", "-2",
		"-y", "csv,xlsx",
		"-n", "costs",
	}))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.Equal(t, []types.PeriodConfig{
		{Label: "Août 2025", File: "august.json"},
		{Label: "Septembre 2025", File: "september.json"},
	}, args.Periods)
	assert.Equal(t, "exports", args.InputDir)
	assert.Equal(t, "EUR", args.Currency)
	assert.True(t, args.ShowResources)
	assert.Equal(t, 0, args.TopResources)
	assert.Equal(t, []string{"csv", "xlsx"}, args.ReportType)
	assert.Equal(t, "costs", args.ReportName)
	assert.Empty(t, args.Dir)
}

func TestParseArgs_RecordsExplicitFlags(t *testing.T) {
	app := NewCLIApp()
	require.NoError(t, app.rootCmd.ParseFlags([]string{
		"--show-resources=false",
		"--top-resources", "0",
	}))

	args, err := app.parseArgs()
	require.NoError(t, err)

	assert.False(t, args.ShowResources)
	assert.True(t, args.IsSet(types.FlagShowResources))
	assert.True(t, args.IsSet(types.FlagTopResources))
	assert.False(t, args.IsSet(types.FlagTrendBars))
	assert.False(t, args.IsSet(types.FlagCurrency))
}

func TestExecute_ExplicitFalseOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nov.json"),
		[]byte(`[{"properties": {"meterCategory": "Compute", "instanceName": "/s/x/vm-nov", "pretaxCost": "3"}}]`), 0o644))
	cfgPath := filepath.Join(dir, "report.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"periods:\n  - label: Novembre 2025\n    file: nov.json\nshow_resources: true\n"), 0o644))

	var out, logs bytes.Buffer
	app := newTestApp(&out, &logs)
	app.rootCmd.SetArgs([]string{"--no-banner", "-C", cfgPath, "-i", dir, "--show-resources=false"})

	require.NoError(t, app.Execute())

	assert.Contains(t, out.String(), "=== NOVEMBRE 2025 ===")
	assert.NotContains(t, out.String(), "Par ressource:")
}

func TestParseArgs_InvalidPeriod(t *testing.T) {
	app := NewCLIApp()
	require.NoError(t, app.rootCmd.ParseFlags([]string{"--period", "no-separator"}))

	_, err := app.parseArgs()
	assert.ErrorIs(t, err, types.ErrInvalidPeriod)
}

func TestExecute_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"august_usage.json": `[
			{"properties": {"meterCategory": "Compute", "instanceName": "/subscriptions/x/resourceGroups/y/vm1", "pretaxCost": "10.50"}},
			{"properties": {"meterCategory": "Storage", "instanceName": "disk1", "pretaxCost": "5.00"}},
			{"properties": {"meterCategory": "Compute", "instanceName": "vm1", "pretaxCost": "2.00"}}
		]`,
		"september_usage.json": `[{"properties": {"meterCategory": "Compute", "pretaxCost": "abc"}}]`,
		"october_usage.json":   `[]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	var out, logs bytes.Buffer
	app := newTestApp(&out, &logs)
	app.rootCmd.SetArgs([]string{"--no-banner", "--input-dir", dir})

	require.NoError(t, app.Execute())

	report := out.String()
	assert.Contains(t, report, "=== AOÛT 2025 ===")
	assert.Contains(t, report, "  Compute")
	assert.Contains(t, report, " :    12.50 €\n")
	assert.Contains(t, report, " :    17.50 €\n")
	assert.Contains(t, report, "Septembre 2025 :     0.00 €\n")
	assert.Contains(t, report, "ÉVOLUTION DES COÛTS")
	assert.NotContains(t, logs.String(), "ÉVOLUTION")
}

func TestExecute_MissingFileFails(t *testing.T) {
	var out, logs bytes.Buffer
	app := newTestApp(&out, &logs)
	app.rootCmd.SetArgs([]string{"--no-banner", "--input-dir", t.TempDir()})

	err := app.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotContains(t, out.String(), "TOTAL")
}

func TestExecute_RejectsPositionalArgs(t *testing.T) {
	var out, logs bytes.Buffer
	app := newTestApp(&out, &logs)
	app.rootCmd.SetArgs([]string{"--no-banner", "extra"})

	assert.Error(t, app.Execute())
}
