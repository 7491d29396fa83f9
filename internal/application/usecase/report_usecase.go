package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diillson/azure-usage-report-go/internal/domain/entity"
	"github.com/diillson/azure-usage-report-go/internal/domain/repository"
	"github.com/diillson/azure-usage-report-go/internal/shared/types"
)

// ReportUseCase handles the monthly cost report.
type ReportUseCase struct {
	usageRepo  repository.UsageRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	usageRepo repository.UsageRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		usageRepo:  usageRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// RunReport processa cada período em ordem, imprime o relatório de cada mês e
// o resumo de evolução. Um erro de leitura interrompe a execução inteira.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		ApplyConfig(args, cfg)
		uc.console.LogDebug("Loaded configuration from %s", args.ConfigFile)
	}

	periods := ResolvePeriods(args)
	if len(periods) == 0 {
		return types.ErrNoPeriods
	}

	opts := RenderOptions{
		Currency:      args.Currency,
		ShowResources: args.ShowResources,
		TopResources:  args.TopResources,
	}

	summaries := make([]entity.CostSummary, 0, len(periods))
	for _, period := range periods {
		if err := ctx.Err(); err != nil {
			return err
		}

		summary, err := uc.processPeriod(period)
		if err != nil {
			return err
		}

		uc.console.Print(RenderMonthReport(summary, opts))
		summaries = append(summaries, summary)
	}

	monthlyCosts := make([]entity.MonthlyCost, len(summaries))
	for i, s := range summaries {
		monthlyCosts[i] = s.MonthlyCost()
	}
	uc.console.Print(RenderTrend(monthlyCosts, opts.currency()))

	if args.TrendBars {
		uiMonthlyCosts := make([]types.MonthlyCost, len(monthlyCosts))
		for i, mc := range monthlyCosts {
			uiMonthlyCosts[i] = types.MonthlyCost{
				Month: mc.Month,
				Cost:  mc.Cost,
			}
		}
		uc.console.DisplayTrendBars(uiMonthlyCosts, opts.currency())
	}

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(summaries, args, opts.currency())
	}

	return nil
}

// processPeriod carrega e agrega um único mês.
func (uc *ReportUseCase) processPeriod(period entity.Period) (entity.CostSummary, error) {
	status := uc.console.Status(fmt.Sprintf("Loading %s...", period.File))
	records, err := uc.usageRepo.LoadRecords(period.File)
	status.Stop()
	if err != nil {
		return entity.CostSummary{}, fmt.Errorf("loading %s (%s): %w", period.Label, period.File, err)
	}

	summary := Aggregate(period.Label, records)
	summary.SourceFile = period.File

	uc.console.LogDebug("%s: %d records, %d categories, %d resources, total %.2f",
		period.Label, summary.RecordCount, len(summary.ByCategory), len(summary.ByResource), summary.Total)

	return summary, nil
}

// exportReports grava os formatos pedidos. Falhas são registradas e não abortam.
func (uc *ReportUseCase) exportReports(summaries []entity.CostSummary, args *types.CLIArgs, currency string) {
	for _, reportType := range args.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(summaries, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(summaries, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(summaries, args.ReportName, args.Dir, currency)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		case "xlsx":
			xlsxPath, err := uc.exportRepo.ExportToXLSX(summaries, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to XLSX: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to XLSX: %s", xlsxPath)
			}
		default:
			uc.console.LogWarning("%s: %s", types.ErrUnsupportedReportType, reportType)
		}
	}
}

// ResolvePeriods devolve os períodos a processar com os caminhos já resolvidos
// contra o diretório de entrada.
func ResolvePeriods(args *types.CLIArgs) []entity.Period {
	var periods []entity.Period
	if len(args.Periods) > 0 {
		for _, p := range args.Periods {
			periods = append(periods, entity.Period{Label: p.Label, File: p.File})
		}
	} else {
		periods = entity.DefaultPeriods()
	}

	for i := range periods {
		if args.InputDir != "" && !filepath.IsAbs(periods[i].File) {
			periods[i].File = filepath.Join(args.InputDir, periods[i].File)
		}
	}

	return periods
}

// ApplyConfig mescla o arquivo de configuração nos argumentos; valores vindos
// da linha de comando têm prioridade, inclusive false e 0 passados explicitamente.
func ApplyConfig(args *types.CLIArgs, cfg *types.Config) {
	if cfg == nil {
		return
	}

	unset := func(flag string, zero bool) bool {
		return zero && !args.IsSet(flag)
	}

	if unset(types.FlagPeriod, len(args.Periods) == 0) {
		args.Periods = cfg.Periods
	}
	if unset(types.FlagInputDir, args.InputDir == "") {
		args.InputDir = cfg.InputDir
	}
	if unset(types.FlagCurrency, args.Currency == "") {
		args.Currency = cfg.Currency
	}
	if unset(types.FlagShowResources, !args.ShowResources) {
		args.ShowResources = cfg.ShowResources
	}
	if unset(types.FlagTopResources, args.TopResources == 0) {
		args.TopResources = cfg.TopResources
	}
	if unset(types.FlagTrendBars, !args.TrendBars) {
		args.TrendBars = cfg.TrendBars
	}
	if unset(types.FlagReportName, args.ReportName == "") {
		args.ReportName = cfg.ReportName
	}
	if unset(types.FlagReportType, len(args.ReportType) == 0) {
		args.ReportType = cfg.ReportType
	}
	if unset(types.FlagDir, args.Dir == "") {
		args.Dir = cfg.Dir
	}
}

// ParsePeriod interpreta "label=file".
func ParsePeriod(value string) (types.PeriodConfig, error) {
	label, file, ok := strings.Cut(value, "=")
	label = strings.TrimSpace(label)
	file = strings.TrimSpace(file)
	if !ok || label == "" || file == "" {
		return types.PeriodConfig{}, fmt.Errorf("%w: %q", types.ErrInvalidPeriod, value)
	}
	return types.PeriodConfig{Label: label, File: file}, nil
}
