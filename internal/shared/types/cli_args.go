package types

// Nomes das flags que também podem vir do arquivo de configuração.
const (
	FlagInputDir      = "input-dir"
	FlagPeriod        = "period"
	FlagCurrency      = "currency"
	FlagShowResources = "show-resources"
	FlagTopResources  = "top-resources"
	FlagTrendBars     = "trend-bars"
	FlagReportName    = "report-name"
	FlagReportType    = "report-type"
	FlagDir           = "dir"
)

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	InputDir      string
	Periods       []PeriodConfig
	Currency      string
	ShowResources bool
	TopResources  int
	TrendBars     bool
	ReportName    string
	ReportType    []string
	Dir           string
	Debug         bool
	NoBanner      bool

	// Explicit guarda as flags passadas na linha de comando, mesmo com valor zero.
	Explicit map[string]bool
}

// IsSet informa se a flag foi passada explicitamente.
func (a *CLIArgs) IsSet(flag string) bool {
	return a.Explicit[flag]
}
