package types

// PeriodConfig names one billing month and the usage export holding its records.
type PeriodConfig struct {
	Label string `json:"label" yaml:"label" toml:"label"`
	File  string `json:"file" yaml:"file" toml:"file"`
}

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Periods       []PeriodConfig `json:"periods" yaml:"periods" toml:"periods"`
	InputDir      string         `json:"input_dir" yaml:"input_dir" toml:"input_dir"`
	Currency      string         `json:"currency" yaml:"currency" toml:"currency"`
	ShowResources bool           `json:"show_resources" yaml:"show_resources" toml:"show_resources"`
	TopResources  int            `json:"top_resources" yaml:"top_resources" toml:"top_resources"`
	TrendBars     bool           `json:"trend_bars" yaml:"trend_bars" toml:"trend_bars"`
	ReportName    string         `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string       `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string         `json:"dir" yaml:"dir" toml:"dir"`
}
