package entity

// Period names one billing month and the export file holding its usage records.
type Period struct {
	Label string `json:"label"`
	File  string `json:"file"`
}

// DefaultPeriods are the months processed when nothing else is configured.
func DefaultPeriods() []Period {
	return []Period{
		{Label: "Août 2025", File: "august_usage.json"},
		{Label: "Septembre 2025", File: "september_usage.json"},
		{Label: "Octobre 2025", File: "october_usage.json"},
	}
}
