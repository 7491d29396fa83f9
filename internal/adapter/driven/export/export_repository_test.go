package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/azure-usage-report-go/internal/domain/entity"
)

func fixedRepo() *ExportRepositoryImpl {
	return &ExportRepositoryImpl{now: func() time.Time {
		return time.Date(2025, time.November, 3, 9, 30, 0, 0, time.UTC)
	}}
}

func sampleSummaries() []entity.CostSummary {
	return []entity.CostSummary{
		{
			Period:      "Août 2025",
			SourceFile:  "august_usage.json",
			Total:       17.5,
			RecordCount: 3,
			ByCategory: []entity.ServiceCost{
				{ServiceName: "Storage", Cost: 5},
				{ServiceName: "Compute", Cost: 12.5},
			},
			ByResource: []entity.ResourceCost{
				{ResourceName: "vm1", Cost: 17.5},
			},
		},
		{Period: "Septembre 2025", SourceFile: "september_usage.json"},
	}
}

func TestGenerateFilename(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	name, err := fixedRepo().generateFilename("costs", dir, "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "costs_20251103_093000.csv"), name)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExportToCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := fixedRepo().ExportToCSV(sampleSummaries(), "costs", dir)
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Period", "Type", "Name", "Cost"},
		{"Août 2025", "category", "Compute", "12.50"},
		{"Août 2025", "category", "Storage", "5.00"},
		{"Août 2025", "resource", "vm1", "17.50"},
		{"Août 2025", "total", "TOTAL", "17.50"},
		{"Septembre 2025", "total", "TOTAL", "0.00"},
	}, rows)
}

func TestExportToJSON(t *testing.T) {
	path, err := fixedRepo().ExportToJSON(sampleSummaries(), "costs", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report jsonReport
	require.NoError(t, json.Unmarshal(data, &report))

	require.Len(t, report.Months, 2)
	assert.Equal(t, "Compute", report.Months[0].ByCategory[1].ServiceName)
	assert.Equal(t, []entity.MonthlyCost{
		{Month: "Août 2025", Cost: 17.5},
		{Month: "Septembre 2025", Cost: 0},
	}, report.Trend)
	assert.True(t, strings.Contains(string(data), `"costs_by_resource"`))
}

func TestExportToXLSX(t *testing.T) {
	path, err := fixedRepo().ExportToXLSX(sampleSummaries(), "costs", t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Categories", "Resources"}, f.GetSheetList())

	rows, err := f.GetRows("Categories")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Period", "Meter Category", "Cost"}, rows[0])
	assert.Equal(t, []string{"Août 2025", "Compute", "12.5"}, rows[1])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, "september_usage.json", summary[2][1])
}

func TestExportToPDF(t *testing.T) {
	path, err := fixedRepo().ExportToPDF(sampleSummaries(), "costs", t.TempDir(), "€")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}
