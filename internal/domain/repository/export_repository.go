package repository

import (
	"github.com/diillson/azure-usage-report-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(summaries []entity.CostSummary, filename, outputDir string) (string, error)
	ExportToJSON(summaries []entity.CostSummary, filename, outputDir string) (string, error)
	ExportToPDF(summaries []entity.CostSummary, filename, outputDir, currency string) (string, error)
	ExportToXLSX(summaries []entity.CostSummary, filename, outputDir string) (string, error)
}
