package repository

import (
	"github.com/diillson/azure-usage-report-go/internal/domain/entity"
)

// UsageRepository defines the interface for reading usage export files.
type UsageRepository interface {
	LoadRecords(filePath string) ([]entity.UsageRecord, error)
}
