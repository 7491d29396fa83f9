package usage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/diillson/azure-usage-report-go/internal/domain/entity"
	"github.com/diillson/azure-usage-report-go/internal/domain/repository"
	"github.com/diillson/azure-usage-report-go/internal/shared/types"
)

// UsageRepositoryImpl implementa o UsageRepository lendo exports JSON locais.
type UsageRepositoryImpl struct{}

// NewUsageRepository cria uma nova implementação do UsageRepository.
func NewUsageRepository() repository.UsageRepository {
	return &UsageRepositoryImpl{}
}

// LoadRecords lê o arquivo inteiro como um array JSON de registros de uso.
// Qualquer falha aqui é fatal para a execução: nada é recuperado.
func (r *UsageRepositoryImpl) LoadRecords(filePath string) ([]entity.UsageRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening usage file: %w", err)
	}
	defer file.Close()

	return decodeRecords(file, filePath)
}

func decodeRecords(reader io.Reader, name string) ([]entity.UsageRecord, error) {
	decoder := json.NewDecoder(reader)
	// Mantém números como texto para que instanceName numérico e custos não percam precisão
	decoder.UseNumber()

	var document any
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrInvalidUsageFile, name, err)
	}

	// Conteúdo extra depois do array também invalida o documento
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: unexpected data after top-level array", types.ErrInvalidUsageFile, name)
	}

	items, ok := document.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: top-level value is not an array", types.ErrInvalidUsageFile, name)
	}

	records := make([]entity.UsageRecord, 0, len(items))
	for _, item := range items {
		records = append(records, toUsageRecord(item))
	}

	return records, nil
}

// toUsageRecord converte um item do array. Itens que não são objetos, ou cujo
// "properties" não é um objeto, viram registros sem properties.
func toUsageRecord(item any) entity.UsageRecord {
	obj, ok := item.(map[string]any)
	if !ok {
		return entity.UsageRecord{}
	}

	props, ok := obj["properties"].(map[string]any)
	if !ok {
		return entity.UsageRecord{}
	}

	return entity.UsageRecord{Properties: props}
}
