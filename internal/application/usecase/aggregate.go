package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/diillson/azure-usage-report-go/internal/domain/entity"
)

// UnknownLabel substitui categorias e recursos ausentes.
const UnknownLabel = "Unknown"

// noneCost é o marcador textual de custo ausente usado por alguns exports.
const noneCost = "None"

// Aggregate soma os custos positivos dos registros por categoria e por recurso.
// Registros sem properties são ignorados; custos ausentes ou inválidos valem 0.
func Aggregate(period string, records []entity.UsageRecord) entity.CostSummary {
	summary := entity.CostSummary{
		Period:      period,
		RecordCount: len(records),
		ByCategory:  []entity.ServiceCost{},
		ByResource:  []entity.ResourceCost{},
	}

	byCategory := newCostAccumulator()
	byResource := newCostAccumulator()

	for _, record := range records {
		if !record.HasProperties() {
			continue
		}

		category := labelOrUnknown(record.Properties[entity.PropertyMeterCategory])
		resourceName := labelOrUnknown(record.Properties[entity.PropertyInstanceName])
		cost := recordCost(record)

		if cost > 0 {
			byCategory.Add(category, cost)
			byResource.Add(SimplifyResourceName(resourceName), cost)
			summary.Total += cost
		}
	}

	byCategory.each(func(name string, cost float64) {
		summary.ByCategory = append(summary.ByCategory, entity.ServiceCost{ServiceName: name, Cost: cost})
	})
	byResource.each(func(name string, cost float64) {
		summary.ByResource = append(summary.ByResource, entity.ResourceCost{ResourceName: name, Cost: cost})
	})

	return summary
}

// recordCost lê o pretaxCost do registro; ausência, null e "None" valem 0.
func recordCost(record entity.UsageRecord) float64 {
	raw, ok := record.Property(entity.PropertyPretaxCost)
	if !ok || raw == nil {
		return 0
	}
	if s, isString := raw.(string); isString && s == noneCost {
		return 0
	}

	cost, _ := ParseCost(raw)
	return cost
}

// ParseCost converte um valor de custo em float64. Retorna (0, false) para
// qualquer valor que não seja numérico, sem distinguir a causa.
func ParseCost(raw any) (float64, bool) {
	switch v := raw.(type) {
	case string:
		return parseFloat(strings.TrimSpace(v))
	case json.Number:
		return parseFloat(v.String())
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// parseFloat aceita estouro de faixa: "1e400" vira +Inf e "1e-400" vira 0,
// como acontece com "inf".
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// SimplifyResourceName devolve o último segmento de um identificador de recurso.
// Nomes sem "/" são devolvidos como estão; um último segmento vazio (barra final)
// também devolve o texto original.
func SimplifyResourceName(name string) string {
	if !strings.Contains(name, "/") {
		return name
	}

	parts := strings.Split(name, "/")
	if len(parts) == 0 {
		return name
	}

	last := parts[len(parts)-1]
	if last == "" {
		return name
	}
	return last
}

// labelOrUnknown converte um campo em texto; ausente, null ou vazio vira "Unknown".
func labelOrUnknown(raw any) string {
	var label string

	switch v := raw.(type) {
	case nil:
		return UnknownLabel
	case string:
		label = v
	case json.Number:
		label = v.String()
	case bool:
		if v {
			label = "True"
		} else {
			label = "False"
		}
	default:
		label = fmt.Sprint(v)
	}

	if label == "" {
		return UnknownLabel
	}
	return label
}

// costAccumulator é um mapa string -> custo que lembra a ordem de inserção.
type costAccumulator struct {
	index  map[string]int
	keys   []string
	values []float64
}

func newCostAccumulator() *costAccumulator {
	return &costAccumulator{index: make(map[string]int)}
}

// Add soma cost à chave, criando-a com 0 no primeiro acesso.
func (a *costAccumulator) Add(key string, cost float64) {
	i, ok := a.index[key]
	if !ok {
		i = len(a.keys)
		a.index[key] = i
		a.keys = append(a.keys, key)
		a.values = append(a.values, 0)
	}
	a.values[i] += cost
}

func (a *costAccumulator) each(fn func(key string, value float64)) {
	for i, key := range a.keys {
		fn(key, a.values[i])
	}
}
