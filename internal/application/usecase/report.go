package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/diillson/azure-usage-report-go/internal/domain/entity"
)

const (
	ruleWidth     = 70
	labelWidth    = 55
	totalLabel    = "TOTAL"
	trendTitle    = "ÉVOLUTION DES COÛTS"
	categoryTitle = "Par catégorie de service:"
	resourceTitle = "Par ressource:"

	// DefaultCurrency é o sufixo usado quando nenhuma moeda é configurada.
	DefaultCurrency = "€"
)

var (
	doubleRule = strings.Repeat("=", ruleWidth)
	singleRule = strings.Repeat("-", ruleWidth)
)

// RenderOptions controla as partes opcionais do relatório mensal.
type RenderOptions struct {
	Currency      string
	ShowResources bool
	TopResources  int
}

func (o RenderOptions) currency() string {
	if o.Currency == "" {
		return DefaultCurrency
	}
	return o.Currency
}

// RenderMonthReport monta o texto do relatório de um mês.
func RenderMonthReport(summary entity.CostSummary, opts RenderOptions) string {
	var b strings.Builder
	currency := opts.currency()

	fmt.Fprintf(&b, "\n%s\n", doubleRule)
	fmt.Fprintf(&b, "=== %s ===\n", strings.ToUpper(summary.Period))
	fmt.Fprintf(&b, "%s\n\n", doubleRule)

	fmt.Fprintln(&b, categoryTitle)
	fmt.Fprintln(&b, singleRule)
	for _, sc := range summary.SortedCategories() {
		b.WriteString(costLine(sc.ServiceName, sc.Cost, currency))
	}

	if opts.ShowResources {
		fmt.Fprintf(&b, "\n%s\n", resourceTitle)
		fmt.Fprintln(&b, singleRule)
		for i, rc := range summary.SortedResources() {
			if opts.TopResources > 0 && i >= opts.TopResources {
				break
			}
			b.WriteString(costLine(rc.ResourceName, rc.Cost, currency))
		}
	}

	fmt.Fprintf(&b, "\n%s\n", doubleRule)
	b.WriteString(costLine(totalLabel, summary.Total, currency))
	fmt.Fprintln(&b, doubleRule)

	if summary.IsEmpty() {
		fmt.Fprintln(&b, "\n⚠️  ATTENTION: Aucun coût détecté dans les données.")
		fmt.Fprintln(&b, "   Les données de coûts peuvent ne pas être encore disponibles via l'API.")
	}

	return b.String()
}

// RenderTrend monta o resumo de evolução entre os meses processados.
func RenderTrend(monthlyCosts []entity.MonthlyCost, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}

	width := 0
	for _, mc := range monthlyCosts {
		if n := utf8.RuneCountInString(mc.Month); n > width {
			width = n
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", doubleRule)
	fmt.Fprintln(&b, trendTitle)
	fmt.Fprintln(&b, doubleRule)
	for _, mc := range monthlyCosts {
		fmt.Fprintf(&b, "%-*s : %8.2f %s\n", width, mc.Month, mc.Cost, currency)
	}
	fmt.Fprintln(&b, doubleRule)

	return b.String()
}

// costLine formata uma linha "  <label> : <custo> <moeda>" com colunas fixas.
// A largura do rótulo é contada em code points e rótulos longos não são cortados.
func costLine(label string, cost float64, currency string) string {
	return fmt.Sprintf("  %-*s : %8.2f %s\n", labelWidth, label, cost, currency)
}
