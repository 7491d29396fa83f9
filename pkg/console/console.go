package console

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/diillson/azure-usage-report-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
// O relatório vai para out; mensagens de log e spinner vão para logOut.
type Console struct {
	out    io.Writer
	logOut io.Writer

	info    *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	err     *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
	debug   *pterm.PrefixPrinter
}

// NewConsole cria um novo Console escrevendo em stdout e stderr.
func NewConsole() *Console {
	return NewConsoleWithWriters(os.Stdout, os.Stderr)
}

// NewConsoleWithWriters cria um Console com destinos explícitos.
func NewConsoleWithWriters(out, logOut io.Writer) *Console {
	return &Console{
		out:     out,
		logOut:  logOut,
		info:    pterm.Info.WithWriter(logOut),
		warning: pterm.Warning.WithWriter(logOut),
		err:     pterm.Error.WithWriter(logOut),
		success: pterm.Success.WithWriter(logOut),
		debug:   pterm.Debug.WithWriter(logOut),
	}
}

// EnableDebug liga as mensagens de debug.
func EnableDebug() {
	pterm.EnableDebugMessages()
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	c.info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	c.warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	c.err.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	c.success.Printfln(format, a...)
}

// LogDebug registra uma mensagem de debug (visível só com --debug).
func (c *Console) LogDebug(format string, a ...interface{}) {
	c.debug.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.
		WithWriter(c.logOut).
		WithRemoveWhenDone(true).
		Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// FormatChange devolve a variação percentual entre dois meses e a cor da barra.
// Um mês anterior sem custo não permite percentual.
func FormatChange(previous, current float64) (string, pterm.Color) {
	if !isFinite(previous) || !isFinite(current) {
		return "N/A", pterm.FgRed
	}
	if previous < 0.01 {
		if current < 0.01 {
			return "0%", pterm.FgYellow
		}
		return "N/A", pterm.FgRed
	}

	changePercent := ((current - previous) / previous) * 100.0

	switch {
	case math.Abs(changePercent) < 0.01:
		return "0%", pterm.FgYellow
	case changePercent > 999:
		return ">+999%", pterm.FgRed
	case changePercent < -999:
		return ">-999%", pterm.FgGreen
	case changePercent > 0:
		return fmt.Sprintf("+%.2f%%", changePercent), pterm.FgRed
	default:
		return fmt.Sprintf("%.2f%%", changePercent), pterm.FgGreen
	}
}

// trendBarWidth é o comprimento da barra do mês mais caro.
const trendBarWidth = 40

// barLength escala cost em [0, trendBarWidth]. Um custo infinito ocupa a barra
// inteira; com máximo infinito os meses finitos ficam sem barra.
func barLength(cost, maxCost float64) int {
	if math.IsInf(cost, 1) {
		return trendBarWidth
	}
	if math.IsNaN(cost) || cost <= 0 || !isFinite(maxCost) || maxCost <= 0 {
		return 0
	}

	n := int((cost / maxCost) * trendBarWidth)
	if n < 0 {
		return 0
	}
	if n > trendBarWidth {
		return trendBarWidth
	}
	return n
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DisplayTrendBars exibe gráficos de barras para análise de tendências.
func (c *Console) DisplayTrendBars(monthlyCosts []types.MonthlyCost, currency string) {
	// Encontra o valor máximo para escala
	maxCost := 0.0
	for _, cost := range monthlyCosts {
		if cost.Cost > maxCost {
			maxCost = cost.Cost
		}
	}

	if maxCost == 0 {
		c.warning.Printfln("All costs are 0.00 %s for this period", currency)
		return
	}

	tableData := pterm.TableData{
		{"Month", "Cost", "", "MoM Change"},
	}

	var prevCost *float64

	for _, mc := range monthlyCosts {
		bar := strings.Repeat("█", barLength(mc.Cost, maxCost))

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prevCost != nil {
			text, col := FormatChange(*prevCost, mc.Cost)
			change = col.Sprint(text)
			barColor = col.Sprint(bar)
		}

		tableData = append(tableData, []string{
			mc.Month,
			fmt.Sprintf("%.2f %s", mc.Cost, currency),
			barColor,
			change,
		})

		currentCost := mc.Cost
		prevCost = &currentCost
	}

	renderedTable, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()

	panel := pterm.DefaultBox.
		WithTitle("Cost Trend Analysis").
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(renderedTable)

	fmt.Fprintln(c.out, "\n"+panel)
}
