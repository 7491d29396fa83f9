package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/azure-usage-report-go/internal/domain/entity"
	"github.com/diillson/azure-usage-report-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// jsonReport é o documento gravado por ExportToJSON.
type jsonReport struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Months      []entity.CostSummary `json:"months"`
	Trend       []entity.MonthlyCost `json:"trend"`
}

func (r *ExportRepositoryImpl) ExportToCSV(summaries []entity.CostSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"Period", "Type", "Name", "Cost"}); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, s := range summaries {
		for _, sc := range s.SortedCategories() {
			writer.Write([]string{s.Period, "category", sc.ServiceName, formatAmount(sc.Cost)})
		}
		for _, rc := range s.SortedResources() {
			writer.Write([]string{s.Period, "resource", rc.ResourceName, formatAmount(rc.Cost)})
		}
		writer.Write([]string{s.Period, "total", "TOTAL", formatAmount(s.Total)})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(summaries []entity.CostSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	report := jsonReport{
		GeneratedAt: r.now().UTC(),
		Months:      summaries,
		Trend:       trendOf(summaries),
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(summaries []entity.CostSummary, filename, outputDir, currency string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawTitle := func(title string) {
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")
		pdf.Ln(8)
	}

	drawSectionHeader := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawRow := func(label string, cost float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		if runes := []rune(label); len(runes) > 90 {
			label = string(runes[:87]) + "..."
		}
		pdf.CellFormat(150, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(fmt.Sprintf("%.2f %s", cost, currency)), "", 1, "R", false, 0, "")
	}

	for _, s := range summaries {
		pdf.AddPage()
		drawTitle(s.Period)

		drawSectionHeader("Cost by service category")
		for _, sc := range s.SortedCategories() {
			drawRow(sc.ServiceName, sc.Cost, false)
		}
		pdf.Ln(6)

		if len(s.ByResource) > 0 {
			drawSectionHeader("Cost by resource")
			for _, rc := range s.SortedResources() {
				drawRow(rc.ResourceName, rc.Cost, false)
			}
			pdf.Ln(6)
		}

		drawRow("TOTAL", s.Total, true)
		if s.IsEmpty() {
			pdf.Ln(4)
			pdf.SetFont("Arial", "I", 9)
			pdf.SetTextColor(192, 0, 0)
			pdf.MultiCell(190, 5, tr("No cost detected for this period. Billing data may not be available yet."), "", "L", false)
		}
	}

	pdf.AddPage()
	drawTitle("Cost trend")
	drawSectionHeader("Total by month")
	for _, mc := range trendOf(summaries) {
		drawRow(mc.Month, mc.Cost, false)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToXLSX(summaries []entity.CostSummary, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetDocProps(&excelize.DocProperties{
		Creator: "usage-report",
		Title:   "Monthly cost report",
	})

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return "", fmt.Errorf("error preparing XLSX workbook: %w", err)
	}
	for _, sheet := range []string{sheetCategories, sheetResources} {
		if _, err := f.NewSheet(sheet); err != nil {
			return "", fmt.Errorf("error creating sheet %s: %w", sheet, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return "", fmt.Errorf("error creating XLSX style: %w", err)
	}

	summaryRows := [][]interface{}{}
	categoryRows := [][]interface{}{}
	resourceRows := [][]interface{}{}
	for _, s := range summaries {
		summaryRows = append(summaryRows, []interface{}{s.Period, s.SourceFile, s.RecordCount, s.Total})
		for _, sc := range s.SortedCategories() {
			categoryRows = append(categoryRows, []interface{}{s.Period, sc.ServiceName, sc.Cost})
		}
		for _, rc := range s.SortedResources() {
			resourceRows = append(resourceRows, []interface{}{s.Period, rc.ResourceName, rc.Cost})
		}
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{sheetSummary, []string{"Period", "Source File", "Records", "Total"}, summaryRows},
		{sheetCategories, []string{"Period", "Meter Category", "Cost"}, categoryRows},
		{sheetResources, []string{"Period", "Resource", "Cost"}, resourceRows},
	}

	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.headers, sheet.rows, headerStyle); err != nil {
			return "", err
		}
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error saving XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

const (
	sheetSummary    = "Summary"
	sheetCategories = "Categories"
	sheetResources  = "Resources"
)

// writeSheet grava cabeçalho e linhas a partir de A1.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}, headerStyle int) error {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("error writing sheet %s: %w", sheet, err)
		}
	}

	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, first, last, headerStyle)

	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing sheet %s: %w", sheet, err)
		}
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, 24)
	}

	return nil
}

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func trendOf(summaries []entity.CostSummary) []entity.MonthlyCost {
	trend := make([]entity.MonthlyCost, len(summaries))
	for i, s := range summaries {
		trend[i] = s.MonthlyCost()
	}
	return trend
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
