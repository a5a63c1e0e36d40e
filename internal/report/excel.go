package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ExcelExporter struct {
	OutputDir string
}

func NewExcelExporter(outputDir string) *ExcelExporter {
	return &ExcelExporter{OutputDir: outputDir}
}

// Export writes a workbook with a Dashboard sheet (outcome counters) and
// a Todos sheet (one row per rendered record).
func (e *ExcelExporter) Export(o Outcome) error {
	if err := ensureDir(e.OutputDir); err != nil {
		return err
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(e.OutputDir, fmt.Sprintf("todos_%s.xlsx", timestamp))

	f := excelize.NewFile()
	defer f.Close()

	if err := e.createDashboardSheet(f, "Dashboard", o); err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}

	if err := e.createTodoSheet(f, "Todos", o.Lines); err != nil {
		return fmt.Errorf("failed to create todo sheet: %w", err)
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save excel file: %w", err)
	}

	return nil
}

func (e *ExcelExporter) createDashboardSheet(f *excelize.File, sheetName string, o Outcome) error {
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	labelStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#B4C7E7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, "A1", "Generated:")
	f.SetCellValue(sheetName, "B1", time.Now().Format("02-01-06"))

	title := cases.Title(language.English)
	stats := Statistics(o)

	row := 3
	for _, metric := range metricOrder {
		cell := cellName(1, row)
		f.SetCellValue(sheetName, cell, title.String(metric))
		f.SetCellStyle(sheetName, cell, cell, labelStyle)
		f.SetCellValue(sheetName, cellName(2, row), stats[metric])
		row++
	}

	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "B", "B", 10)

	return nil
}

func (e *ExcelExporter) createTodoSheet(f *excelize.File, sheetName string, lines []Line) error {
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})

	headers := []string{
		"#",
		"Done",
		"Title",
		"Due Start",
		"Due End",
	}

	for col, header := range headers {
		cell := cellName(col+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, line := range lines {
		row := i + 2
		f.SetCellValue(sheetName, cellName(1, row), line.Index)
		f.SetCellValue(sheetName, cellName(2, row), boolMark(line.Done))
		f.SetCellValue(sheetName, cellName(3, row), line.Title)
		f.SetCellValue(sheetName, cellName(4, row), formatDatePtr(line.Start))
		f.SetCellValue(sheetName, cellName(5, row), formatDatePtr(line.End))
	}

	f.SetColWidth(sheetName, "A", "A", 5)
	f.SetColWidth(sheetName, "B", "B", 8)
	f.SetColWidth(sheetName, "C", "C", 40)
	f.SetColWidth(sheetName, "D", "E", 20)

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	return nil
}

func cellName(col, row int) string {
	return fmt.Sprintf("%s%d", columnLetter(col), row)
}

func columnLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
