package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleOutcome() Outcome {
	start := "2024-01-15T09:30:00.000Z"
	end := "2024-01-16"
	return Outcome{
		Lines: []Line{
			{Index: 0, Done: true, Title: "Buy milk", Start: &start, End: &end},
			{Index: 2, Title: "Water the plants"},
		},
		Errors: []string{"todo 1: missing or invalid title"},
	}
}

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir)

	if err := exporter.ExportJSON(sampleOutcome().Lines, "todos.json"); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "todos.json"))
	if err != nil {
		t.Fatal(err)
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Title != "Buy milk" || !lines[0].Done {
		t.Errorf("lines[0] = %+v", lines[0])
	}
	if lines[1].Start != nil || lines[1].End != nil {
		t.Errorf("lines[1] = %+v, absent dates must round-trip as null", lines[1])
	}
}

func TestExportErrors(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir)

	if err := exporter.ExportErrors(sampleOutcome().Errors, "errors.log"); err != nil {
		t.Fatalf("ExportErrors() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "errors.log"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "todo 1: missing or invalid title\n" {
		t.Errorf("errors file = %q", data)
	}
}

func TestCSVExport(t *testing.T) {
	dir := t.TempDir()
	exporter := NewCSVExporter(dir)

	if err := exporter.Export(sampleOutcome()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	todoFiles, err := filepath.Glob(filepath.Join(dir, "todos_*.csv"))
	if err != nil {
		t.Fatal(err)
	}

	var listFile string
	dashboards := 0
	for _, f := range todoFiles {
		if matched, _ := filepath.Match("todos_*_dashboard.csv", filepath.Base(f)); matched {
			dashboards++
		} else {
			listFile = f
		}
	}
	if listFile == "" || dashboards != 1 {
		t.Fatalf("exported files = %v, want one list and one dashboard", todoFiles)
	}

	file, err := os.Open(listFile)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[1][0] != "0" || rows[1][1] != "x" || rows[1][2] != "Buy milk" {
		t.Errorf("rows[1] = %v", rows[1])
	}
	if rows[1][3] != "2024-01-15 09:30:00" || rows[1][4] != "2024-01-16" {
		t.Errorf("rows[1] dates = %v, want compact rendering", rows[1][3:])
	}
	if rows[2][1] != "" || rows[2][3] != "" {
		t.Errorf("rows[2] = %v, open undated record renders empty cells", rows[2])
	}
}

func TestExcelExport(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExcelExporter(dir)

	if err := exporter.Export(sampleOutcome()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "todos_*.xlsx"))
	if err != nil || len(files) != 1 {
		t.Fatalf("exported files = %v, err = %v", files, err)
	}

	f, err := excelize.OpenFile(files[0])
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Dashboard": false, "Todos": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("missing sheet %q in %v", name, sheets)
		}
	}

	title, err := f.GetCellValue("Todos", "C2")
	if err != nil {
		t.Fatal(err)
	}
	if title != "Buy milk" {
		t.Errorf("Todos!C2 = %q, want %q", title, "Buy milk")
	}
}
