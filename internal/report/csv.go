package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type CSVExporter struct {
	OutputDir string
}

func NewCSVExporter(outputDir string) *CSVExporter {
	return &CSVExporter{OutputDir: outputDir}
}

// Export writes two CSV files: the todo list itself and a small dashboard
// with the outcome counters.
func (e *CSVExporter) Export(o Outcome) error {
	if err := ensureDir(e.OutputDir); err != nil {
		return err
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	if err := e.exportTodoList(o.Lines, timestamp); err != nil {
		return fmt.Errorf("failed to export todo list: %w", err)
	}

	if err := e.exportDashboard(o, timestamp); err != nil {
		return fmt.Errorf("failed to export dashboard: %w", err)
	}

	return nil
}

func (e *CSVExporter) exportTodoList(lines []Line, timestamp string) error {
	filename := filepath.Join(e.OutputDir, fmt.Sprintf("todos_%s.csv", timestamp))
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"#",
		"Done",
		"Title",
		"Due Start",
		"Due End",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, line := range lines {
		row := []string{
			fmt.Sprintf("%d", line.Index),
			boolMark(line.Done),
			line.Title,
			formatDatePtr(line.Start),
			formatDatePtr(line.End),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (e *CSVExporter) exportDashboard(o Outcome, timestamp string) error {
	filename := filepath.Join(e.OutputDir, fmt.Sprintf("todos_%s_dashboard.csv", timestamp))
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	stats := Statistics(o)
	for _, metric := range metricOrder {
		row := []string{metric, fmt.Sprintf("%d", stats[metric])}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// metricOrder keeps dashboard rows stable across runs.
var metricOrder = []string{"total", "done", "open", "dated", "skipped"}
