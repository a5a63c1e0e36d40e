package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Exporter struct {
	OutputDir string
}

func NewExporter(outputDir string) *Exporter {
	return &Exporter{OutputDir: outputDir}
}

// ExportJSON writes the extracted lines as an indented JSON array. Absent
// due dates marshal as null on both sides.
func (e *Exporter) ExportJSON(lines []Line, filename string) error {
	if err := ensureDir(e.OutputDir); err != nil {
		return err
	}

	data, err := json.MarshalIndent(lines, "", "\t")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(e.OutputDir, filename), data, 0644)
}

// ExportErrors writes the per-record diagnostics next to the report so a
// scheduled run leaves a trace of skipped records.
func (e *Exporter) ExportErrors(errors []string, filename string) error {
	if err := ensureDir(e.OutputDir); err != nil {
		return err
	}

	var buf []byte
	for _, msg := range errors {
		buf = append(buf, msg...)
		buf = append(buf, '\n')
	}
	return os.WriteFile(filepath.Join(e.OutputDir, filename), buf, 0644)
}

func formatDatePtr(p *string) string {
	if p == nil {
		return ""
	}
	return FormatDateTime(*p)
}

func boolMark(done bool) string {
	if done {
		return "x"
	}
	return ""
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
