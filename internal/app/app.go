package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"notidue/internal/jsontree"
	"notidue/internal/report"
)

// Options selects the optional file exports produced next to the terminal
// report.
type Options struct {
	OutputDir   string
	ExportJSON  bool
	ExportCSV   bool
	ExportExcel bool
	Quiet       bool
}

type Application struct {
	Opts   Options
	Logger *slog.Logger
	Source report.Source
	Stdout io.Writer
	Stderr io.Writer

	// BeforeFetch and AfterFetch bracket the network call inside Run so
	// the CLI can show a spinner without restating the run sequence.
	BeforeFetch func()
	AfterFetch  func()
}

func New(source report.Source, opts Options, stdout, stderr io.Writer) *Application {
	level := slog.LevelInfo
	if opts.Quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	return &Application{
		Opts:   opts,
		Logger: logger,
		Source: source,
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Fetch retrieves one page of raw records from the backend.
func (app *Application) Fetch(ctx context.Context) (jsontree.Value, error) {
	app.Logger.Info("fetching todos", "source", app.Source.Name())

	doc, err := app.Source.FetchPage(ctx)
	if err != nil {
		app.Logger.Error("fetch failed", "source", app.Source.Name(), "error", err)
		return jsontree.Value{}, err
	}
	return doc, nil
}

// Render extracts the records from a response document, writes the report
// lines to stdout in input order and any per-record diagnostics to stderr
// after them. A response without a results array fails the run as a whole;
// per-record failures never do.
func (app *Application) Render(doc jsontree.Value) (report.Outcome, error) {
	records, err := report.RecordsFromResponse(doc)
	if err != nil {
		return report.Outcome{}, err
	}

	out := report.BuildReport(records)
	out.WriteTo(app.Stdout, app.Stderr)

	stats := report.Statistics(out)
	app.Logger.Info("report complete",
		"total", stats["total"],
		"done", stats["done"],
		"open", stats["open"],
		"skipped", stats["skipped"],
	)

	return out, nil
}

// Export writes the requested file exports. Export failures are logged and
// do not fail the run; the terminal report already went out. When any
// export is enabled and records were skipped, the diagnostics land in an
// errors log next to the report files so a scheduled run leaves a trace.
func (app *Application) Export(out report.Outcome) {
	if !app.Opts.ExportJSON && !app.Opts.ExportCSV && !app.Opts.ExportExcel {
		return
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	exporter := report.NewExporter(app.Opts.OutputDir)

	if app.Opts.ExportJSON {
		filename := fmt.Sprintf("todos_%s.json", timestamp)
		if err := exporter.ExportJSON(out.Lines, filename); err != nil {
			app.Logger.Error("failed to export JSON", "error", err)
		} else {
			app.Logger.Info("report exported", "format", "json", "file", filename)
		}
	}

	if app.Opts.ExportCSV {
		if err := report.NewCSVExporter(app.Opts.OutputDir).Export(out); err != nil {
			app.Logger.Error("failed to export CSV", "error", err)
		} else {
			app.Logger.Info("report exported", "format", "csv", "dir", app.Opts.OutputDir)
		}
	}

	if app.Opts.ExportExcel {
		if err := report.NewExcelExporter(app.Opts.OutputDir).Export(out); err != nil {
			app.Logger.Error("failed to export Excel", "error", err)
		} else {
			app.Logger.Info("report exported", "format", "xlsx", "dir", app.Opts.OutputDir)
		}
	}

	if len(out.Errors) > 0 {
		filename := fmt.Sprintf("todos_%s_errors.log", timestamp)
		if err := exporter.ExportErrors(out.Errors, filename); err != nil {
			app.Logger.Error("failed to export errors log", "error", err)
		} else {
			app.Logger.Info("diagnostics exported", "file", filename)
		}
	}
}

// Run performs the whole pass: fetch, render, export. BeforeFetch and
// AfterFetch bracket the network call when set.
func (app *Application) Run(ctx context.Context) error {
	if app.BeforeFetch != nil {
		app.BeforeFetch()
	}
	doc, err := app.Fetch(ctx)
	if app.AfterFetch != nil {
		app.AfterFetch()
	}
	if err != nil {
		return err
	}

	out, err := app.Render(doc)
	if err != nil {
		return err
	}

	app.Export(out)
	return nil
}
