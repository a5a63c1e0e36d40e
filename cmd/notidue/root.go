package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"notidue/internal/app"
	"notidue/internal/config"
	"notidue/internal/notion"
)

var (
	secretsPath string
	outputDir   string
	exportJSON  bool
	exportCSV   bool
	exportExcel bool
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "notidue",
	Short: "Print a due-date summary of the todos in a Notion database",
	Long: `notidue queries a Notion database for one page of todos, sorted by
ascending due date, and prints one line per todo with its completion
marker, title and due-date range. Records missing a title or Done
checkbox are skipped and reported after the list.

Credentials come from a secrets file with one KEY=VALUE per line:

  DB_URL=<database query URL>
  API_KEY=<integration API key>`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReport,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&secretsPath, "secrets", "s", ".secrets", "Path to the secrets file")
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", "reports", "Output directory for exports")
	rootCmd.Flags().BoolVar(&exportJSON, "json", false, "Export the report as JSON")
	rootCmd.Flags().BoolVar(&exportCSV, "csv", false, "Export the report as CSV (list + dashboard)")
	rootCmd.Flags().BoolVar(&exportExcel, "xlsx", false, "Export the report as an Excel workbook")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational logging")
}

func runReport(cmd *cobra.Command, args []string) error {
	cred, err := config.Load(secretsPath)
	if err != nil {
		return err
	}

	application := app.New(notion.NewClient(cred), app.Options{
		OutputDir:   outputDir,
		ExportJSON:  exportJSON,
		ExportCSV:   exportCSV,
		ExportExcel: exportExcel,
		Quiet:       quiet,
	}, os.Stdout, os.Stderr)

	var bar *progressbar.ProgressBar
	application.BeforeFetch = func() { bar = newSpinner("Fetching todos") }
	application.AfterFetch = func() { finishBar(bar) }

	return application.Run(cmd.Context())
}
