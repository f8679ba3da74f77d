// Package main provides the CLI entry point for tablediag.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/spf13/cobra"

	"github.com/mvaldes/tablediag/pkg/tablediag"
	"github.com/mvaldes/tablediag/pkg/tablediag/models"
)

var (
	firstCols  []string
	lastCols   []string
	ignoreCols []string
	outputPath string
	sheetName  string
	atColumn   int
	noAutoFit  bool
	pretty     bool
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tablediag [input.csv]",
		Short: "Summarize the columns of a tabular dataset",
		Long: `tablediag loads a CSV table and reports per-column missing-value counts,
data types, distinct-value counts, and min/max. The report is printed as
JSON or appended to a spreadsheet file as new columns.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringSliceVar(&firstCols, "first", nil, "Columns to move to the front, in order")
	rootCmd.Flags().StringSliceVar(&lastCols, "last", nil, "Columns to move to the end, in order")
	rootCmd.Flags().StringSliceVar(&ignoreCols, "ignore", nil, "Columns to exclude from the diagnostics")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Spreadsheet file to append the report to (default: JSON to stdout)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "Sheet1", "Worksheet to append the report to")
	rootCmd.Flags().IntVar(&atColumn, "at-column", 0, "1-based column to write at (0 appends after existing content)")
	rootCmd.Flags().BoolVar(&noAutoFit, "no-autofit", false, "Skip column-width adjustment")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging(logLevel)

	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	rec, err := loadCSV(inputPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}
	defer rec.Release()

	slog.Info("table loaded",
		"path", inputPath, "rows", rec.NumRows(), "columns", rec.NumCols())

	d, err := tablediag.New(rec, tablediag.Options{
		First:  firstCols,
		Last:   lastCols,
		Ignore: ignoreCols,
	})
	if err != nil {
		return err
	}

	report, err := d.Diagnose()
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}

	if outputPath == "" {
		return printJSON(report, pretty)
	}

	autoFit := !noAutoFit
	opts := tablediag.AppendOptions{
		Sheet:    sheetName,
		AtColumn: atColumn,
		AutoFit:  &autoFit,
	}
	if err := tablediag.AppendTable(report.Table(), outputPath, opts); err != nil {
		return err
	}
	slog.Info("report written", "path", outputPath, "sheet", sheetName)
	return nil
}

// loadCSV reads the whole file into a single arrow record, inferring the
// column types from the data. Empty cells and common null spellings become
// missing values.
func loadCSV(path string) (arrow.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rdr := csv.NewInferringReader(f,
		csv.WithHeader(true),
		csv.WithChunk(-1),
		csv.WithNullReader(true, "", "NULL", "null", "NA"),
	)
	defer rdr.Release()

	if !rdr.Next() {
		if err := rdr.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("no data rows in %s", path)
	}
	rec := rdr.Record()
	rec.Retain()
	return rec, nil
}

func printJSON(report models.Report, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}

// setupLogging configures the default slog logger on stderr.
func setupLogging(level string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
