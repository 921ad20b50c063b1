package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"wellpulse/internal/config"
	"wellpulse/internal/errors"
	"wellpulse/pkg/contracts/domain"
)

// GainsExporter persists the percentage-gain report as CSV and JSON files
// and prints it for the terminal. Every output keeps the report's metric
// order.
type GainsExporter struct {
	csv    *CSVWriter
	paths  *config.Paths
	logger *slog.Logger
}

// NewGainsExporter creates an exporter writing into the reports directory.
func NewGainsExporter(paths *config.Paths, logger *slog.Logger) *GainsExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &GainsExporter{
		csv:    NewCSVWriter(paths),
		paths:  paths,
		logger: logger,
	}
}

// WriteText prints the report as an aligned block, one metric per line.
func (e *GainsExporter) WriteText(w io.Writer, report *domain.GainReport) error {
	if _, err := fmt.Fprintln(w, "Percentage Gains"); err != nil {
		return err
	}
	for _, entry := range report.Entries() {
		if _, err := fmt.Fprintf(w, "  %-34s %10s\n", string(entry.Metric)+":", formatGain(entry.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Export writes the CSV and JSON report files.
func (e *GainsExporter) Export(ctx context.Context, report *domain.GainReport) error {
	if err := e.ExportCSV(ctx, report); err != nil {
		return err
	}
	return e.ExportJSON(ctx, report)
}

// ExportCSV writes one Metric,Value row per gain.
func (e *GainsExporter) ExportCSV(ctx context.Context, report *domain.GainReport) error {
	records := make([][]string, 0, report.Len())
	for _, entry := range report.Entries() {
		records = append(records, []string{string(entry.Metric), formatGain(entry.Value)})
	}

	if err := e.csv.WriteSimpleCSV(config.GainsCSVFile, []string{"Metric", "Value"}, records); err != nil {
		return errors.NewStorageError("failed to write percentage gains CSV", err)
	}

	e.logger.InfoContext(ctx, "exported percentage gains",
		slog.String("format", "csv"),
		slog.String("path", e.paths.ReportPath(config.GainsCSVFile)))
	return nil
}

// gainRecord is the JSON form of one gain entry. Undefined gains encode as
// null because JSON has no NaN.
type gainRecord struct {
	Metric string   `json:"metric"`
	Value  *float64 `json:"value"`
}

// ExportJSON writes the report with metadata, gains as an ordered array.
func (e *GainsExporter) ExportJSON(ctx context.Context, report *domain.GainReport) error {
	records := make([]gainRecord, 0, report.Len())
	for _, entry := range report.Entries() {
		records = append(records, gainRecord{
			Metric: string(entry.Metric),
			Value:  jsonValue(entry.Value),
		})
	}
	payload := map[string]interface{}{
		"gains":        records,
		"count":        len(records),
		"generated_at": time.Now().Format(time.RFC3339),
		"format":       "percentage_gains_v1",
	}

	path := e.paths.ReportPath(config.GainsJSONFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError("failed to create directory for JSON output", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError("failed to create percentage gains JSON file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return errors.NewStorageError("failed to encode percentage gains to JSON", err)
	}

	e.logger.InfoContext(ctx, "exported percentage gains",
		slog.String("format", "json"),
		slog.String("path", path))
	return nil
}
