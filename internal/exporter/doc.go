// Package exporter writes the percentage-gain report to its three outputs.
//
// This package contains two main components:
//
// CSVWriter: Core CSV writing functionality with support for headers and a
// UTF-8 BOM so Excel opens the files cleanly.
//
// GainsExporter: Prints the gain report to a writer and persists it as CSV
// and JSON files in the reports directory, keeping the report's metric
// order in every output.
package exporter
