// Package dataprocessing turns the raw survey workbook into the cleaned
// observation table and the derived series the charts and the gain report
// are built from.
//
// The pipeline is strictly ordered: Parser reads the Excel sheet and binds
// columns by normalized header name, the cleaning rules coerce cell text
// into typed samples while recording every gap in a CleaningAudit, and the
// Table views (candidate grouping, day axis, heart-rate subset, pivots and
// aligned series) feed the downstream consumers. Summarizer computes the
// ordered percentage-gain report from first and last recorded values per
// candidate.
package dataprocessing
