// Package config provides centralized configuration management for the
// survey pipeline. It handles loading configuration from multiple sources,
// validation, and provides a type-safe API for accessing configuration
// values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Optional config.yaml file
//	3. Default values (lowest priority)
//
// The defaults reproduce the fixed-path behavior of the pipeline with no
// configuration present: the workbook at data/DataCollection.xlsx, the
// sheet named "Survey Raw", charts under charts/ and summary exports under
// reports/.
//
// # Environment Variables
//
// All environment variables follow the pattern WELLPULSE_* for namespacing:
//
//	WELLPULSE_SURVEY_FILE=data/DataCollection.xlsx
//	WELLPULSE_SURVEY_SHEET=Survey Raw
//	WELLPULSE_CHARTS_DIR=charts
//	WELLPULSE_REPORTS_DIR=reports
//	WELLPULSE_LOGGING_LEVEL=info
//
// A .env file in the working directory is honored when present (loaded by
// the command entrypoint before Load runs).
package config
