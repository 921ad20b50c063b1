// Package app provides application initialization and lifecycle management
// for the survey pipeline. It wires configuration loading, logging, input
// validation, workbook parsing, chart rendering and gain exports together
// and runs them as one batch.
//
// # Initialization Flow
//
// The typical initialization sequence:
//
//	1. Load configuration from environment and files
//	2. Initialize logging
//	3. Resolve paths and create output directories
//	4. Initialize pipeline components with their dependencies
//
// # Usage
//
// The main entry point is typically:
//
//	application, err := app.NewApplication()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := application.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline Stages
//
// Run executes five stages in order and aborts on the first failure:
//
//	- Validate the survey workbook and output directories
//	- Parse and clean the raw survey sheet
//	- Render the six figures
//	- Summarize per-candidate percentage gains
//	- Print the summary and export it as CSV and JSON
//
// # Error Handling
//
// All initialization and run errors are returned to the caller. The app does
// not call os.Exit() directly, allowing the main function to control the
// exit process.
package app
