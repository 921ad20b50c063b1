// Command buildcharts turns the wellness survey workbook into six
// interactive HTML figures and the percentage-gain summary.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wellpulse/internal/app"
)

func main() {
	surveyFile := flag.String("survey", "", "survey workbook path (overrides configuration)")
	sheet := flag.String("sheet", "", "raw survey sheet name (overrides configuration)")
	flag.Parse()

	// Optional .env file; a missing file is not an error.
	godotenv.Load()

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	application.SetSurveySource(*surveyFile, *sheet)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger.Error("Survey pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
