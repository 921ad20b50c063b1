package config

// Application constants for the survey pipeline
const (
	// Application Info
	AppName    = "WellPulse"
	AppVersion = "1.0.0"

	// Survey Input
	DefaultSurveyFile = "data/DataCollection.xlsx"
	DefaultSheetName  = "Survey Raw"

	// Directories (relative to the working directory)
	DefaultDataDir    = "data"
	DefaultChartsDir  = "charts"
	DefaultReportsDir = "reports"
	DefaultLogsDir    = "logs"

	// Figure Files
	FigureEnergyHeatmap    = "energy_heatmap.html"
	FigureMoodDistribution = "mood_distribution.html"
	FigureClarityTrend     = "mental_clarity_trend.html"
	FigureAnxietyTrend     = "anxiety_trend.html"
	FigureHeartRateTrend   = "heart_rate_trend.html"
	FigurePostureRadar     = "posture_radar.html"

	// Summary Exports
	GainsCSVFile  = "percentage_gains.csv"
	GainsJSONFile = "percentage_gains.json"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "console"
	DefaultLogFile   = "logs/buildcharts.log"

	// Chart Canvas
	DefaultChartWidth  = "960px"
	DefaultChartHeight = "560px"
)

// FigureFiles returns the six figure file names in render order.
func FigureFiles() []string {
	return []string{
		FigureEnergyHeatmap,
		FigureMoodDistribution,
		FigureClarityTrend,
		FigureAnxietyTrend,
		FigureHeartRateTrend,
		FigurePostureRadar,
	}
}
