package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Survey  SurveyConfig  `yaml:"survey" envconfig:"SURVEY"`
	Charts  ChartsConfig  `yaml:"charts" envconfig:"CHARTS"`
	Reports ReportsConfig `yaml:"reports" envconfig:"REPORTS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// SurveyConfig locates the survey workbook and its raw-data sheet
type SurveyConfig struct {
	File  string `yaml:"file" envconfig:"FILE" validate:"required"`
	Sheet string `yaml:"sheet" envconfig:"SHEET" validate:"required"`
}

// ChartsConfig controls figure output
type ChartsConfig struct {
	Dir    string `yaml:"dir" envconfig:"DIR" validate:"required"`
	Width  string `yaml:"width" envconfig:"WIDTH" validate:"required"`
	Height string `yaml:"height" envconfig:"HEIGHT" validate:"required"`
}

// ReportsConfig controls summary exports
type ReportsConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required"`
}

// Load builds the configuration: defaults, then the optional YAML file,
// then environment variables, then validation. Environment variables win.
func Load() (*Config, error) {
	cfg := Default()

	if configFile := findConfigFile(); configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("WELLPULSE", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.normalize()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	return nil
}

// normalize folds free-form string fields to their canonical casing
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Output = strings.ToLower(strings.TrimSpace(c.Logging.Output))
}

// validate checks the merged configuration
func (c *Config) validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// findConfigFile returns the path to the config file
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use defaults and env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Survey: SurveyConfig{
			File:  DefaultSurveyFile,
			Sheet: DefaultSheetName,
		},
		Charts: ChartsConfig{
			Dir:    DefaultChartsDir,
			Width:  DefaultChartWidth,
			Height: DefaultChartHeight,
		},
		Reports: ReportsConfig{
			Dir: DefaultReportsDir,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFile,
		},
	}
}
