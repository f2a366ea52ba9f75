package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"findingsheet/internal/errors"
)

// DefaultFindingsFile is where the generator writes and the validator reads
// when nothing else is configured
const DefaultFindingsFile = "test_findings.xlsx"

// Config represents the complete application configuration
type Config struct {
	Data    DataConfig
	Logging LoggingConfig
	Output  OutputConfig

	// Problems lists settings that were ignored in favour of defaults. Each
	// carries CodeConfigInvalid.
	Problems []error
}

// DataConfig holds the findings sheet location
type DataConfig struct {
	FindingsFile string
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string
}

// OutputConfig holds console rendering settings
type OutputConfig struct {
	// PlainMarkers forces [OK]/[WARN]/[ERROR] tags even on a terminal
	PlainMarkers bool
}

// Load reads an optional .env file from the working directory, then the
// environment. Bad values never stop a tool; they fall back to defaults and
// are recorded in Problems.
func Load() *Config {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped;
// variables already in the environment win over file values.
func LoadFiles(envFiles ...string) *Config {
	var problems []error
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			problems = append(problems, errors.Wrapf(errors.ConfigInvalid(err.Error()), "ignoring %s", f))
		}
	}

	config := &Config{
		Data: DataConfig{
			FindingsFile: getEnvOrDefault("FINDINGS_FILE", DefaultFindingsFile),
		},
		Logging: LoggingConfig{
			Level: strings.ToUpper(strings.TrimSpace(getEnvOrDefault("LOG_LEVEL", "INFO"))),
		},
		Output: OutputConfig{
			PlainMarkers: getEnvBoolOrDefault("NO_EMOJI", false),
		},
	}
	config.Problems = append(problems, applyDefaults(config)...)
	return config
}

func applyDefaults(config *Config) []error {
	var problems []error
	if strings.TrimSpace(config.Data.FindingsFile) == "" {
		problems = append(problems, errors.ConfigInvalid(
			fmt.Sprintf("FINDINGS_FILE is blank, using %s", DefaultFindingsFile)))
		config.Data.FindingsFile = DefaultFindingsFile
	}
	switch config.Logging.Level {
	case "ERROR", "WARN", "INFO", "DEBUG", "TRACE":
	default:
		problems = append(problems, errors.ConfigInvalid(
			fmt.Sprintf("LOG_LEVEL %q is not one of ERROR, WARN, INFO, DEBUG, TRACE, using INFO", config.Logging.Level)))
		config.Logging.Level = "INFO"
	}
	return problems
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
