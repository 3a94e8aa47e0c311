package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"fundraiser/internal/logging"
)

// Environment variables that override file configuration.
const (
	EnvOutputDir   = "FUNDRAISER_OUTPUT_DIR"
	EnvDoneKeyword = "FUNDRAISER_DONE_KEYWORD"
	EnvLogLevel    = "FUNDRAISER_LOG_LEVEL"
	EnvNoColor     = "FUNDRAISER_NO_COLOR"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; existing variables win.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides cfg with any FUNDRAISER_* variables that are set.
func ApplyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvOutputDir); ok && v != "" {
		cfg.Report.Directory = v
	}
	if v, ok := os.LookupEnv(EnvDoneKeyword); ok && v != "" {
		cfg.Calculator.DoneKeyword = v
	}
	if v, ok := os.LookupEnv(EnvNoColor); ok {
		if b, err := strconv.ParseBool(v); err != nil {
			logging.Sugar.Warnf("ignoring %s=%q: not a boolean", EnvNoColor, v)
		} else {
			cfg.Output.NoColor = b
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
}
