package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultSettingsFile is read from the working directory unless LINE_TOOLS_SETTINGS is set.
const DefaultSettingsFile = "settings.env"

type AppConfig struct {
	ColorOutput string  // auto, always or never
	RateLimit   float64 // Files opened per second by count, 0 means unlimited
	BurstLimit  int     // Burst of file opens allowed
	Debug       bool
}

// SettingsFile returns the env file Load should read.
func SettingsFile() string {
	if p := strings.TrimSpace(os.Getenv("LINE_TOOLS_SETTINGS")); p != "" {
		return p
	}
	return DefaultSettingsFile
}

// Load reads envFile into the process environment and builds the config from it.
// A missing file is not an error.
func Load(envFile string) *AppConfig {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("Warning: Could not load %s. Falling back to system environment variables", envFile)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from getenv, applying a default for every unset or bad value.
func FromEnv(getenv func(string) string) *AppConfig {
	colorOutput := strings.ToLower(strings.TrimSpace(getenv("COLOR_OUTPUT")))
	if colorOutput != ColorAlways && colorOutput != ColorNever {
		colorOutput = ColorAuto // default
	}

	rateLimit, err := strconv.ParseFloat(getenv("RATE_LIMIT"), 64)
	if err != nil || rateLimit < 0 {
		rateLimit = 0
	}

	burstLimit, err := strconv.Atoi(getenv("BURST_LIMIT"))
	if err != nil || burstLimit <= 0 {
		burstLimit = 5
	}

	debug, err := strconv.ParseBool(getenv("LOG_DEBUG"))
	if err != nil {
		debug = false
	}

	return &AppConfig{
		ColorOutput: colorOutput,
		RateLimit:   rateLimit,
		BurstLimit:  burstLimit,
		Debug:       debug,
	}
}
