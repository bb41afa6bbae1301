package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all Chartline configuration.
type Config struct {
	Source   SourceConfig
	Engine   EngineConfig
	Output   OutputConfig
	LogLevel string
}

// SourceConfig holds patient-document source settings.
type SourceConfig struct {
	Provider    string // registered source provider name
	PatientFile string // document path for the file provider
}

// EngineConfig holds extraction engine settings.
type EngineConfig struct {
	MaxSectionLen int // cap on sanitized note-section length; 0 = unlimited
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Format string // "text" (display lines) or "json" (NDJSON)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Source: SourceConfig{
			Provider:    getenv("CHARTLINE_SOURCE", "file"),
			PatientFile: getenv("CHARTLINE_PATIENT_FILE", "patient.json"),
		},
		Engine: EngineConfig{
			MaxSectionLen: getenvInt("CHARTLINE_MAX_SECTION_LEN", 0),
		},
		Output: OutputConfig{
			Format: getenv("CHARTLINE_OUTPUT", "text"),
		},
		LogLevel: getenv("CHARTLINE_LOG_LEVEL", "info"),
	}
}

// Validate checks field combinations and reports every problem at once.
func (c Config) Validate() error {
	var problems []string
	if c.Source.Provider == "" {
		problems = append(problems, "source provider must not be empty")
	}
	if c.Source.Provider == "file" && c.Source.PatientFile == "" {
		problems = append(problems, "CHARTLINE_PATIENT_FILE must be set for the file source")
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		problems = append(problems, fmt.Sprintf("invalid output format %q (want text or json)", c.Output.Format))
	}
	if c.Engine.MaxSectionLen < 0 {
		problems = append(problems, "max section length must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
