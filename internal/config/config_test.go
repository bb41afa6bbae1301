package config

import (
	"os"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CHARTLINE_SOURCE", "CHARTLINE_PATIENT_FILE",
		"CHARTLINE_OUTPUT", "CHARTLINE_LOG_LEVEL",
		"CHARTLINE_MAX_SECTION_LEN",
	} {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Source.Provider != "file" {
		t.Fatalf("expected default provider 'file', got %q", cfg.Source.Provider)
	}
	if cfg.Source.PatientFile != "patient.json" {
		t.Fatalf("expected default patient file 'patient.json', got %q", cfg.Source.PatientFile)
	}
	if cfg.Output.Format != "text" {
		t.Fatalf("expected default output 'text', got %q", cfg.Output.Format)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level 'info', got %q", cfg.LogLevel)
	}
	if cfg.Engine.MaxSectionLen != 0 {
		t.Fatalf("expected default MaxSectionLen=0, got %d", cfg.Engine.MaxSectionLen)
	}
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	os.Setenv("CHARTLINE_PATIENT_FILE", "/data/pat_jsons.json")
	os.Setenv("CHARTLINE_OUTPUT", "json")
	os.Setenv("CHARTLINE_MAX_SECTION_LEN", "4000")
	defer clearEnv(t)

	cfg := Load()

	if cfg.Source.PatientFile != "/data/pat_jsons.json" {
		t.Fatalf("expected patient file override, got %q", cfg.Source.PatientFile)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected output 'json', got %q", cfg.Output.Format)
	}
	if cfg.Engine.MaxSectionLen != 4000 {
		t.Fatalf("expected MaxSectionLen=4000, got %d", cfg.Engine.MaxSectionLen)
	}
}

func TestValidate_Valid(t *testing.T) {
	clearEnv(t)
	if err := Load().Validate(); err != nil {
		t.Fatalf("expected default config to validate, got: %v", err)
	}
}

func TestValidate_BadFormat(t *testing.T) {
	cfg := Load()
	cfg.Output.Format = "yaml"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid output format")
	}
	if !strings.Contains(err.Error(), "format") {
		t.Fatalf("expected error to mention 'format', got: %v", err)
	}
}

func TestValidate_MissingPatientFile(t *testing.T) {
	cfg := Load()
	cfg.Source.PatientFile = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for empty patient file with file source")
	}
	if !strings.Contains(err.Error(), "CHARTLINE_PATIENT_FILE") {
		t.Fatalf("expected error to mention the env var, got: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := Load()
	cfg.Source.Provider = ""
	cfg.Output.Format = "loud"
	cfg.Engine.MaxSectionLen = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for multiple bad fields")
	}
	msg := err.Error()
	for _, want := range []string{"provider", "format", "section length"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %q, got: %v", want, msg)
		}
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		envVal   string
		set      bool
		fallback int
		want     int
	}{
		{"empty uses fallback", "", false, 100, 100},
		{"valid int", "500", true, 100, 500},
		{"zero", "0", true, 100, 0},
		{"invalid falls back", "abc", true, 100, 100},
		{"negative", "-1", true, 100, -1},
	}

	const key = "CHARTLINE_TEST_GETENVINT"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				os.Setenv(key, tt.envVal)
				defer os.Unsetenv(key)
			} else {
				os.Unsetenv(key)
			}
			got := getenvInt(key, tt.fallback)
			if got != tt.want {
				t.Errorf("getenvInt(%q, %d) = %d, want %d", tt.envVal, tt.fallback, got, tt.want)
			}
		})
	}
}
