package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Default config should be valid, got: %v", err)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	tempDir := t.TempDir()

	config, err := LoadConfig(filepath.Join(tempDir, "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Keygen.MaxExponentAttempts != 100000 {
		t.Errorf("Expected default max attempts 100000, got %d", config.Keygen.MaxExponentAttempts)
	}
	if config.Prompt.MaxRetries != 5 {
		t.Errorf("Expected default max retries 5, got %d", config.Prompt.MaxRetries)
	}
	if !config.Audit.Enabled {
		t.Error("Expected audit to be enabled by default")
	}
	if !config.Display.Banner || config.Display.BannerFont != "standard" {
		t.Errorf("Unexpected display defaults: %+v", config.Display)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "config.toml")

	config := DefaultConfig()
	config.Keygen.MaxExponentAttempts = 50
	config.Prompt.MaxRetries = 2
	config.Audit.Enabled = false
	config.Display.BannerFont = "slant"

	if err := SaveConfig(path, config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if *loaded != *config {
		t.Errorf("Loaded config %+v does not match saved %+v", loaded, config)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.toml")

	content := "[prompt]\nmax_retries = 3\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Prompt.MaxRetries != 3 {
		t.Errorf("Expected max retries 3, got %d", config.Prompt.MaxRetries)
	}
	if config.Keygen.MaxExponentAttempts != 100000 {
		t.Errorf("Expected default max attempts to survive, got %d", config.Keygen.MaxExponentAttempts)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero attempts", "[keygen]\nmax_exponent_attempts = 0\n"},
		{"too many retries", "[prompt]\nmax_retries = 1000\n"},
		{"empty font", "[display]\nbanner_font = \"\"\n"},
		{"malformed toml", "[keygen\nmax_exponent_attempts = 3\n"},
		{"wrong type", "[prompt]\nmax_retries = \"five\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			_, err := LoadConfig(path)
			if !errors.Is(err, kerrors.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got: %v", err)
			}
		})
	}
}

func TestSaveConfigRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.Prompt.MaxRetries = 0

	err := SaveConfig(filepath.Join(t.TempDir(), "config.toml"), config)
	if !errors.Is(err, kerrors.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got: %v", err)
	}
}

func TestLoadConfigDefaultPath(t *testing.T) {
	original := UserToyrsaSettings
	defer func() { UserToyrsaSettings = original }()

	tempDir := t.TempDir()
	UserToyrsaSettings = &UserSettings{
		ConfigPath: tempDir,
		DataPath:   tempDir,
	}

	config := DefaultConfig()
	config.Prompt.MaxRetries = 9
	if err := SaveConfig("", config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Expected config at default path: %v", err)
	}

	loaded, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Prompt.MaxRetries != 9 {
		t.Errorf("Expected max retries 9, got %d", loaded.Prompt.MaxRetries)
	}
}

func TestAuditLogPath(t *testing.T) {
	original := UserToyrsaSettings
	defer func() { UserToyrsaSettings = original }()

	UserToyrsaSettings = &UserSettings{DataPath: "/tmp/toyrsa-data"}
	if got := AuditLogPath(); got != filepath.Join("/tmp/toyrsa-data", "audit.jsonl") {
		t.Errorf("Unexpected audit log path: %s", got)
	}
}
