package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	ConfigPath string
	DataPath   string
}

var UserToyrsaSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")

	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserToyrsaSettings = &UserSettings{
		ConfigPath: filepath.Join(configDir, "toyrsa"),
		DataPath:   filepath.Join(dataDir, "toyrsa"),
	}
}

// ConfigFilePath returns the default location of config.toml.
func ConfigFilePath() string {
	return filepath.Join(UserToyrsaSettings.ConfigPath, "config.toml")
}

// AuditLogPath returns the location of the operation log.
func AuditLogPath() string {
	return filepath.Join(UserToyrsaSettings.DataPath, "audit.jsonl")
}
