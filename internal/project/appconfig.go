package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/BoxCut/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.boxcut/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".boxcut")
}

// DefaultConfigPath returns the config file path, honouring BOXCUT_CONFIG.
func DefaultConfigPath() string {
	if p := os.Getenv("BOXCUT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultHistoryPath returns the design history database path, honouring BOXCUT_DB.
func DefaultHistoryPath() string {
	if p := os.Getenv("BOXCUT_DB"); p != "" {
		return p
	}
	return filepath.Join(DefaultConfigDir(), "history.db")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Fields absent from the file keep their default values.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentDesigns is never nil
	if config.RecentDesigns == nil {
		config.RecentDesigns = []string{}
	}
	return config, nil
}
