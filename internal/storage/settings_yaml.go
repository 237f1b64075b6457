package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"intervalclock/internal/core/model"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	RunSecs     uint    `yaml:"run_secs"`
	RestSecs    uint    `yaml:"rest_secs"`
	AutoNext    bool    `yaml:"auto_next"`
	FontSize    float32 `yaml:"font_size"`
	Transparent float64 `yaml:"transparent"`
}

// LoadSettings reads user settings from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return model.DefaultSettings(), err
	}
	return loadFromPath(configPath)
}

// SaveSettings writes user settings to YAML.
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return saveToPath(configPath, settings)
}

func loadFromPath(configPath string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func saveToPath(configPath string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		RunSecs:     settings.RunSecs,
		RestSecs:    settings.RestSecs,
		AutoNext:    settings.AutoNext,
		FontSize:    settings.FontSize,
		Transparent: settings.Transparent,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	// Zero durations are legal: a zero-length work phase simply expires
	// on the next tick. Display values are range-guarded instead.
	settings.RunSecs = fileData.RunSecs
	settings.RestSecs = fileData.RestSecs
	settings.AutoNext = fileData.AutoNext

	if fileData.FontSize > 0 {
		settings.FontSize = fileData.FontSize
	}
	if fileData.Transparent >= 0 && fileData.Transparent <= 1 {
		settings.Transparent = fileData.Transparent
	}
}
