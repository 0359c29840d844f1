package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/typecard/typecard-cli/pkg/models"
)

const (
	AppDir           = "typecard"
	SettingsFileName = "settings.yaml"
)

// DefaultSettingsPath returns <user config dir>/typecard/settings.yaml
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, SettingsFileName), nil
}

// ReadSettings loads settings from path. A missing file yields defaults
// and no error; unset fields keep their defaults.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return models.DefaultSettings(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	settings.Normalize()
	return settings, nil
}

// WriteSettings saves settings to path, creating its directory
func WriteSettings(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

// InitSettings writes the default settings unless a file already exists.
// It reports whether a file was created.
func InitSettings(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to check settings %s: %w", path, err)
	}

	if err := WriteSettings(path, models.DefaultSettings()); err != nil {
		return false, err
	}
	return true, nil
}

// ReadInput returns the content of path, or of r when path is "-"
func ReadInput(path string, r io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
