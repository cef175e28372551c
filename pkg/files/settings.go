package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/gridedit/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	AppDir           = "gridedit"
	SettingsFileName = "settings.yaml"
)

// SettingsPath returns the location of the optional settings file.
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, SettingsFileName), nil
}

// ReadSettings decodes the settings file at path over the defaults, so keys
// missing from the file keep their default values. A missing file yields
// the defaults and no error.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, &Error{Op: "read settings", Kind: KindConfig, Path: path, Err: err}
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return models.DefaultSettings(), &Error{Op: "read settings", Kind: KindConfig, Path: path, Err: err}
	}

	if settings.UI.MaxCellWidth < 1 {
		settings.UI.MaxCellWidth = models.DefaultSettings().UI.MaxCellWidth
	}
	return settings, nil
}
