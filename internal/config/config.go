// Package config loads the optional officemru.yaml file.
package config

import (
	"fmt"
	"os"

	omerrors "github.com/systmms/officemru/internal/errors"
	"github.com/systmms/officemru/internal/logging"
	"github.com/systmms/officemru/internal/office"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration
type Config struct {
	Path       string
	Logger     *logging.Logger
	Definition *Definition
}

// Definition represents the officemru.yaml structure
type Definition struct {
	Version int `yaml:"version"`

	// Applications overrides the default scan order. Names are validated
	// against the supported set.
	Applications []string `yaml:"applications,omitempty"`

	// ExtraFolders lists additional folders the open command should include.
	ExtraFolders []string `yaml:"extraFolders,omitempty"`
}

// Load reads and parses the configuration file. A missing file is not an
// error; the defaults apply.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			c.Definition = &Definition{}
			return nil
		}
		return omerrors.UserError{
			Message:    "Failed to read configuration file",
			Details:    err.Error(),
			Suggestion: "Check file permissions and path",
			Err:        err,
		}
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return omerrors.ConfigError{
			Message:    "invalid YAML syntax in configuration file",
			Suggestion: "Check for indentation errors, missing quotes, or invalid characters. Use a YAML validator",
		}
	}

	if def.Version != 0 && def.Version != 1 {
		return omerrors.ConfigError{
			Field:      "version",
			Value:      def.Version,
			Message:    "unsupported configuration version",
			Suggestion: "Set 'version: 1' at the top of your officemru.yaml file",
		}
	}

	c.Definition = &def
	return nil
}

// ScanOrder returns the applications to scan, in order. With no override
// configured the full supported set applies in its fixed order.
func (c *Config) ScanOrder() ([]office.App, error) {
	if c.Definition == nil || len(c.Definition.Applications) == 0 {
		return office.Apps, nil
	}

	var apps []office.App
	for _, name := range c.Definition.Applications {
		app, ok := office.ResolveApp(name, "")
		if !ok {
			return nil, omerrors.ConfigError{
				Field:      "applications",
				Value:      name,
				Message:    "unknown application name",
				Suggestion: fmt.Sprintf("Use one of: word, powerpoint, excel (got '%s')", name),
			}
		}
		duplicate := false
		for _, seen := range apps {
			if seen == app {
				duplicate = true
				break
			}
		}
		if !duplicate {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

// ExtraFolders returns the configured additional folders for the open command.
func (c *Config) ExtraFolders() []string {
	if c.Definition == nil {
		return nil
	}
	return c.Definition.ExtraFolders
}
