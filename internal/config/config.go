package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/casefix/pkg/casefix"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig mirrors casefix.yaml. Nil lists mean "use the default";
// an explicitly empty list disables the corresponding default.
type ProjectConfig struct {
	Exclude    []string `yaml:"exclude"`
	Extensions []string `yaml:"extensions"`
	Exemptions []string `yaml:"exemptions"`
	Scope      string   `yaml:"scope"`
}

// Load reads casefix.yaml from the scanned root directory.
func Load(sourcePath string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(sourcePath, casefix.ConfigFileName))
}

// LoadFile reads a config file from an explicit path.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", casefix.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// ApplyTo copies the values set in the file onto rc.
func (c *ProjectConfig) ApplyTo(rc *casefix.RunConfig) error {
	if c.Exclude != nil {
		rc.Exclude = c.Exclude
	}
	if c.Extensions != nil {
		rc.Extensions = c.Extensions
	}
	if c.Exemptions != nil {
		rc.Exemptions = c.Exemptions
	}
	if c.Scope != "" {
		scope, err := casefix.ParseRewriteScope(c.Scope)
		if err != nil {
			return err
		}
		rc.Scope = scope
	}
	return nil
}

// Default returns the configuration casefix uses when no file is present.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Exclude:    append([]string(nil), casefix.DefaultExcludedDirs...),
		Extensions: append([]string(nil), casefix.DefaultExtensions...),
		Exemptions: append([]string(nil), casefix.DefaultExemptions...),
		Scope:      casefix.ScopeLine.String(),
	}
}

// Save writes cfg as casefix.yaml in dir and returns the file path.
func Save(dir string, cfg *ProjectConfig) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	configPath := filepath.Join(dir, casefix.ConfigFileName)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", err
	}
	return configPath, nil
}

// Effective returns the defaults overlaid with the values set in c.
// A nil c yields the defaults.
func (c *ProjectConfig) Effective() *ProjectConfig {
	eff := Default()
	if c == nil {
		return eff
	}
	if c.Exclude != nil {
		eff.Exclude = c.Exclude
	}
	if c.Extensions != nil {
		eff.Extensions = c.Extensions
	}
	if c.Exemptions != nil {
		eff.Exemptions = c.Exemptions
	}
	if c.Scope != "" {
		eff.Scope = c.Scope
	}
	return eff
}
