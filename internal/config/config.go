// Package config loads project settings from brick.yaml.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"brick/internal/language"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project file looked up by the tools.
const FileName = "brick.yaml"

// Config mirrors brick.yaml:
//
//	languageVersion: "1.1"
//	features:
//	  CapturedVariableSmartCasts: true
//	warnings: false
type Config struct {
	LanguageVersion string          `yaml:"languageVersion"`
	Features        map[string]bool `yaml:"features"`
	Warnings        *bool           `yaml:"warnings"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `yaml:"-"`
}

// Default is the configuration used without a brick.yaml: the latest
// language version with warnings on.
func Default() *Config {
	return &Config{LanguageVersion: language.Latest.String()}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	c.Path = path
	return c, nil
}

// Parse decodes and validates a configuration. Unknown keys are rejected
// and an empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	c := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	if c.LanguageVersion == "" {
		c.LanguageVersion = language.Latest.String()
	}
	if _, err := c.Settings(); err != nil {
		return nil, err
	}
	return c, nil
}

// Find looks for brick.yaml in dir and its parents. It returns an empty
// path when there is none.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadNearest loads the brick.yaml closest to dir, or the defaults when no
// file exists.
func LoadNearest(dir string) (*Config, error) {
	path := Find(dir)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Settings converts the configuration into language settings.
func (c *Config) Settings() (language.Settings, error) {
	version, err := language.ParseVersion(c.LanguageVersion)
	if err != nil {
		return language.Settings{}, errors.Wrap(err, "languageVersion")
	}
	settings := language.NewSettings(version)
	for name, enabled := range c.Features {
		feature, ok := language.FeatureByName(name)
		if !ok {
			return language.Settings{}, errors.Errorf("unknown feature %q, expected one of %s",
				name, strings.Join(language.FeatureNames(), ", "))
		}
		settings = settings.With(feature, enabled)
	}
	return settings, nil
}

// WarningsEnabled reports whether warnings should be shown.
func (c *Config) WarningsEnabled() bool {
	return c.Warnings == nil || *c.Warnings
}
