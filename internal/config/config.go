package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aflah02/pyqa/internal/validator"
)

// ConfigFile is the name of the pyqa configuration file, looked up in the
// project root directory.
const ConfigFile = ".pyqa.yml"

// SchemaID identifies the embedded configuration schema.
const SchemaID = "https://github.com/aflah02/pyqa/config.schema.json"

// configSchema is the JSON Schema every .pyqa.yml must satisfy before the
// semantic rules in Validate are applied. additionalProperties is false so
// that misspelled keys fail loudly instead of being silently ignored.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "https://github.com/aflah02/pyqa/config.schema.json",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "targets": {
      "type": "array",
      "items": { "type": "string", "minLength": 1 }
    },
    "settingsFile": { "type": "string", "minLength": 1 },
    "checks": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "imports": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "forceSingleLine": { "type": "boolean" }
          }
        },
        "style": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "maxLineLength": { "type": "integer", "minimum": 1 }
          }
        },
        "format": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "lineLength": { "type": "integer", "minimum": 1 }
          }
        },
        "copyright": {
          "type": "object",
          "additionalProperties": false,
          "properties": {
            "marker": { "type": "string", "minLength": 1 }
          }
        }
      }
    }
  }
}`

const DefaultConfigContent = `# pyqa configuration
#
# TARGETS
#
# The ordered set of paths the quality gate runs against, relative to the
# project root. A plain directory name is passed to the tools as-is (they
# recurse into it). An entry containing glob characters is expanded against
# the project root and matches individual files.
targets:
  - "*.py"      # root-level files such as setup.py
  - "examples"  # the examples directory
  - "keras_nlp" # the main package directory - change this for your project

# SETTINGS FILE
#
# Shared tool settings, handed to isort (--sp) and flake8 (--config).
settingsFile: setup.cfg

# CHECKS
#
# Per-check tuning. The pipeline order is fixed: imports, style, format,
# copyright.
checks:
  imports:
    forceSingleLine: true # isort --sl
  style:
    maxLineLength: 200 # flake8 --max-line-length
  format:
    lineLength: 80 # black --line-length
  copyright:
    marker: "Copyright" # every .py file must contain this literal substring
`

// ImportsConfig tunes the isort import-order check.
type ImportsConfig struct {
	// ForceSingleLine maps to isort's --sl flag.
	ForceSingleLine bool `yaml:"forceSingleLine"`
}

// StyleConfig tunes the flake8 style check.
type StyleConfig struct {
	MaxLineLength int `yaml:"maxLineLength"`
}

// FormatConfig tunes the black format check.
type FormatConfig struct {
	LineLength int `yaml:"lineLength"`
}

// CopyrightConfig tunes the copyright-header check.
type CopyrightConfig struct {
	// Marker is the literal substring every Python file must contain.
	Marker string `yaml:"marker"`
}

type ChecksConfig struct {
	Imports   ImportsConfig   `yaml:"imports"`
	Style     StyleConfig     `yaml:"style"`
	Format    FormatConfig    `yaml:"format"`
	Copyright CopyrightConfig `yaml:"copyright"`
}

type Config struct {
	Targets      []string     `yaml:"targets"`
	SettingsFile string       `yaml:"settingsFile"`
	Checks       ChecksConfig `yaml:"checks"`
}

// Default returns the built-in configuration, which reproduces the original
// keras-nlp quality gate: root-level *.py files plus the examples and
// keras_nlp directories, setup.cfg settings, flake8 at 200 columns, black at
// 80 columns, and a "Copyright" header marker.
func Default() *Config {
	return &Config{
		Targets:      []string{"*.py", "examples", "keras_nlp"},
		SettingsFile: "setup.cfg",
		Checks: ChecksConfig{
			Imports:   ImportsConfig{ForceSingleLine: true},
			Style:     StyleConfig{MaxLineLength: 200},
			Format:    FormatConfig{LineLength: 80},
			Copyright: CopyrightConfig{Marker: "Copyright"},
		},
	}
}

// New loads the configuration from projectRootDir. A missing .pyqa.yml is not
// an error: the defaults apply, so the gate works out of the box. A .pyqa.yml
// that is present but invalid is fatal.
func New(projectRootDir string, compiler validator.Compiler) (*Config, error) {
	configPath := filepath.Join(projectRootDir, ConfigFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	if vErr := validateAgainstSchema(data, compiler); vErr != nil {
		return nil, vErr
	}

	// Unmarshal over the defaults so partially-specified files keep the
	// built-in values for everything they leave out.
	config := Default()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, &InvalidYAMLError{Wrapped: err}
	}

	if vErr := config.Validate(); vErr != nil {
		return nil, vErr
	}

	return config, nil
}

// validateAgainstSchema checks the raw YAML document against the embedded
// configuration schema. Going via JSON gives the schema library canonical
// document types regardless of what the YAML decoder produced.
func validateAgainstSchema(data []byte, compiler validator.Compiler) error {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &InvalidYAMLError{Wrapped: err}
	}
	if raw == nil {
		// An empty file means "all defaults"; nothing to check.
		return nil
	}

	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return &InvalidYAMLError{Wrapped: err}
	}
	var doc validator.JSONDocument
	if err = json.Unmarshal(jsonBytes, &doc); err != nil {
		return &InvalidYAMLError{Wrapped: err}
	}

	var schemaDoc validator.JSONSchema
	if err = json.Unmarshal([]byte(configSchema), &schemaDoc); err != nil {
		return err
	}
	if err = compiler.AddSchema(SchemaID, schemaDoc); err != nil {
		return err
	}
	v, err := compiler.Compile(SchemaID)
	if err != nil {
		return err
	}

	if err = v.Validate(doc); err != nil {
		return &SchemaViolationError{Wrapped: err}
	}
	return nil
}

// Validate applies the semantic rules the schema cannot express.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return &MissingPropertyError{Property: "targets"}
	}
	for _, target := range c.Targets {
		if strings.TrimSpace(target) == "" {
			return &InvalidTargetError{Target: target, Reason: "must not be blank"}
		}
		// Targets are written with forward slashes regardless of platform.
		slashed := filepath.ToSlash(target)
		if filepath.IsAbs(target) || strings.HasPrefix(slashed, "/") {
			return &InvalidTargetError{Target: target, Reason: "must be relative to the project root"}
		}
		if slashed == ".." || strings.HasPrefix(slashed, "../") {
			return &InvalidTargetError{Target: target, Reason: "must not escape the project root"}
		}
	}

	if c.SettingsFile == "" {
		return &MissingPropertyError{Property: "settingsFile"}
	}
	if c.Checks.Style.MaxLineLength <= 0 {
		return &InvalidLineLengthError{Property: "checks.style.maxLineLength", Value: c.Checks.Style.MaxLineLength}
	}
	if c.Checks.Format.LineLength <= 0 {
		return &InvalidLineLengthError{Property: "checks.format.lineLength", Value: c.Checks.Format.LineLength}
	}
	if c.Checks.Copyright.Marker == "" {
		return &MissingPropertyError{Property: "checks.copyright.marker"}
	}

	return nil
}
