// Package config provides configuration management for the gocontract CLI
// using koanf. Settings are loaded with priority: environment variables >
// project config (.gocontract.yml, legacy .gocontract.json) > defaults.
// The verify setting seeds the process-wide verification toggle.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ariel-frischer/gocontract/contract"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings represents the gocontract CLI configuration.
type Settings struct {
	// Verify controls whether contract verification is enabled.
	// Defaults to the value seeded from GOCONTRACT_ENABLED; can be set in
	// the config file or via GOCONTRACT_VERIFY.
	Verify bool `koanf:"verify"`

	// Color selects output coloring: auto, always, or never.
	Color string `koanf:"color" validate:"oneof=auto always never"`

	// DemoDelayMS is the simulated work delay for demo commands, in
	// milliseconds. Can be set via GOCONTRACT_DEMO_DELAY_MS.
	DemoDelayMS int `koanf:"demo_delay_ms" validate:"min=0"`

	// CompanyDB is an optional path to a YAML company database for the
	// resolver demo. Empty uses the built-in sample data.
	CompanyDB string `koanf:"company_db"`
}

// Config file paths relative to the working directory.
const (
	ProjectConfigPath       = ".gocontract.yml"
	LegacyProjectConfigPath = ".gocontract.json"
)

// envPrefix namespaces the environment variable overrides.
const envPrefix = "GOCONTRACT_"

// Defaults returns the default configuration values. The verify default
// reflects the toggle's current state so an env-seeded enable survives a
// config load with no file present.
func Defaults() map[string]any {
	return map[string]any{
		"verify":        contract.Enabled(),
		"color":         "auto",
		"demo_delay_ms": 400,
		"company_db":    "",
	}
}

// Load loads settings from the project config file and environment.
// Priority: environment variables > project config > defaults.
// A custom path overrides the default project config location.
func Load(customPath string) (*Settings, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	if err := loadProjectConfig(k, customPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validateSettings(&s, customPath); err != nil {
		return nil, err
	}

	return &s, nil
}

// loadProjectConfig loads the project config, preferring YAML over legacy JSON.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	yamlPath := ProjectConfigPath
	if customPath != "" {
		yamlPath = customPath
	}

	if fileExists(yamlPath) {
		if err := ValidateYAMLSyntax(yamlPath); err != nil {
			return fmt.Errorf("validating config syntax: %w", err)
		}
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config %s: %w", yamlPath, err)
		}
		return nil
	}

	if customPath == "" && fileExists(LegacyProjectConfigPath) {
		if err := k.Load(file.Provider(LegacyProjectConfigPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy config %s: %w", LegacyProjectConfigPath, err)
		}
	}
	return nil
}

// Seed pushes the verify setting into the process-wide verification toggle.
func Seed(s *Settings) {
	if s.Verify {
		contract.Enable()
	} else {
		contract.Disable()
	}
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys and
// normalizes boolean values. Example: GOCONTRACT_DEMO_DELAY_MS ->
// demo_delay_ms. GOCONTRACT_ENABLED is an alias for verify so the toggle's
// seeding variable also works as a config override, with the same truthy
// tokens (1, true, yes).
func envTransform(key, value string) (string, any) {
	k := strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if k == "enabled" {
		k = "verify"
	}
	if k == "verify" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "true", "yes":
			return k, true
		default:
			return k, false
		}
	}
	return k, value
}
