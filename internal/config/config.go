// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package config loads the interpreter's runtime configuration from an
// optional YAML file, command-line flags, and built-in defaults, with
// flags taking precedence over the file.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/holomush/dial/internal/version"
)

// Config is the interpreter's runtime configuration.
type Config struct {
	// Prompt is the string the REPL prints before reading each line.
	Prompt string `koanf:"prompt" yaml:"prompt" json:"prompt" jsonschema:"minLength=1,default=dial> "`
	// LogFormat selects the slog handler: "json" or "text".
	LogFormat string `koanf:"log_format" yaml:"log_format" json:"log_format" jsonschema:"enum=json,enum=text,default=json"`
	// LogLevel selects the minimum record level: "debug", "info", "warn", "error".
	LogLevel string `koanf:"log_level" yaml:"log_level" json:"log_level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	// MetricsAddr is the listen address for the Prometheus /metrics
	// endpoint. Empty disables the observability server.
	MetricsAddr string `koanf:"metrics_addr" yaml:"metrics_addr" json:"metrics_addr,omitempty"`
	// MinLanguageVersion is a semver constraint the running interpreter's
	// internal/version.LanguageVersion must satisfy. Empty means no gate.
	MinLanguageVersion string `koanf:"min_language_version" yaml:"min_language_version" json:"min_language_version,omitempty"`
}

// Default returns the configuration used when no file or flags override
// it.
func Default() Config {
	return Config{
		Prompt:    "dial> ",
		LogFormat: "json",
		LogLevel:  "info",
	}
}

// Load merges, in ascending precedence, built-in defaults, an optional
// YAML file at path (skipped if path is empty or the file doesn't
// exist), and flags bound to fs. The merged configuration is validated
// against the generated JSON Schema before being unmarshaled into a
// Config, and its min_language_version constraint (if any) is checked
// against the running interpreter's language version.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	def := Default()
	defaults := map[string]any{
		"prompt":     def.Prompt,
		"log_format": def.LogFormat,
		"log_level":  def.LogLevel,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, oops.In("config").Hint("failed to load defaults").Wrap(err)
	}

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, oops.In("config").With("path", path).Hint("failed to load config file").Wrap(err)
			}
		} else if !os.IsNotExist(statErr) {
			return Config{}, oops.In("config").With("path", path).Hint("failed to stat config file").Wrap(statErr)
		}
	}

	if fs != nil {
		if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
			return Config{}, oops.In("config").Hint("failed to load flags").Wrap(err)
		}
	}

	merged, err := k.Marshal(json.Parser())
	if err != nil {
		return Config{}, oops.In("config").Hint("failed to marshal merged configuration").Wrap(err)
	}
	if err := ValidateSchema(merged); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.In("config").Hint("failed to unmarshal configuration").Wrap(err)
	}

	if cfg.MinLanguageVersion != "" {
		ok, err := version.Satisfies(cfg.MinLanguageVersion)
		if err != nil {
			return Config{}, oops.In("config").With("constraint", cfg.MinLanguageVersion).Hint("invalid min_language_version").Wrap(err)
		}
		if !ok {
			return Config{}, oops.In("config").
				With("constraint", cfg.MinLanguageVersion).
				With("running", version.LanguageVersion).
				New("running language version does not satisfy min_language_version")
		}
	}

	return cfg, nil
}
