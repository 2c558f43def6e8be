// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package config handles schemaforge project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the schemaforge configuration file.
const FileName = "schemaforge.yaml"

// Config represents the schemaforge.yaml project configuration file.
// Every field beyond Version is a default that command-line flags override.
type Config struct {
	Version   int    `yaml:"version"`
	Namespace string `yaml:"namespace,omitempty"`
	Output    string `yaml:"output,omitempty"`
	Format    string `yaml:"format,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Namespace != "" {
		if err := ValidateNamespace(c.Namespace); err != nil {
			return err
		}
	}
	return nil
}

// ValidateNamespace checks that s is a valid dotted Avro namespace.
func ValidateNamespace(s string) error {
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return fmt.Errorf("namespace %q has an empty segment", s)
		}
		for i, r := range part {
			switch {
			case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9':
				if i == 0 {
					return fmt.Errorf("namespace segment %q starts with a digit", part)
				}
			default:
				return fmt.Errorf("namespace segment %q contains %q", part, r)
			}
		}
	}
	return nil
}
