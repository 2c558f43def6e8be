// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{
		Version:   1,
		Namespace: "com.example.shop",
		Output:    "gen/schemas",
	}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	loaded, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.Namespace, loaded.Namespace)
	assert.Equal(t, cfg.Output, loaded.Output)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "valid config",
			cfg:     Config{Version: 1, Namespace: "com.example"},
			wantErr: "",
		},
		{
			name:    "no namespace",
			cfg:     Config{Version: 1},
			wantErr: "",
		},
		{
			name:    "unsupported version",
			cfg:     Config{Version: 99},
			wantErr: "unsupported config version",
		},
		{
			name:    "empty namespace segment",
			cfg:     Config{Version: 1, Namespace: "com..example"},
			wantErr: "empty segment",
		},
		{
			name:    "digit-leading segment",
			cfg:     Config{Version: 1, Namespace: "com.9lives"},
			wantErr: "starts with a digit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_SaveFormat(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, FileName)

	cfg := Config{Version: 1, Namespace: "com.example"}

	err := cfg.Save(cfgPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cfgPath) //nolint:gosec // test file path
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, "version: 1")
	assert.Contains(t, output, "namespace: com.example")
	assert.NotContains(t, output, "output:")
}

func TestValidateNamespace(t *testing.T) {
	assert.NoError(t, ValidateNamespace("ex"))
	assert.NoError(t, ValidateNamespace("com.example_v2"))
	assert.Error(t, ValidateNamespace("com.ex-ample"))
}
