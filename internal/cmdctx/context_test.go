// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package cmdctx

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaforge/cli/internal/session"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(dir))
}

func TestPreRunLoad(t *testing.T) {
	tests := []struct {
		name          string
		configYAML    string // empty means no file
		wantErr       string
		wantNamespace string
	}{
		{
			name:       "no config file is fine",
			configYAML: "",
		},
		{
			name:       "invalid yaml",
			configYAML: "version: [broken",
			wantErr:    "invalid configuration",
		},
		{
			name:       "unsupported version",
			configYAML: "version: 9",
			wantErr:    "invalid configuration",
		},
		{
			name:          "valid",
			configYAML:    "version: 1\nnamespace: com.example\n",
			wantNamespace: "com.example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.configYAML != "" {
				require.NoError(t, os.WriteFile(
					filepath.Join(dir, "schemaforge.yaml"), []byte(tt.configYAML), 0o600))
			}
			chdir(t, dir)

			cmd := &cobra.Command{}
			cmd.SetContext(context.Background())

			err := PreRunLoad(cmd, nil)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			sfCtx := FromCommand(cmd)
			if tt.wantNamespace == "" {
				assert.Nil(t, sfCtx)
			} else {
				require.NotNil(t, sfCtx)
				assert.Equal(t, tt.wantNamespace, sfCtx.Config.Namespace)
			}
		})
	}
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, session.From(context.Background()))
}
