// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package cmdctx wires project context loading into cobra commands.
package cmdctx

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/schemaforge/cli/internal/session"
)

// FromCommand extracts the schemaforge Context from a cobra.Command's
// context. Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *session.Context {
	return session.From(cmd.Context())
}

// PreRunLoad is a PersistentPreRunE function that loads the project context
// and stores it in the command's context. A missing schemaforge.yaml is not
// an error: the config only supplies flag defaults.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	ctx, err := session.Load(cmd.Context())
	if err != nil {
		if errors.Is(err, session.ErrNotInitialized) {
			return nil
		}
		return err
	}
	cmd.SetContext(ctx)
	return nil
}
