// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/schemaforge/cli/internal/commands"
	"github.com/schemaforge/cli/internal/emit"
	"github.com/schemaforge/cli/internal/emit/avsc"
	"github.com/schemaforge/cli/internal/emit/gotypes"
	"github.com/schemaforge/cli/internal/emit/markdown"
	"github.com/schemaforge/cli/internal/emit/protobuf"
)

// NewRegistry returns the emitter registry with every built-in format.
func NewRegistry() emit.Registry {
	emitters := make(emit.Registry)
	emitters.Add(&avsc.Emitter{})
	emitters.Add(&gotypes.Emitter{})
	emitters.Add(&protobuf.Emitter{})
	emitters.Add(&markdown.Emitter{})
	return emitters
}

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context) error {
	rootCmd := commands.NewRootCmd(NewRegistry())
	return rootCmd.ExecuteContext(ctx)
}
