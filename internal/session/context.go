// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schemaforge/cli/internal/config"
)

var (
	// ErrNotInitialized indicates no schemaforge.yaml was found in the
	// current directory.
	ErrNotInitialized = errors.New("not in a schemaforge project (schemaforge.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration. Fields act as flag
// defaults; commands work without a project config at all.
type Context struct {
	Config *config.Config
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the schemaforge Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, config.FileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	return context.WithValue(ctx, contextKey{}, &Context{Config: cfg}), nil
}

// From extracts the schemaforge Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sfCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sfCtx
	}
	return nil
}
