// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/schemaforge/cli/internal/cmdctx"
	"github.com/schemaforge/cli/internal/emit"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(emitters emit.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schemaforge",
		Short: "Convert schemas into dependency-ordered Avro and other formats",
		Long: `schemaforge converts JSON Schema, XSD, and live SQL catalogs into Avro
schema documents and derived formats (Go types, Protobuf, markdown).

Named type definitions are sorted into dependency order before emission;
circular references are broken by inlining definitions at their point of use.`,
		PersistentPreRunE: cmdctx.PreRunLoad,
		SilenceUsage:      true,
	}

	rootCmd.AddCommand(newInitCmd(emitters))
	rootCmd.AddCommand(newConvertCmd(emitters))
	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFormatsCmd(emitters))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
