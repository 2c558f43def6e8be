// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package commands

import (
	"github.com/spf13/cobra"

	"github.com/schemaforge/cli/internal/emit"
)

func newFormatsCmd(emitters emit.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range emitters.Available() {
				e, err := emitters.Get(name)
				if err != nil {
					return err
				}
				cmd.Printf("%-10s (%s)\n", name, e.FileExtension())
			}
			return nil
		},
	}
}
