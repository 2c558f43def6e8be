// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schemaforge/cli/internal/avro"
)

type sortOptions struct {
	output string
	write  bool
}

func newSortCmd() *cobra.Command {
	opts := &sortOptions{}

	cmd := &cobra.Command{
		Use:   "sort <file.avsc>",
		Short: "Rewrite an Avro schema document into dependency order",
		Long: `Rewrite an Avro schema document so that every named type is defined
before it is referenced. Circular references are broken by inlining
definitions at their point of use; unresolvable cycles are reported on
stderr and left in place.`,
		Example: `  # Print the sorted document to stdout
  schemaforge sort messages.avsc

  # Sort in place
  schemaforge sort messages.avsc --write

  # Sort into a new file
  schemaforge sort messages.avsc --output sorted.avsc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Rewrite the input file in place")

	return cmd
}

func runSort(cmd *cobra.Command, path string, opts *sortOptions) error {
	if opts.write && opts.output != "" {
		return fmt.Errorf("--write and --output are mutually exclusive")
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}

	entries, err := avro.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	sorted := avro.Sort(entries, stderrLogger())

	out, err := avro.Marshal(sorted)
	if err != nil {
		return err
	}

	target := opts.output
	if opts.write {
		target = path
	}
	if target == "" {
		cmd.Print(string(out))
		return nil
	}
	return os.WriteFile(target, out, 0o600)
}
