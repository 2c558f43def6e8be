// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package commands

import (
	"fmt"
	"os"

	"github.com/linkedin/goavro/v2"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/schemaforge/cli/internal/avro"
	"github.com/schemaforge/cli/internal/prompts"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file.avsc>...",
		Short: "Validate Avro schema documents",
		Long: `Validate Avro schema documents. Each file must parse, compile into a
working Avro codec, and contain no references to types defined later in
the document.`,
		Example: `  schemaforge check messages.avsc
  schemaforge check schemas/*.avsc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}

	return cmd
}

func runCheck(paths []string) error {
	var errs error
	var results []prompts.ResultField

	for _, path := range paths {
		if err := checkFile(path); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		results = append(results, prompts.ResultField{Label: path, Value: "ok"})
	}

	if len(results) > 0 {
		prompts.PrintResult(results, "")
	}
	return errs
}

func checkFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}

	entries, err := avro.Parse(data)
	if err != nil {
		return err
	}

	// Definition order first: it names the offending type, where the codec
	// would only report an unknown name.
	defined := make(map[string]bool)
	for _, e := range entries {
		if e.Node == nil {
			continue
		}
		for _, dep := range e.Node.Dependencies {
			if !defined[dep] {
				return fmt.Errorf("%s references %s before its definition", e.Node.QualifiedName(), dep)
			}
		}
		defined[e.Node.QualifiedName()] = true
		defined[e.Node.Name] = true
	}

	if _, err := goavro.NewCodec(string(data)); err != nil {
		return fmt.Errorf("does not compile: %w", err)
	}
	return nil
}
