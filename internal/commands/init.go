// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/schemaforge/cli/internal/config"
	"github.com/schemaforge/cli/internal/emit"
	"github.com/schemaforge/cli/internal/prompts"
)

type initOptions struct {
	namespace      string
	output         string
	format         string
	nonInteractive bool
}

func newInitCmd(emitters emit.Registry) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a schemaforge project",
		Long: `Initialize a schemaforge project by writing a schemaforge.yaml file
with default namespace, output directory, and format for convert.`,
		Example: `  # Interactive mode
  schemaforge init

  # Non-interactive
  schemaforge init --namespace com.example --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(emitters, opts)
		},
	}

	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "Default Avro namespace")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "schemas", "Default output directory")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "avro", "Default output format")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(emitters emit.Registry, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", config.FileName)
	}

	if !opts.nonInteractive {
		err := prompts.RunInitForm(&opts.namespace, &opts.output, &opts.format, emitters.Available())
		if err != nil {
			return err
		}
	}

	cfg := &config.Config{
		Version:   config.CurrentConfigVersion,
		Namespace: opts.namespace,
		Output:    opts.output,
		Format:    opts.format,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := emitters.Get(opts.format); err != nil {
		return err
	}

	if err := cfg.Save(cfgPath); err != nil {
		return err
	}

	fields := []prompts.ResultField{
		{Label: "Config", Value: cfgPath},
		{Label: "Output", Value: opts.output},
		{Label: "Format", Value: opts.format},
	}
	if opts.namespace != "" {
		fields = append(fields, prompts.ResultField{Label: "Namespace", Value: opts.namespace})
	}
	prompts.PrintResult(fields, "Project initialized")

	return nil
}
