// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/schemaforge/cli/internal/avro"
	"github.com/schemaforge/cli/internal/cmdctx"
	"github.com/schemaforge/cli/internal/emit"
	"github.com/schemaforge/cli/internal/jschema"
	"github.com/schemaforge/cli/internal/prompts"
	"github.com/schemaforge/cli/internal/sqlcat"
	"github.com/schemaforge/cli/internal/xsd"
)

type convertOptions struct {
	input          string
	source         string
	format         string
	namespace      string
	output         string
	name           string
	dsn            string
	dbSchema       string
	nonInteractive bool
}

func newConvertCmd(emitters emit.Registry) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a schema to one or more target formats",
		Long: fmt.Sprintf(`Convert a schema to one or more target formats.

The source kind is inferred from the input file extension (.json, .xsd,
.avsc) unless --source is given. Database sources (postgres, mysql) read
the catalog via --dsn instead of an input file.

Available formats: %s`, strings.Join(emitters.Available(), ", ")),
		Example: `  # Interactive mode
  schemaforge convert

  # JSON Schema to Avro
  schemaforge convert --input order.json --format avro

  # XSD to Go types and markdown docs
  schemaforge convert --input order.xsd --format gotypes,markdown --output models

  # Postgres catalog to Avro
  schemaforge convert --source postgres --dsn "$DATABASE_URL" --db-schema public --format avro`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, emitters, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input schema file")
	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "Source kind (jsonschema, xsd, avro, postgres, mysql)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format(s), comma-separated (%s)", strings.Join(emitters.Available(), ", ")))
	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "Avro namespace for converted types")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "schemas", "Output directory (also used as package name for Go/Protobuf)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Schema name (defaults to the input file base name)")
	cmd.Flags().StringVar(&opts.dsn, "dsn", "", "Database connection string (postgres/mysql sources)")
	cmd.Flags().StringVar(&opts.dbSchema, "db-schema", "public", "Database schema to introspect")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --input or --dsn, and --format)")

	return cmd
}

func runConvert(cmd *cobra.Command, emitters emit.Registry, opts *convertOptions) error {
	// Project config supplies defaults for flags the user didn't set.
	if sfCtx := cmdctx.FromCommand(cmd); sfCtx != nil {
		cfg := sfCtx.Config
		if opts.namespace == "" {
			opts.namespace = cfg.Namespace
		}
		if !cmd.Flags().Changed("output") && cfg.Output != "" {
			opts.output = cfg.Output
		}
		if opts.format == "" && cfg.Format != "" {
			opts.format = cfg.Format
		}
	}

	databaseSource := opts.source == sqlcat.DialectPostgres || opts.source == sqlcat.DialectMySQL

	if !opts.nonInteractive && !databaseSource {
		err := prompts.RunConvertForm(
			&opts.input, &opts.format, &opts.output,
			!cmd.Flags().Changed("output"),
			emitters.Available(),
		)
		if err != nil {
			return err
		}
	}

	if opts.input == "" && !databaseSource {
		return fmt.Errorf("no input file (use --input, or --source with --dsn for databases)")
	}
	if opts.format == "" {
		return fmt.Errorf("no output format (use --format; see 'schemaforge formats')")
	}

	name := opts.name
	if name == "" {
		if databaseSource {
			name = opts.dbSchema
		} else {
			name = strings.TrimSuffix(filepath.Base(opts.input), filepath.Ext(opts.input))
		}
	}

	entries, err := loadEntries(cmd, opts)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no type definitions found in source")
	}

	sorted := avro.Sort(entries, stderrLogger())

	if err := os.MkdirAll(opts.output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var errs error
	var results []prompts.ResultField

	for _, format := range strings.Split(opts.format, ",") {
		format = strings.TrimSpace(format)
		if format == "" {
			continue
		}

		emitter, err := emitters.Get(format)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: available formats are %s",
				format, strings.Join(emitters.Available(), ", ")))
			continue
		}

		data, err := emitter.Emit(name, sorted, opts.output)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", format, err))
			continue
		}

		outFile := filepath.Join(opts.output, emit.ToSnakeCase(name)+emitter.FileExtension())
		if err := os.WriteFile(outFile, data, 0o600); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", format, err))
			continue
		}

		results = append(results, prompts.ResultField{Label: format, Value: outFile})
	}

	if len(results) > 0 {
		prompts.PrintResult(results, fmt.Sprintf("Converted %d type(s)", countNodes(sorted)))
	}

	return errs
}

// loadEntries dispatches to the frontend selected by --source, falling back
// to the input file extension.
func loadEntries(cmd *cobra.Command, opts *convertOptions) ([]avro.Entry, error) {
	source := opts.source
	if source == "" {
		switch strings.ToLower(filepath.Ext(opts.input)) {
		case ".json":
			source = "jsonschema"
		case ".xsd":
			source = "xsd"
		case ".avsc":
			source = "avro"
		default:
			return nil, fmt.Errorf("cannot infer source kind from %q (use --source)", opts.input)
		}
	}

	switch source {
	case "jsonschema":
		return loadJSONSchema(opts)

	case "xsd":
		data, err := os.ReadFile(opts.input) //nolint:gosec // path is provided by caller
		if err != nil {
			return nil, err
		}
		return xsd.Parse(data, opts.namespace)

	case "avro":
		data, err := os.ReadFile(opts.input) //nolint:gosec // path is provided by caller
		if err != nil {
			return nil, err
		}
		return avro.Parse(data)

	case sqlcat.DialectPostgres, sqlcat.DialectMySQL:
		if opts.dsn == "" {
			return nil, fmt.Errorf("database source %q requires --dsn", source)
		}
		db, err := sqlcat.Open(source, opts.dsn)
		if err != nil {
			return nil, err
		}
		defer db.Close() //nolint:errcheck
		return sqlcat.Introspect(cmd.Context(), db, source, opts.dbSchema, opts.namespace)

	default:
		return nil, fmt.Errorf("unknown source kind %q", source)
	}
}

func loadJSONSchema(opts *convertOptions) ([]avro.Entry, error) {
	dir := filepath.Dir(opts.input)
	base := filepath.Base(opts.input)

	loader := jschema.NewLoader(os.DirFS(dir))
	schema, keyOrder, err := loader.LoadFile(base)
	if err != nil {
		return nil, err
	}
	if err := loader.ResolveRefs(schema, base); err != nil {
		return nil, err
	}

	name := opts.name
	if name == "" {
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return jschema.Convert(name, opts.namespace, schema, keyOrder)
}

// stderrLogger routes sorter warnings to stderr so piped output stays clean.
func stderrLogger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, "warning:", args)
	}, funcr.Options{})
}

func countNodes(entries []avro.Entry) int {
	n := 0
	for _, e := range entries {
		if e.Node != nil {
			n++
		}
	}
	return n
}
