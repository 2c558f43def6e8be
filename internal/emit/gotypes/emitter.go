// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package gotypes emits Go struct type definitions.
package gotypes

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/schemaforge/cli/internal/avro"
	"github.com/schemaforge/cli/internal/emit"
)

//go:embed gotypes.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "gotypes.go.tmpl"))

// Emitter renders an ordered entry sequence as Go struct definitions.
type Emitter struct{}

// Name returns the emitter's identifier.
func (e *Emitter) Name() string {
	return "gotypes"
}

// FileExtension returns the file extension for Go source files.
func (e *Emitter) FileExtension() string {
	return ".go"
}

// Emit renders the entries through the Go template. The output directory's
// base name doubles as the package name.
func (e *Emitter) Emit(_ string, entries []avro.Entry, outputDir string) ([]byte, error) {
	data := emit.Prepare(entries, &resolver{})

	data.Extra["Package"] = filepath.Base(outputDir)

	data.Extra["NeedsTimeImport"] = false
	for _, def := range data.Defs {
		for i := range def.Fields {
			if strings.Contains(def.Fields[i].Type, "time.Time") {
				data.Extra["NeedsTimeImport"] = true
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gotypes.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
