// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package markdown emits human-readable schema documentation.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/schemaforge/cli/internal/avro"
	"github.com/schemaforge/cli/internal/emit"
)

//go:embed markdown.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "markdown.go.tmpl"))

// Emitter renders an ordered entry sequence as markdown documentation.
type Emitter struct{}

// Name returns the emitter's identifier.
func (e *Emitter) Name() string {
	return "markdown"
}

// FileExtension returns the file extension for markdown files.
func (e *Emitter) FileExtension() string {
	return ".md"
}

// Emit renders the entries through the markdown template.
func (e *Emitter) Emit(name string, entries []avro.Entry, _ string) ([]byte, error) {
	data := emit.Prepare(entries, &resolver{})
	data.Extra["Title"] = name

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
