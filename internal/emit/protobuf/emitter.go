// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package protobuf emits Protocol Buffers (proto3) message definitions.
package protobuf

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/schemaforge/cli/internal/avro"
	"github.com/schemaforge/cli/internal/emit"
)

//go:embed protobuf.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "protobuf.go.tmpl"))

// Emitter renders an ordered entry sequence as proto3 definitions.
type Emitter struct{}

// Name returns the emitter's identifier.
func (e *Emitter) Name() string {
	return "protobuf"
}

// FileExtension returns the file extension for Protocol Buffers files.
func (e *Emitter) FileExtension() string {
	return ".proto"
}

// Emit renders the entries through the proto3 template, assigning
// sequential field numbers (= 1, = 2, ...) per message.
func (e *Emitter) Emit(_ string, entries []avro.Entry, outputDir string) ([]byte, error) {
	data := emit.Prepare(entries, &resolver{})

	data.Extra["Package"] = emit.ToSnakeCase(filepath.Base(outputDir))

	for i := range data.Defs {
		for j := range data.Defs[i].Fields {
			data.Defs[i].Fields[j].Tag = fmt.Sprintf("= %d", j+1)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "protobuf.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
