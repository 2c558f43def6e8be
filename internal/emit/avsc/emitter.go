// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package avsc emits Avro schema JSON documents.
package avsc

import (
	"fmt"

	"github.com/linkedin/goavro/v2"

	"github.com/schemaforge/cli/internal/avro"
)

// Emitter renders an ordered entry sequence as an Avro schema document.
type Emitter struct{}

// Name returns the emitter's identifier.
func (e *Emitter) Name() string {
	return "avro"
}

// FileExtension returns the file extension for Avro schema files.
func (e *Emitter) FileExtension() string {
	return ".avsc"
}

// Emit serializes the entries and verifies that the result compiles into a
// working Avro codec, which holds whenever the sorter resolved every
// dependency.
func (e *Emitter) Emit(_ string, entries []avro.Entry, _ string) ([]byte, error) {
	out, err := avro.Marshal(entries)
	if err != nil {
		return nil, err
	}

	if _, err := goavro.NewCodec(string(out)); err != nil {
		return nil, fmt.Errorf("emitted schema is not valid Avro: %w", err)
	}
	return out, nil
}
