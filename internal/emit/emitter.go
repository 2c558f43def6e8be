// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package emit renders ordered, dependency-free Avro node sequences into
// target formats. Emitters may assume every named-type reference they walk
// is either defined earlier in the sequence or inlined in place.
package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemaforge/cli/internal/avro"
)

// Emitter defines the interface all format emitters implement.
type Emitter interface {
	// Name returns the emitter's identifier (e.g., "avro", "gotypes").
	Name() string

	// Emit renders the ordered entries. name labels the output document
	// and outputDir doubles as the package name where the target needs one.
	Emit(name string, entries []avro.Entry, outputDir string) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".avsc").
	FileExtension() string
}

// Registry maps emitter names to implementations.
type Registry map[string]Emitter

// Add registers an emitter under its own name.
func (r Registry) Add(e Emitter) {
	r[e.Name()] = e
}

// Get retrieves an emitter by name.
func (r Registry) Get(name string) (Emitter, error) {
	e, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return e, nil
}

// Available returns all registered emitter names, sorted.
func (r Registry) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToSnakeCase converts a string to a valid snake_case identifier.
func ToSnakeCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9')
	})

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	result := strings.Join(parts, "_")
	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}

// ToPascalCase converts a snake_case or kebab-case string to PascalCase.
func ToPascalCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return sb.String()
}
