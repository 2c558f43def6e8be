// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

// Package jschema loads JSON Schema documents and converts them into Avro
// type-node graphs.
package jschema

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// IsFileRef returns true if ref is an external file reference.
// File refs do not start with "#/".
func IsFileRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "#/")
}

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a JSON Schema file. It also extracts the
// original property order from the raw bytes, which json.Unmarshal discards.
func (l *Loader) LoadFile(filePath string) (*jsonschema.Schema, map[string][]string, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, nil, fmt.Errorf("failed to parse schema %s: %w", filePath, err)
	}

	keyOrder, err := ExtractKeyOrder(data)
	if err != nil {
		return nil, nil, err
	}

	return &schema, keyOrder, nil
}

// ResolveRefs resolves all external file $refs in the schema tree in-place.
// It recursively loads referenced schemas and replaces the ref with the
// loaded content. Internal refs (starting with #/) are left unchanged.
func (l *Loader) ResolveRefs(schema *jsonschema.Schema, basePath string) error {
	for _, s := range Traverse(schema) {
		if !IsFileRef(s.Ref) {
			continue
		}
		refPath := path.Join(basePath, s.Ref)
		loaded, _, err := l.LoadFile(refPath)
		if err != nil {
			return err
		}
		if err := l.ResolveRefs(loaded, path.Dir(refPath)); err != nil {
			return err
		}
		*s = *loaded
	}
	return nil
}

// ExtractKeyOrder walks raw JSON and records the key order of every
// "properties" object, keyed by its dotted path.
func ExtractKeyOrder(data []byte) (map[string][]string, error) {
	result := make(map[string][]string)
	var extract func(dec *json.Decoder, path string)
	extract = func(dec *json.Decoder, path string) {
		token, err := dec.Token()
		if err != nil {
			return
		}
		if t, ok := token.(json.Delim); ok {
			if t == '{' {
				var keys []string
				for dec.More() {
					keyToken, err := dec.Token()
					if err != nil {
						return
					}
					key, ok := keyToken.(string)
					if !ok {
						continue
					}
					keys = append(keys, key)
					var newPath string
					if path == "" {
						newPath = key
					} else {
						newPath = path + "." + key
					}
					extract(dec, newPath)
				}
				_, _ = dec.Token()
				if strings.HasSuffix(path, "properties") {
					result[path] = keys
				}
			} else if t == '[' {
				for dec.More() {
					extract(dec, path)
				}
				_, _ = dec.Token()
			}
		}
	}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	extract(dec, "")
	return result, nil
}

// Traverse returns every schema in the tree, cycle-safe.
func Traverse(schema *jsonschema.Schema) []*jsonschema.Schema {
	var out []*jsonschema.Schema
	visited := make(map[*jsonschema.Schema]struct{})

	var walk func(s *jsonschema.Schema)
	walk = func(s *jsonschema.Schema) {
		if s == nil {
			return
		}
		if _, ok := visited[s]; ok {
			return
		}
		visited[s] = struct{}{}
		out = append(out, s)

		for _, p := range s.Properties {
			walk(p)
		}
		walk(s.Items)
		for _, p := range s.PrefixItems {
			walk(p)
		}
		walk(s.AdditionalProperties)
		for _, p := range s.AllOf {
			walk(p)
		}
		for _, p := range s.AnyOf {
			walk(p)
		}
		for _, p := range s.OneOf {
			walk(p)
		}
		walk(s.Not)
		for _, p := range s.Defs {
			walk(p)
		}
	}
	walk(schema)
	return out
}
