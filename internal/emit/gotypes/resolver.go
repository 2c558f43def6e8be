// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package gotypes

import (
	"strings"

	"github.com/schemaforge/cli/internal/emit"
)

type resolver struct{}

func (r *resolver) PrimitiveType(name, logicalType string) string {
	switch logicalType {
	case "date", "timestamp-millis", "timestamp-micros":
		return "time.Time"
	case "uuid", "decimal":
		return "string"
	}

	switch name {
	case "string":
		return "string"
	case "int":
		return "int32"
	case "long":
		return "int64"
	case "float":
		return "float32"
	case "double":
		return "float64"
	case "boolean":
		return "bool"
	case "bytes":
		return "[]byte"
	default:
		return "any"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "[]" + elemType
}

func (r *resolver) MapType(valueType string) string {
	return "map[string]" + valueType
}

func (r *resolver) UnionType(_ []string) string {
	return "any"
}

func (r *resolver) RefType(name string) string {
	return toPascalCase(name)
}

func (r *resolver) FormatName(name string) string {
	return toPascalCase(name)
}

func (r *resolver) EnrichField(f *emit.FieldDef) {
	tag := f.Name
	if f.Nullable {
		tag += ",omitempty"
		if !strings.HasPrefix(f.Type, "[]") && !strings.HasPrefix(f.Type, "map[") {
			f.Type = "*" + f.Type
		}
	}
	f.Tag = "`json:\"" + tag + "\"`"
	f.Name = toPascalCase(f.Name)
}

// toPascalCase converts a snake_case or camelCase string to PascalCase.
// It handles common Go acronyms (ID, URL, HTTP, API, JSON, XML, SQL, HTML).
func toPascalCase(s string) string {
	acronyms := map[string]string{
		"id":   "ID",
		"url":  "URL",
		"http": "HTTP",
		"api":  "API",
		"json": "JSON",
		"xml":  "XML",
		"sql":  "SQL",
		"html": "HTML",
		"ip":   "IP",
		"uri":  "URI",
		"uuid": "UUID",
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var sb strings.Builder
	for _, part := range parts {
		lower := strings.ToLower(part)
		if acronym, ok := acronyms[lower]; ok {
			sb.WriteString(acronym)
		} else if part != "" {
			sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return sb.String()
}
