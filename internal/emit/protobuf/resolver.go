// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package protobuf

import (
	"strings"

	"github.com/schemaforge/cli/internal/emit"
)

type resolver struct{}

func (r *resolver) PrimitiveType(name, logicalType string) string {
	switch logicalType {
	case "date", "uuid", "decimal":
		return "string"
	case "timestamp-millis", "timestamp-micros":
		return "int64"
	}

	switch name {
	case "string":
		return "string"
	case "int":
		return "int32"
	case "long":
		return "int64"
	case "float":
		return "float"
	case "double":
		return "double"
	case "boolean":
		return "bool"
	case "bytes":
		return "bytes"
	default:
		return "string"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "repeated " + elemType
}

func (r *resolver) MapType(valueType string) string {
	return "map<string, " + valueType + ">"
}

// UnionType picks the first member; proto3 has no union values.
func (r *resolver) UnionType(memberTypes []string) string {
	if len(memberTypes) > 0 {
		return memberTypes[0]
	}
	return "string"
}

func (r *resolver) RefType(name string) string {
	return emit.ToPascalCase(name)
}

func (r *resolver) FormatName(name string) string {
	return emit.ToPascalCase(name)
}

func (r *resolver) EnrichField(f *emit.FieldDef) {
	if f.Nullable && !strings.HasPrefix(f.Type, "repeated ") && !strings.HasPrefix(f.Type, "map<") {
		f.Type = "optional " + f.Type
	}
	f.Name = emit.ToSnakeCase(f.Name)
}
