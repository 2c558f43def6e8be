// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package markdown

import (
	"strings"

	"github.com/schemaforge/cli/internal/emit"
)

type resolver struct{}

func (r *resolver) PrimitiveType(name, logicalType string) string {
	if logicalType != "" {
		return logicalType
	}
	return name
}

func (r *resolver) ArrayType(elemType string) string {
	return "array of " + elemType
}

func (r *resolver) MapType(valueType string) string {
	return "map of " + valueType
}

func (r *resolver) UnionType(memberTypes []string) string {
	return strings.Join(memberTypes, " \\| ")
}

func (r *resolver) RefType(name string) string {
	return "[" + name + "](#" + strings.ToLower(name) + ")"
}

func (r *resolver) FormatName(name string) string {
	return name
}

func (r *resolver) EnrichField(_ *emit.FieldDef) {}
