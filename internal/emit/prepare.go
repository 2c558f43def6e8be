// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package emit

import (
	"strings"

	"github.com/schemaforge/cli/internal/avro"
)

// prepareContext holds mutable state during sequence preparation.
type prepareContext struct {
	resolver TypeResolver
	defs     []TypeDef
}

// Prepare flattens an ordered Avro entry sequence into emitter template
// data. Inline definitions (the product of cycle-breaking) are extracted
// back out as named type definitions, placed immediately before the type
// that carries them; passthrough entries contribute nothing.
func Prepare(entries []avro.Entry, resolver TypeResolver) *Data {
	ctx := &prepareContext{resolver: resolver}

	for _, e := range entries {
		if e.Node == nil {
			continue
		}
		ctx.addNode(e.Node)
	}

	return &Data{Defs: ctx.defs, Extra: make(map[string]any)}
}

func (c *prepareContext) addNode(n *avro.Node) string {
	name := c.resolver.FormatName(n.Name)

	if n.Kind == avro.KindEnum {
		c.defs = append(c.defs, TypeDef{
			Name:    name,
			Doc:     n.Doc,
			Enum:    true,
			Symbols: n.Symbols,
		})
		return name
	}

	fields := make([]FieldDef, 0, len(n.Fields))
	for _, f := range n.Fields {
		expr, nullable := unwrapNullable(f.Type)
		fd := FieldDef{
			Name:     f.Name,
			Type:     c.resolveType(expr),
			Nullable: nullable,
			Doc:      f.Doc,
		}
		c.resolver.EnrichField(&fd)
		fields = append(fields, fd)
	}

	c.defs = append(c.defs, TypeDef{Name: name, Doc: n.Doc, Fields: fields})
	return name
}

func (c *prepareContext) resolveType(expr avro.TypeExpr) string {
	switch t := expr.(type) {
	case avro.Ref:
		name := string(t)
		if isPrimitive(name) {
			return c.resolver.PrimitiveType(name, "")
		}
		return c.resolver.RefType(bareName(name))

	case *avro.Logical:
		return c.resolver.PrimitiveType(t.Type, t.LogicalType)

	case *avro.Array:
		return c.resolver.ArrayType(c.resolveType(t.Items))

	case *avro.Map:
		return c.resolver.MapType(c.resolveType(t.Values))

	case avro.Union:
		members := make([]string, 0, len(t))
		for _, m := range t {
			if ref, ok := m.(avro.Ref); ok && ref == "null" {
				continue
			}
			members = append(members, c.resolveType(m))
		}
		if len(members) == 1 {
			return members[0]
		}
		return c.resolver.UnionType(members)

	case *avro.Node:
		// Inlined definition: extract it as a def of its own and
		// reference it by name.
		return c.resolver.RefType(c.addNode(t))

	default:
		return c.resolver.PrimitiveType("string", "")
	}
}

// unwrapNullable recognizes the ["null", T] optionality convention.
func unwrapNullable(expr avro.TypeExpr) (avro.TypeExpr, bool) {
	u, ok := expr.(avro.Union)
	if !ok || len(u) != 2 {
		return expr, false
	}
	if ref, ok := u[0].(avro.Ref); ok && ref == "null" {
		return u[1], true
	}
	return expr, false
}

func isPrimitive(name string) bool {
	switch name {
	case "null", "boolean", "int", "long", "float", "double", "bytes", "string":
		return true
	}
	return false
}

func bareName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
