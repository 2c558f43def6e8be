// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package avro

import "slices"

var primitives = map[string]bool{
	"null":    true,
	"boolean": true,
	"int":     true,
	"long":    true,
	"float":   true,
	"double":  true,
	"bytes":   true,
	"string":  true,
}

// ComputeDependencies annotates every node that lacks an explicit dependency
// list with the qualified names of the other nodes its field tree references.
// Names defined inline within the same tree are in scope and never counted,
// and a node never depends on itself.
func ComputeDependencies(entries []Entry) {
	byName := make(map[string]string) // bare and qualified name -> qualified name
	for _, e := range entries {
		if e.Node == nil {
			continue
		}
		qname := e.Node.QualifiedName()
		byName[qname] = qname
		byName[e.Node.Name] = qname
	}

	for _, e := range entries {
		if e.Node == nil || e.Node.Dependencies != nil {
			continue
		}
		e.Node.Dependencies = scanNode(e.Node, byName)
	}
}

// scanNode collects the qualified names referenced by n's field tree, in
// first-seen order. local tracks names whose definitions enclose the
// current position.
func scanNode(n *Node, byName map[string]string) []string {
	var deps []string
	local := []string{n.QualifiedName(), n.Name}
	for i := range n.Fields {
		deps = scanExpr(n.Fields[i].Type, byName, local, deps)
	}
	return deps
}

func scanExpr(expr TypeExpr, byName map[string]string, local []string, deps []string) []string {
	switch t := expr.(type) {
	case Ref:
		name := string(t)
		if primitives[name] || slices.Contains(local, name) {
			return deps
		}
		if qname, ok := byName[name]; ok && !slices.Contains(local, qname) && !slices.Contains(deps, qname) {
			deps = append(deps, qname)
		}
		return deps
	case Union:
		for _, m := range t {
			deps = scanExpr(m, byName, local, deps)
		}
		return deps
	case *Array:
		return scanExpr(t.Items, byName, local, deps)
	case *Map:
		return scanExpr(t.Values, byName, local, deps)
	case *Node:
		// An inline definition brings its own name into scope for
		// everything nested beneath it.
		local = append(local, t.QualifiedName(), t.Name)
		for i := range t.Fields {
			deps = scanExpr(t.Fields[i].Type, byName, local, deps)
		}
		return deps
	default:
		return deps
	}
}
