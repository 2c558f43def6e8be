// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package avro

import "slices"

// collection is the set of nodes still awaiting emission. The swap engine
// removes a node from it when the node's definition gets inlined into a
// consumer.
type collection struct {
	nodes []*Node
}

func (c *collection) find(name string) *Node {
	for _, n := range c.nodes {
		if n.matchesRef(name) {
			return n
		}
	}
	return nil
}

func (c *collection) remove(target *Node) {
	for i, n := range c.nodes {
		if n == target {
			c.nodes = slices.Delete(c.nodes, i, i+1)
			return
		}
	}
}

// swapExpr replaces references to dep (defined by depNode) inside expr with
// depNode's full definition, updating owner's dependency list as it goes.
// It returns the possibly rewritten expression.
//
// Guards make every call safe to repeat: once the dependency is resolved or
// depNode has been consumed elsewhere the call is a no-op, and a dep found on
// the visitation stack has its obligation dropped rather than inlined. One
// pass never grows owner's dependency list except by absorbing depNode's own
// transitive dependencies.
func (r *resolution) swapExpr(expr TypeExpr, dep string, depNode *Node, owner *Node, stack []string) TypeExpr {
	if !slices.Contains(owner.Dependencies, dep) {
		return expr
	}
	if r.c.find(dep) == nil {
		return expr
	}
	if slices.Contains(stack, dep) || slices.Contains(stack, depNode.QualifiedName()) {
		// The dependency is a type currently being resolved, so its
		// definition will enclose this position once inlining settles. A
		// bare name reference is valid there; drop the obligation instead
		// of inlining a type into itself.
		if i := slices.Index(owner.Dependencies, dep); i >= 0 {
			owner.Dependencies = slices.Delete(owner.Dependencies, i, i+1)
		}
		return expr
	}

	switch t := expr.(type) {
	case Ref:
		if depNode.matchesRef(string(t)) {
			r.consume(owner, dep, depNode, stack)
			return depNode
		}
		return expr

	case Union:
		// First pass: drop the matching member, then append the full
		// definition as a new member. Order among the others holds.
		matched := false
		out := make(Union, 0, len(t))
		for _, m := range t {
			if ref, ok := m.(Ref); ok && !matched && depNode.matchesRef(string(ref)) {
				matched = true
				continue
			}
			out = append(out, m)
		}
		if matched {
			r.consume(owner, dep, depNode, stack)
			out = append(out, depNode)
		}
		// Second pass: the dependency can also hide inside a nested
		// member (an inline record, array, or map carried by the union).
		for i, m := range out {
			if _, ok := m.(Ref); ok {
				continue
			}
			out[i] = r.swapExpr(m, dep, depNode, owner, stack)
		}
		return out

	case *Array:
		t.Items = r.swapExpr(t.Items, dep, depNode, owner, stack)
		return t

	case *Map:
		t.Values = r.swapExpr(t.Values, dep, depNode, owner, stack)
		return t

	case *Node:
		// An inline record can reference the same outer dependency.
		if t.Kind == KindRecord && t != depNode {
			nested := append(slices.Clone(stack), t.QualifiedName())
			for i := range t.Fields {
				t.Fields[i].Type = r.swapExpr(t.Fields[i].Type, dep, depNode, owner, nested)
			}
		}
		return t

	default:
		return expr
	}
}

// consume performs the bookkeeping for one inlining: the defining node
// leaves the collection, the satisfied name leaves owner's dependency list,
// and owner absorbs the inlined node's transitive dependencies. A node that
// still carries dependencies of its own is resolved in place before it is
// considered settled.
func (r *resolution) consume(owner *Node, dep string, depNode *Node, stack []string) {
	r.c.remove(depNode)
	if i := slices.Index(owner.Dependencies, dep); i >= 0 {
		owner.Dependencies = slices.Delete(owner.Dependencies, i, i+1)
	}

	ownerName := owner.QualifiedName()
	for _, td := range depNode.Dependencies {
		if td == ownerName || td == owner.Name || td == dep {
			continue
		}
		if !slices.Contains(owner.Dependencies, td) {
			owner.Dependencies = append(owner.Dependencies, td)
		}
	}

	if len(depNode.Dependencies) > 0 {
		r.resolveNode(depNode, stack)
	}
}
