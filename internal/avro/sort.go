// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package avro

import (
	"slices"

	"github.com/go-logr/logr"
)

// Sort orders entries so that every named type a record references is either
// defined earlier in the sequence or inlined at the point of use. Passthrough
// entries are copied through unchanged, in encountered order, before any node.
//
// Nodes are mutated in place: satisfied dependency lists are stripped, and
// breaking a cycle replaces a reference inside a consumer with the full
// definition of the referenced node, which then no longer appears as its own
// entry. Given the same input, two runs produce the same sequence.
//
// An unresolvable cycle is reported through log and never hangs: the nodes
// sorted so far come back first, followed by the stuck nodes with their
// residual dependency lists intact.
func Sort(entries []Entry, log logr.Logger) []Entry {
	out := make([]Entry, 0, len(entries))
	var pending []*Node
	for _, e := range entries {
		if e.Node == nil {
			out = append(out, e)
			continue
		}
		pending = append(pending, e.Node)
	}
	if len(pending) == 0 {
		return out
	}

	r := &resolution{c: &collection{nodes: pending}, log: log}
	emitted := make(map[string]bool)

	emit := func(n *Node) {
		n.Dependencies = nil
		out = append(out, Entry{Node: n})
		emitted[n.QualifiedName()] = true
		emitted[n.Name] = true
		r.c.remove(n)
	}

	for len(r.c.nodes) > 0 {
		// Free pass: emit nodes whose dependencies are already satisfied,
		// restarting the scan after each removal so a freshly satisfied
		// sibling is picked up in encounter order.
		progressed := false
		for i := 0; i < len(r.c.nodes); {
			n := r.c.nodes[i]
			n.Dependencies = filterSatisfied(n, emitted)
			if len(n.Dependencies) == 0 {
				emit(n)
				progressed = true
				i = 0
				continue
			}
			i++
		}
		if progressed || len(r.c.nodes) == 0 {
			continue
		}

		// Nothing is free: force progress by inlining, starting with the
		// first remaining node carrying dependencies. Resolving one node can
		// consume a sibling from the collection; a consumed node must never
		// be emitted again, its definition already lives inside a consumer.
		for _, n := range slices.Clone(r.c.nodes) {
			if !slices.Contains(r.c.nodes, n) {
				continue
			}
			if len(n.Dependencies) == 0 {
				continue
			}
			before := slices.Clone(n.Dependencies)
			nodesBefore := len(r.c.nodes)
			r.resolveNode(n, nil)
			n.Dependencies = filterSatisfied(n, emitted)
			if len(n.Dependencies) == 0 {
				emit(n)
				progressed = true
				break
			}
			// Content equality, not length: consuming one dependency while
			// absorbing a transitive one is progress with the same count.
			if len(r.c.nodes) < nodesBefore || !slices.Equal(n.Dependencies, before) {
				progressed = true
				break
			}
		}
		if progressed {
			continue
		}

		// No node could be unblocked: report the residue and return what
		// was sorted, stuck nodes appended with dependencies intact.
		stuck := make([]string, 0, len(r.c.nodes))
		for _, n := range r.c.nodes {
			stuck = append(stuck, n.QualifiedName())
		}
		log.Info("unresolvable dependency cycle, returning partial order", "nodes", stuck)
		for _, n := range r.c.nodes {
			out = append(out, Entry{Node: n})
		}
		break
	}

	return out
}

// filterSatisfied drops dependency names already present in the output and
// any self-reference (a type is in scope once its own definition begins).
func filterSatisfied(n *Node, emitted map[string]bool) []string {
	if len(n.Dependencies) == 0 {
		return n.Dependencies
	}
	kept := n.Dependencies[:0]
	for _, dep := range n.Dependencies {
		if emitted[dep] || dep == n.QualifiedName() || dep == n.Name {
			continue
		}
		kept = append(kept, dep)
	}
	return kept
}
