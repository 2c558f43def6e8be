// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Schemaforge Authors

package avro

import (
	"slices"

	"github.com/go-logr/logr"
)

// resolution carries the shared state of one sorting run.
type resolution struct {
	c   *collection
	log logr.Logger
}

// resolveNode drives the swap engine over all of target's fields until its
// dependency list is empty or a full pass makes no progress. stack holds the
// qualified names currently being resolved; the target's own name is pushed
// for the duration of the call so recursive inlining cannot re-enter it.
//
// Stale entries (names no longer backed by any node in the collection) are
// dropped silently: inlining consumes nodes, so they occur naturally. A
// non-empty list that survives an unchanged pass is reported and left as-is.
func (r *resolution) resolveNode(target *Node, stack []string) {
	qname := target.QualifiedName()
	stack = append(slices.Clone(stack), qname)

	// The equality check below is the termination proof; the pass cap is a
	// defensive backstop independent of it.
	maxPasses := len(r.c.nodes) + len(target.Dependencies) + 1

	for pass := 0; len(target.Dependencies) > 0 && pass < maxPasses; pass++ {
		before := slices.Clone(target.Dependencies)

		kept := target.Dependencies[:0]
		for _, dep := range target.Dependencies {
			if dep == qname || dep == target.Name {
				continue // a node never lists itself
			}
			if r.c.find(dep) == nil {
				continue // stale, already consumed elsewhere
			}
			kept = append(kept, dep)
		}
		target.Dependencies = kept

		for _, dep := range slices.Clone(target.Dependencies) {
			depNode := r.c.find(dep)
			if depNode == nil {
				continue
			}
			for i := range target.Fields {
				target.Fields[i].Type = r.swapExpr(target.Fields[i].Type, dep, depNode, target, stack)
				if !slices.Contains(target.Dependencies, dep) {
					break
				}
			}
		}

		if slices.Equal(before, target.Dependencies) && len(target.Dependencies) > 0 {
			r.log.Info("unresolved dependencies, record may be incomplete",
				"record", qname, "dependencies", target.Dependencies)
			return
		}
	}

	if len(target.Dependencies) == 0 {
		target.Dependencies = nil
	}
}
