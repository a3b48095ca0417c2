// Package poset provides the structural consistency check of the adelith
// pipeline: a small directed-acyclic-graph model with cycle detection and
// topological generation layering.
//
// 🚀 What is poset?
//
//	A deterministic in-memory DAG with string-labelled vertices:
//	  • NewDiamond builds the invariant 4-node diamond x0→{x1,x2}→x3
//	  • Validate runs general three-colour cycle detection (the fixed
//	    diamond is trivially acyclic, but the contract generalizes to any
//	    replacement graph)
//	  • Generations peels vertices into topological generations: all
//	    vertices with no unresolved predecessors form generation 0, then
//	    the next layer, and so on
//	  • VerifyMobiusHierarchy checks the Möbius layering depth — exactly
//	    three generations — and fails closed on a cyclic graph
//
// Determinism:
//
//	Vertex iteration is always in sorted ID order; generations list their
//	members sorted. Identical graphs yield identical results across runs.
//
// Complexity:
//
//   - Validate:    O(V + E) three-colour DFS
//   - Generations: O(V + E) iterative in-degree peeling
//
// This package has no dependency on the numeric engine; it is a pure
// structural check.
package poset
