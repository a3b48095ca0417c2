// SPDX-License-Identifier: MIT
// Package poset: DAG model, cycle detection, and generation peeling.

package poset

import (
	"errors"
	"sort"
)

// Vertex visitation states for the three-colour DFS.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants are done.
)

// MobiusDepth is the expected number of topological generations of the
// diamond hierarchy: {x0}, {x1, x2}, {x3}.
const MobiusDepth = 3

var (
	// ErrEmptyVertexID indicates an empty string used as a vertex label.
	ErrEmptyVertexID = errors.New("poset: empty vertex id")

	// ErrCycleDetected indicates that generation peeling stalled because
	// the graph contains a directed cycle.
	ErrCycleDetected = errors.New("poset: cycle detected")
)

// DAG is a directed graph with string-labelled vertices. Edges are stored
// as successor sets; duplicate edges collapse. The zero value is not
// usable; construct via New or NewDiamond.
type DAG struct {
	succ map[string]map[string]struct{} // vertex → successor set
}

// New returns an empty DAG.
func New() *DAG {
	return &DAG{succ: make(map[string]map[string]struct{})}
}

// NewDiamond builds the invariant 4-node diamond poset:
//
//	x0 → x1, x0 → x2, x1 → x3, x2 → x3.
func NewDiamond() *DAG {
	d := New()
	// The builder cannot fail on non-empty literals; ignore the error path.
	_ = d.AddEdge("x0", "x1")
	_ = d.AddEdge("x0", "x2")
	_ = d.AddEdge("x1", "x3")
	_ = d.AddEdge("x2", "x3")

	return d
}

// AddVertex ensures a vertex exists. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for an empty label.
func (d *DAG) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := d.succ[id]; !ok {
		d.succ[id] = make(map[string]struct{})
	}

	return nil
}

// AddEdge inserts a directed edge from→to, creating missing vertices.
// Returns ErrEmptyVertexID if either label is empty.
func (d *DAG) AddEdge(from, to string) error {
	if err := d.AddVertex(from); err != nil {
		return err
	}
	if err := d.AddVertex(to); err != nil {
		return err
	}
	d.succ[from][to] = struct{}{}

	return nil
}

// Vertices returns all vertex IDs in sorted order.
func (d *DAG) Vertices() []string {
	out := make([]string, 0, len(d.succ))
	for id := range d.succ {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Successors returns the sorted successor IDs of a vertex; nil for an
// unknown vertex.
func (d *DAG) Successors(id string) []string {
	set, ok := d.succ[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Validate reports whether the graph is acyclic. It always runs the general
// three-colour DFS, even on the fixed diamond, so the contract holds for
// any replacement graph.
func (d *DAG) Validate() bool {
	// 1. All vertices start White; drive DFS from each in sorted order.
	state := make(map[string]int, len(d.succ))
	for _, v := range d.Vertices() {
		if state[v] == White {
			if !d.acyclicFrom(v, state) {
				return false
			}
		}
	}

	return true
}

// acyclicFrom performs DFS from id, marking states and detecting back-edges.
func (d *DAG) acyclicFrom(id string, state map[string]int) bool {
	// 1. Mark as in-progress (Gray).
	state[id] = Gray

	// 2. Explore successors in sorted order for deterministic traversal.
	for _, nbr := range d.Successors(id) {
		switch state[nbr] {
		case Gray:
			// Back-edge Gray→Gray: a directed cycle.
			return false
		case White:
			if !d.acyclicFrom(nbr, state) {
				return false
			}
		}
	}

	// 3. Mark as fully explored (Black).
	state[id] = Black

	return true
}

// Generations partitions the vertices into topological generations:
// generation 0 holds every vertex with no unresolved predecessor, and each
// later generation is peeled after removing the previous one. Returns
// ErrCycleDetected when peeling stalls before all vertices are placed.
func (d *DAG) Generations() ([][]string, error) {
	// 1. Compute in-degrees over the current edge set.
	indeg := make(map[string]int, len(d.succ))
	for _, v := range d.Vertices() {
		if _, ok := indeg[v]; !ok {
			indeg[v] = 0
		}
		for succ := range d.succ[v] {
			indeg[succ]++
		}
	}

	// 2. Iteratively peel zero in-degree layers.
	remaining := len(indeg)
	placed := make(map[string]bool, remaining)
	var generations [][]string
	for remaining > 0 {
		// 2a. Collect the current frontier in sorted order.
		var layer []string
		for _, v := range d.Vertices() {
			if !placed[v] && indeg[v] == 0 {
				layer = append(layer, v)
			}
		}

		// 2b. A stalled peel with vertices left means a cycle.
		if len(layer) == 0 {
			return nil, ErrCycleDetected
		}

		// 2c. Remove the layer, resolving its outgoing edges.
		for _, v := range layer {
			placed[v] = true
			remaining--
			for succ := range d.succ[v] {
				indeg[succ]--
			}
		}
		generations = append(generations, layer)
	}

	return generations, nil
}

// VerifyMobiusHierarchy reports whether the graph layers into exactly
// MobiusDepth topological generations. Fails closed: a cyclic graph
// returns false rather than an error.
func (d *DAG) VerifyMobiusHierarchy() bool {
	gens, err := d.Generations()
	if err != nil {
		return false
	}

	return len(gens) == MobiusDepth
}
