// Package nodes extracts the defined-node and referenced-identifier sets
// from flowchart source. It emits no issues itself; its output feeds typo
// detection within the same analysis run.
package nodes

import (
	"github.com/emresnme/merdia/pkg/diagram"
)

// Set is an insertion-ordered set of identifier strings. Iteration order
// is deterministic so analysis output stays order-stable across runs.
type Set struct {
	order []string
	seen  map[string]bool
}

// NewSet creates an empty identifier set.
func NewSet() *Set {
	return &Set{seen: make(map[string]bool)}
}

// Add inserts id unless already present.
func (s *Set) Add(id string) {
	if s.seen[id] {
		return
	}
	s.seen[id] = true
	s.order = append(s.order, id)
}

// Has reports whether id is in the set.
func (s *Set) Has(id string) bool {
	return s.seen[id]
}

// Len returns the number of identifiers in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// Items returns the identifiers in insertion order. The returned slice is
// shared; callers must not mutate it.
func (s *Set) Items() []string {
	return s.order
}

// Graph holds the extraction result for one source text: identifiers with
// an explicit or implicit definition, and identifiers referenced as edge
// endpoints. Both sets are read-only once built.
type Graph struct {
	Nodes *Set
	Refs  *Set
}

// Extractor builds the node and reference sets from the line sequence.
type Extractor struct{}

// New creates a node/reference extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the pass identifier.
func (e *Extractor) Name() string { return "nodes" }

// Extract walks every non-comment line and collects explicit definitions
// (identifier followed by a shape-opening delimiter), implicit definitions
// (bare non-keyword identifiers outside edge expressions), and
// edge-endpoint references. String literal content is masked first so
// identifiers inside labels never register. Edge endpoints go to the
// reference set only; an identifier that appears solely as an endpoint is
// not considered defined.
func (e *Extractor) Extract(lines []string) *Graph {
	g := &Graph{Nodes: NewSet(), Refs: NewSet()}

	for _, raw := range lines {
		if diagram.IsComment(raw) {
			continue
		}
		line, _ := diagram.ExtractStrings(raw)

		endpoints := make(map[string]bool)
		for _, id := range diagram.EdgeEndpoints(line) {
			if diagram.IsKeyword(id) {
				continue
			}
			endpoints[id] = true
			g.Refs.Add(id)
		}

		for _, id := range diagram.Definitions(line) {
			g.Nodes.Add(id)
		}
		for _, id := range diagram.Identifiers(line) {
			if diagram.IsKeyword(id) || endpoints[id] {
				continue
			}
			g.Nodes.Add(id)
		}
	}

	return g
}
