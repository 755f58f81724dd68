package neograph

import (
	"errors"
	"testing"
)

func pathFixture(t *testing.T) ([]*Node, []*Relationship) {
	t.Helper()
	nodes := []*Node{
		HydrateNode(0, []string{"Person"}, map[string]interface{}{"name": "Alice"}),
		HydrateNode(1, []string{"Person"}, map[string]interface{}{"name": "Bob"}),
		HydrateNode(2, []string{"Person"}, map[string]interface{}{"name": "Carol"}),
	}
	rels := []*Relationship{
		HydrateUnboundRelationship(100, "LIKES", nil),
		HydrateUnboundRelationship(101, "KNOWS", nil),
	}
	return nodes, rels
}

func TestHydratePath_Forward(t *testing.T) {
	nodes, rels := pathFixture(t)

	p, err := HydratePath(nodes, rels, []int{1, 1, 2, 2})
	if err != nil {
		t.Fatalf("hydrating path: %v", err)
	}

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if got := p.Nodes(); len(got) != 3 || got[0] != nodes[0] || got[1] != nodes[1] || got[2] != nodes[2] {
		t.Errorf("nodes not in traversal order: %v", got)
	}
	if got := p.Relationships(); got[0] != rels[0] || got[1] != rels[1] {
		t.Errorf("relationships not in traversal order: %v", got)
	}
	if !p.Start().Equal(nodes[0]) || !p.End().Equal(nodes[2]) {
		t.Errorf("Start/End = %s/%s, want Alice/Carol", p.Start(), p.End())
	}

	if s, e := rels[0].Nodes(); s != 0 || e != 1 {
		t.Errorf("first hop endpoints = (%d, %d), want (0, 1)", s, e)
	}
	if s, e := rels[1].Nodes(); s != 1 || e != 2 {
		t.Errorf("second hop endpoints = (%d, %d), want (1, 2)", s, e)
	}
	for i, r := range rels {
		if !r.Bound() {
			t.Errorf("relationship %d still unbound after hydration", i)
		}
	}
}

func TestHydratePath_ReverseSelfLoop(t *testing.T) {
	nodes := []*Node{
		HydrateNode(0, nil, nil),
		HydrateNode(1, nil, nil),
	}
	rels := []*Relationship{HydrateUnboundRelationship(100, "KNOWS", nil)}

	p, err := HydratePath(nodes, rels, []int{-1, 0})
	if err != nil {
		t.Fatalf("hydrating path: %v", err)
	}

	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	// The walk revisits node index 0, so the single relationship is a
	// self-loop on that node.
	if s, e := rels[0].Nodes(); s != 0 || e != 0 {
		t.Errorf("endpoints = (%d, %d), want (0, 0)", s, e)
	}
	got := p.Nodes()
	if len(got) != 2 || got[0] != nodes[0] || got[1] != nodes[0] {
		t.Errorf("node sequence = %v, want the start node twice", got)
	}
	if !p.End().Equal(nodes[0]) {
		t.Errorf("End() = %s, want the start node", p.End())
	}
}

func TestHydratePath_DirectionSymmetry(t *testing.T) {
	nodes := []*Node{HydrateNode(0, nil, nil), HydrateNode(1, nil, nil)}

	forward := HydrateUnboundRelationship(100, "KNOWS", nil)
	if _, err := HydratePath(nodes, []*Relationship{forward}, []int{1, 1}); err != nil {
		t.Fatalf("hydrating forward path: %v", err)
	}

	reverse := HydrateUnboundRelationship(100, "KNOWS", nil)
	if _, err := HydratePath(nodes, []*Relationship{reverse}, []int{-1, 1}); err != nil {
		t.Fatalf("hydrating reverse path: %v", err)
	}

	fs, fe := forward.Nodes()
	rs, re := reverse.Nodes()
	if fs != re || fe != rs {
		t.Errorf("mirrored selectors should swap endpoints: forward (%d, %d), reverse (%d, %d)", fs, fe, rs, re)
	}
}

func TestHydratePath_RepeatedNodes(t *testing.T) {
	nodes, rels := pathFixture(t)

	// Alice -> Bob -> back to Alice, reusing node index 0.
	p, err := HydratePath(nodes, rels, []int{1, 1, 2, 0})
	if err != nil {
		t.Fatalf("hydrating path: %v", err)
	}

	got := p.Nodes()
	if len(got) != 3 || got[0] != nodes[0] || got[1] != nodes[1] || got[2] != nodes[0] {
		t.Errorf("node sequence = %v, want Alice, Bob, Alice", got)
	}
	if s, e := rels[1].Nodes(); s != 1 || e != 0 {
		t.Errorf("return hop endpoints = (%d, %d), want (1, 0)", s, e)
	}
	if !p.Start().Equal(p.End()) {
		t.Errorf("a round trip should start and end at the same node")
	}
}

func TestHydratePath_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		nodes    int
		rels     int
		sequence []int
	}{
		{name: "empty node list", nodes: 0, rels: 1, sequence: []int{1, 0}},
		{name: "odd sequence", nodes: 2, rels: 1, sequence: []int{1, 1, 2}},
		{name: "zero selector", nodes: 2, rels: 1, sequence: []int{0, 1}},
		{name: "node index out of range", nodes: 2, rels: 1, sequence: []int{1, 2}},
		{name: "negative node index", nodes: 2, rels: 1, sequence: []int{1, -1}},
		{name: "selector out of range", nodes: 2, rels: 1, sequence: []int{2, 1}},
		{name: "negative selector out of range", nodes: 2, rels: 1, sequence: []int{-2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := make([]*Node, tt.nodes)
			for i := range nodes {
				nodes[i] = HydrateNode(int64(i), nil, nil)
			}
			rels := make([]*Relationship, tt.rels)
			for i := range rels {
				rels[i] = HydrateUnboundRelationship(int64(100+i), "KNOWS", nil)
			}

			p, err := HydratePath(nodes, rels, tt.sequence)
			if err == nil {
				t.Fatalf("expected error, got path %v", p)
			}
			if !errors.Is(err, ErrMalformedPath) {
				t.Errorf("error %v does not wrap ErrMalformedPath", err)
			}
			if p != nil {
				t.Errorf("failed hydration must not produce a partial path")
			}
		})
	}
}

func TestPathEquality(t *testing.T) {
	buildPath := func(sequence []int) *Path {
		t.Helper()
		nodes, rels := pathFixture(t)
		p, err := HydratePath(nodes, rels, sequence)
		if err != nil {
			t.Fatalf("hydrating path: %v", err)
		}
		return p
	}

	a := buildPath([]int{1, 1, 2, 2})
	b := buildPath([]int{1, 1, 2, 2})
	if !a.Equal(b) {
		t.Errorf("identically encoded paths should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal paths must hash equal: %d != %d", a.Hash(), b.Hash())
	}

	// Same hops taken in the opposite order of selectors.
	c := buildPath([]int{2, 1, 1, 2})
	if a.Equal(c) {
		t.Errorf("paths with reordered relationships should not be equal")
	}
	if a.Hash() == c.Hash() {
		t.Errorf("hash should be sensitive to relationship order")
	}

	if a.Equal(42) {
		t.Errorf("path should not equal a foreign value")
	}
	if a.Equal(a.Start()) {
		t.Errorf("path should not equal a node")
	}
	if a.Hash() != a.Hash() {
		t.Errorf("hash is not stable across calls")
	}
}
