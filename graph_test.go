package neograph

import (
	"errors"
	"testing"
)

func TestGraphRegistration(t *testing.T) {
	g := NewGraph()

	alice := HydrateNode(1, []string{"Person"}, nil)
	knows := HydrateRelationship(10, 1, 2, "KNOWS", nil)
	g.AddNode(alice)
	g.AddNode(HydrateNode(2, []string{"Person"}, nil))
	g.AddRelationship(knows)

	if g.NodeCount() != 2 || g.RelationshipCount() != 1 {
		t.Fatalf("counts = (%d, %d), want (2, 1)", g.NodeCount(), g.RelationshipCount())
	}

	n, err := g.Node(1)
	if err != nil {
		t.Fatalf("Node(1): %v", err)
	}
	if n != alice {
		t.Errorf("Node(1) returned a different node")
	}

	r, err := g.Relationship(10)
	if err != nil {
		t.Fatalf("Relationship(10): %v", err)
	}
	if r != knows {
		t.Errorf("Relationship(10) returned a different relationship")
	}

	if _, err := g.Node(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Node(99) error = %v, want ErrNotFound", err)
	}
	if _, err := g.Relationship(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Relationship(99) error = %v, want ErrNotFound", err)
	}
}

func TestGraphReplacesOnSameIdentity(t *testing.T) {
	g := NewGraph()
	g.AddNode(HydrateNode(1, []string{"Person"}, nil))
	g.AddNode(HydrateNode(1, []string{"Admin"}, nil))

	if g.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", g.NodeCount())
	}
	n, err := g.Node(1)
	if err != nil {
		t.Fatalf("Node(1): %v", err)
	}
	if !n.Labels().Contains("Admin") {
		t.Errorf("registration did not replace the earlier node")
	}
}

func TestGraphIgnoresIdentityLessEntities(t *testing.T) {
	g := NewGraph()
	g.AddNode(NewNode([]string{"Person"}, nil))

	if g.NodeCount() != 0 {
		t.Errorf("identity-less node should not be registered")
	}
}
