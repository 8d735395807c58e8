package tree

import "testing"

func TestSetTagProjects(t *testing.T) {
	d := New(800, 600)
	if err := d.Tokenize("cats sleep"); err != nil {
		t.Fatal(err)
	}
	nodes, edges := len(d.Nodes()), len(d.Edges())

	d.SetTag(0, Noun)
	if len(d.Nodes()) != nodes+1 || len(d.Edges()) != edges+1 {
		t.Fatalf("projection added %d nodes / %d edges, want 1 / 1",
			len(d.Nodes())-nodes, len(d.Edges())-edges)
	}

	leaf := d.NodeByID(0)
	parent := d.NodeByID(leaf.ProjectedParent)
	if parent == nil {
		t.Fatal("leaf has no projected parent")
	}
	if parent.Label != "NP" {
		t.Errorf("projected label = %q, want NP", parent.Label)
	}
	if d.EdgeByID(EdgeID(parent.ID, leaf.ID)) == nil {
		t.Error("missing projection edge")
	}
	if parent.Pos.Y >= leaf.Pos.Y {
		t.Errorf("projected parent at y=%v, want above leaf at y=%v", parent.Pos.Y, leaf.Pos.Y)
	}
	if parent.Pos.X != leaf.Pos.X {
		t.Errorf("projected parent at x=%v, want directly above leaf at x=%v", parent.Pos.X, leaf.Pos.X)
	}
}

func TestSetTagUnprojects(t *testing.T) {
	d := New(800, 600)
	if err := d.Tokenize("cats sleep"); err != nil {
		t.Fatal(err)
	}
	nodes, edges := len(d.Nodes()), len(d.Edges())

	d.SetTag(0, Noun)
	d.SetTag(0, Determiner)
	if len(d.Nodes()) != nodes || len(d.Edges()) != edges {
		t.Errorf("got %d nodes / %d edges after unprojecting, want %d / %d",
			len(d.Nodes()), len(d.Edges()), nodes, edges)
	}
	if d.NodeByID(0).ProjectedParent != -1 {
		t.Error("leaf still references a projected parent")
	}
}

func TestSetTagSwapsProjection(t *testing.T) {
	d := New(800, 600)
	if err := d.Tokenize("run fast"); err != nil {
		t.Fatal(err)
	}
	d.SetTag(0, Noun)
	old := d.NodeByID(0).ProjectedParent

	d.SetTag(0, Verb)
	leaf := d.NodeByID(0)
	if d.NodeByID(old) != nil {
		t.Error("old projected parent still present")
	}
	parent := d.NodeByID(leaf.ProjectedParent)
	if parent == nil || parent.Label != "VP" {
		t.Fatalf("projected parent = %+v, want VP node", parent)
	}
	// Net effect of the swap: still exactly one extra node and edge.
	if len(d.Nodes()) != 4 {
		t.Errorf("got %d nodes, want 4", len(d.Nodes()))
	}
	if len(d.Edges()) != 1 {
		t.Errorf("got %d edges, want 1", len(d.Edges()))
	}
}

func TestSetTagNonProjecting(t *testing.T) {
	d := New(800, 600)
	if err := d.Tokenize("the cat"); err != nil {
		t.Fatal(err)
	}
	for _, tag := range []POS{Auxiliary, Determiner, ProperNoun} {
		d.SetTag(0, tag)
		if d.NodeByID(0).ProjectedParent != -1 {
			t.Errorf("tag %q projected a parent", tag)
		}
	}
	if len(d.Nodes()) != 3 || len(d.Edges()) != 0 {
		t.Errorf("non-projecting tags changed the diagram: %d nodes, %d edges",
			len(d.Nodes()), len(d.Edges()))
	}
}

func TestSetTagIgnoresNonLeaves(t *testing.T) {
	d := New(800, 600)
	if err := d.Tokenize("a b"); err != nil {
		t.Fatal(err)
	}
	root := d.Root()
	d.SetTag(root.ID, Noun)
	if root.Tag != NoTag {
		t.Error("root accepted a POS tag")
	}
	if len(d.Nodes()) != 3 {
		t.Error("tagging the root changed the node count")
	}
}

func TestPOSProjects(t *testing.T) {
	projecting := []POS{Noun, Verb, Adjective, Preposition, Adverb}
	for _, p := range projecting {
		if !p.Projects() {
			t.Errorf("%q should project", p)
		}
		if p.Phrase() == "" {
			t.Errorf("%q has no phrase label", p)
		}
	}
	for _, p := range []POS{Auxiliary, Determiner, ProperNoun, NoTag} {
		if p.Projects() {
			t.Errorf("%q should not project", p)
		}
	}
}
