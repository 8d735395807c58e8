package tree

import "testing"

func TestToggleSelect(t *testing.T) {
	d := New(800, 600)
	if err := d.Tokenize("a b c"); err != nil {
		t.Fatal(err)
	}

	d.ToggleSelect(0)
	d.ToggleSelect(2)
	if got := d.Selected(); len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("Selected() = %v, want [0 2]", got)
	}
	if !d.IsSelected(0) || d.IsSelected(1) {
		t.Error("IsSelected disagrees with selection set")
	}

	d.ToggleSelect(0)
	if got := d.Selected(); len(got) != 1 || got[0] != 2 {
		t.Errorf("Selected() after toggle-off = %v, want [2]", got)
	}

	d.ToggleSelect(99)
	if len(d.Selected()) != 1 {
		t.Error("toggling an unknown id changed the selection")
	}
}

func TestAddParentTooFewSelected(t *testing.T) {
	d := New(800, 600)
	if err := d.Tokenize("a b c"); err != nil {
		t.Fatal(err)
	}
	nodes, edges := len(d.Nodes()), len(d.Edges())

	if _, err := d.AddParent(); err != ErrTooFewSelected {
		t.Errorf("AddParent() with empty selection: err = %v, want ErrTooFewSelected", err)
	}
	d.ToggleSelect(0)
	if _, err := d.AddParent(); err != ErrTooFewSelected {
		t.Errorf("AddParent() with one selected: err = %v, want ErrTooFewSelected", err)
	}
	if len(d.Nodes()) != nodes || len(d.Edges()) != edges {
		t.Error("failed AddParent modified the diagram")
	}
	if len(d.Selected()) != 1 {
		t.Error("failed AddParent cleared the selection")
	}
}

func TestAddParent(t *testing.T) {
	d := New(800, 600)
	if err := d.Tokenize("a b c"); err != nil {
		t.Fatal(err)
	}
	d.ToggleSelect(0)
	d.ToggleSelect(1)
	d.ToggleSelect(2)

	nodes, edges := len(d.Nodes()), len(d.Edges())
	parent, err := d.AddParent()
	if err != nil {
		t.Fatalf("AddParent() error: %v", err)
	}
	if len(d.Nodes()) != nodes+1 {
		t.Errorf("got %d nodes, want %d", len(d.Nodes()), nodes+1)
	}
	if len(d.Edges()) != edges+3 {
		t.Errorf("got %d edges, want %d", len(d.Edges()), edges+3)
	}
	for _, id := range []int{0, 1, 2} {
		if d.EdgeByID(EdgeID(parent.ID, id)) == nil {
			t.Errorf("missing edge %s", EdgeID(parent.ID, id))
		}
	}
	if len(d.Selected()) != 0 {
		t.Error("selection not cleared after AddParent")
	}
}

func TestLinking(t *testing.T) {
	d := New(800, 600)
	if err := d.Tokenize("a b"); err != nil {
		t.Fatal(err)
	}
	root := d.Root()

	// Arm, then cancel on the same handle.
	if e := d.ClickHandle(root.ID); e != nil {
		t.Errorf("first handle click created edge %v", e)
	}
	if from, ok := d.Linking(); !ok || from != root.ID {
		t.Errorf("Linking() = (%d, %v), want (%d, true)", from, ok, root.ID)
	}
	if e := d.ClickHandle(root.ID); e != nil {
		t.Errorf("cancel click created edge %v", e)
	}
	if _, ok := d.Linking(); ok {
		t.Error("linking still armed after cancel")
	}
	if len(d.Edges()) != 0 {
		t.Errorf("got %d edges after cancel, want 0", len(d.Edges()))
	}

	// Arm, then complete on another node.
	d.ClickHandle(root.ID)
	e := d.ClickHandle(0)
	if e == nil {
		t.Fatal("completing click created no edge")
	}
	if e.ParentID != root.ID || e.ChildID != 0 {
		t.Errorf("edge = %d→%d, want %d→0", e.ParentID, e.ChildID, root.ID)
	}
	if len(d.Edges()) != 1 {
		t.Errorf("got %d edges, want 1", len(d.Edges()))
	}
	if _, ok := d.Linking(); ok {
		t.Error("linking still armed after completing")
	}
}
