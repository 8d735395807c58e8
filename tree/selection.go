package tree

import "errors"

// ErrTooFewSelected is returned by AddParent when fewer than two nodes are
// selected. The diagram is left untouched.
var ErrTooFewSelected = errors.New("select at least two nodes to group")

// ToggleSelect adds the node to the selection set, or removes it if it is
// already selected. Unknown ids are ignored.
func (d *Diagram) ToggleSelect(id int) {
	if d.NodeByID(id) == nil {
		return
	}
	for i, sel := range d.selection {
		if sel == id {
			d.selection = append(d.selection[:i], d.selection[i+1:]...)
			return
		}
	}
	d.selection = append(d.selection, id)
}

// IsSelected reports whether the node is in the selection set.
func (d *Diagram) IsSelected(id int) bool {
	for _, sel := range d.selection {
		if sel == id {
			return true
		}
	}
	return false
}

// Selected returns the selected node ids in click order.
func (d *Diagram) Selected() []int {
	out := make([]int, len(d.selection))
	copy(out, d.selection)
	return out
}

// ClearSelection empties the selection set.
func (d *Diagram) ClearSelection() {
	d.selection = nil
}

// AddParent groups the current selection under a new internal node: one new
// node plus one edge from it to each selected node, then the selection is
// cleared. The new node starts with the placeholder label "XP" so the user
// can relabel it. Fails with ErrTooFewSelected below two selected nodes.
func (d *Diagram) AddParent() (*Node, error) {
	if len(d.selection) < 2 {
		return nil, ErrTooFewSelected
	}
	parent := d.newNode("XP", false, Point{})
	for _, id := range d.selection {
		d.addEdge(parent.ID, id)
	}
	d.selection = nil
	d.Layout()
	return parent, nil
}

// Linking returns the pending link parent, if a link is armed.
func (d *Diagram) Linking() (id int, ok bool) {
	return d.linkFrom, d.linkFrom >= 0
}

// ClickHandle drives the two-click linking mode. The first handle click arms
// linking with that node as the pending parent; clicking the same handle
// again cancels; clicking a different node's handle creates one edge
// pending→clicked and disarms. Returns the created edge, or nil.
func (d *Diagram) ClickHandle(id int) *Edge {
	if d.NodeByID(id) == nil {
		return nil
	}
	switch d.linkFrom {
	case -1:
		d.linkFrom = id
		return nil
	case id:
		d.linkFrom = -1
		return nil
	default:
		e := d.addEdge(d.linkFrom, id)
		d.linkFrom = -1
		d.Layout()
		return e
	}
}
