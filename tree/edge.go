package tree

import "strconv"

// EdgeID derives the stable string identifier for a parent→child edge.
func EdgeID(parent, child int) string {
	return strconv.Itoa(parent) + "-" + strconv.Itoa(child)
}

// EdgeByID returns the edge with the given id, or nil.
func (d *Diagram) EdgeByID(id string) *Edge {
	for _, e := range d.edges {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// addEdge creates a parent→child edge. An already-existing edge between the
// same pair is returned as is.
func (d *Diagram) addEdge(parent, child int) *Edge {
	id := EdgeID(parent, child)
	if e := d.EdgeByID(id); e != nil {
		return e
	}
	e := &Edge{ID: id, ParentID: parent, ChildID: child}
	d.edges = append(d.edges, e)
	return e
}

// DeleteEdge removes the edge with the given id. Nodes are not touched; any
// stored control point disappears with the edge.
func (d *Diagram) DeleteEdge(id string) {
	for i, e := range d.edges {
		if e.ID == id {
			d.edges = append(d.edges[:i], d.edges[i+1:]...)
			d.Layout()
			return
		}
	}
}

// ControlPoint returns the effective curve control point for an edge: the
// user's override if one was dragged into place, otherwise the midpoint
// between the endpoints.
func (d *Diagram) ControlPoint(e *Edge) Point {
	if e.Control != nil {
		return *e.Control
	}
	p := d.NodeByID(e.ParentID)
	c := d.NodeByID(e.ChildID)
	if p == nil || c == nil {
		return Point{}
	}
	return Point{X: (p.Pos.X + c.Pos.X) / 2, Y: (p.Pos.Y + c.Pos.Y) / 2}
}

// SetControl overrides an edge's curve control point. Unknown edge ids are
// ignored.
func (d *Diagram) SetControl(edgeID string, pt Point) {
	if e := d.EdgeByID(edgeID); e != nil {
		e.Control = &pt
	}
}
