package tree

// DragState tracks one in-progress pointer drag of either a node or an edge
// control point. It exists only between pointer-down and pointer-up; Release
// discards it.
type DragState struct {
	nodeID int
	edgeID string
	offset Point // pointer offset from the grabbed position
}

// NewDragState returns an idle drag state.
func NewDragState() *DragState {
	return &DragState{nodeID: -1}
}

// Active reports whether a drag is in progress.
func (g *DragState) Active() bool {
	return g.nodeID >= 0 || g.edgeID != ""
}

// GrabNode starts dragging a node from the given pointer position.
func (g *DragState) GrabNode(d *Diagram, id int, at Point) {
	n := d.NodeByID(id)
	if n == nil {
		return
	}
	g.nodeID = id
	g.edgeID = ""
	g.offset = Point{X: at.X - n.Pos.X, Y: at.Y - n.Pos.Y}
}

// GrabControl starts dragging an edge's curve control point.
func (g *DragState) GrabControl(d *Diagram, edgeID string, at Point) {
	e := d.EdgeByID(edgeID)
	if e == nil {
		return
	}
	ctrl := d.ControlPoint(e)
	g.nodeID = -1
	g.edgeID = edgeID
	g.offset = Point{X: at.X - ctrl.X, Y: at.Y - ctrl.Y}
}

// MoveTo updates the dragged node or control point for a pointer move.
func (g *DragState) MoveTo(d *Diagram, at Point) {
	target := Point{X: at.X - g.offset.X, Y: at.Y - g.offset.Y}
	switch {
	case g.nodeID >= 0:
		d.MoveNode(g.nodeID, target)
	case g.edgeID != "":
		d.SetControl(g.edgeID, target)
	}
}

// Release ends the drag, discarding the transient grab state.
func (g *DragState) Release() {
	g.nodeID = -1
	g.edgeID = ""
	g.offset = Point{}
}
