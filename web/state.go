package web

import (
	"github.com/EphraimMeiri/sentence-trees/palette"
	"github.com/EphraimMeiri/sentence-trees/tree"
)

// statePayload is the full diagram snapshot sent to the canvas frontend
// after every mutation.
type statePayload struct {
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Nodes    []nodePayload `json:"nodes"`
	Edges    []edgePayload `json:"edges"`
	Selected []int         `json:"selected"`
	Linking  *int          `json:"linking,omitempty"`
}

type nodePayload struct {
	ID     int     `json:"id"`
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Leaf   bool    `json:"leaf"`
	Tag    string  `json:"tag,omitempty"`
	Color  string  `json:"color"`
	Pinned bool    `json:"pinned,omitempty"`
}

type edgePayload struct {
	ID     string  `json:"id"`
	Parent int     `json:"parent"`
	Child  int     `json:"child"`
	CX     float64 `json:"cx"` // effective control point
	CY     float64 `json:"cy"`
	Bent   bool    `json:"bent"` // true once the user dragged the curve
}

// snapshot builds the wire form of the diagram. Callers must hold the
// server's state lock.
func snapshot(d *tree.Diagram) statePayload {
	w, h := d.Size()
	st := statePayload{
		Width:    w,
		Height:   h,
		Nodes:    []nodePayload{},
		Edges:    []edgePayload{},
		Selected: d.Selected(),
	}
	for _, n := range d.Nodes() {
		st.Nodes = append(st.Nodes, nodePayload{
			ID:     n.ID,
			Label:  n.Label,
			X:      n.Pos.X,
			Y:      n.Pos.Y,
			Leaf:   n.Leaf,
			Tag:    string(n.Tag),
			Color:  palette.Hex(n),
			Pinned: n.Pinned,
		})
	}
	for _, e := range d.Edges() {
		ctrl := d.ControlPoint(e)
		st.Edges = append(st.Edges, edgePayload{
			ID:     e.ID,
			Parent: e.ParentID,
			Child:  e.ChildID,
			CX:     ctrl.X,
			CY:     ctrl.Y,
			Bent:   e.Control != nil,
		})
	}
	if from, ok := d.Linking(); ok {
		st.Linking = &from
	}
	return st
}
