package main

import (
	"github.com/mattn/go-runewidth"

	"github.com/EphraimMeiri/sentence-trees/tree"
)

// nodeSpan returns the cell range a node's text occupies: first column, last
// column (inclusive), and row.
func nodeSpan(n *tree.Node) (x0, x1, row int) {
	w := runewidth.StringWidth(displayText(n))
	if w < 1 {
		w = 1
	}
	cx := round(n.Pos.X)
	x0 = cx - w/2
	return x0, x0 + w - 1, round(n.Pos.Y)
}

// nodeAt returns the topmost node whose text covers the cell, or nil. Later
// nodes draw over earlier ones, so scan in reverse.
func (a *App) nodeAt(x, y int) *tree.Node {
	nodes := a.diagram.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		x0, x1, row := nodeSpan(n)
		if y == row && x >= x0 && x <= x1 {
			return n
		}
	}
	return nil
}

// handleAt returns the node whose link handle sits at the cell, or nil. The
// handle is the single cell directly above the node's text.
func (a *App) handleAt(x, y int) *tree.Node {
	nodes := a.diagram.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		_, _, row := nodeSpan(n)
		if y == row-1 && x == round(n.Pos.X) {
			return n
		}
	}
	return nil
}

// controlAt returns the edge whose curve control marker is within one cell of
// (x, y), or nil.
func (a *App) controlAt(x, y int) *tree.Edge {
	for _, e := range a.diagram.Edges() {
		ctrl := a.diagram.ControlPoint(e)
		dx := x - round(ctrl.X)
		dy := y - round(ctrl.Y)
		if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
			return e
		}
	}
	return nil
}
