package tree

import "math"

// Metrics holds the spacing constants Layout works from. The defaults suit a
// pixel canvas; the terminal UI substitutes cell-scale values.
type Metrics struct {
	SideMargin     float64 // horizontal inset of the leaf row
	TopMargin      float64 // default root height
	BaselineMargin float64 // distance of the leaf row from the bottom edge
	ParentGap      float64 // vertical gap between a parent and its highest child
	RootGap        float64 // minimum clearance kept above the highest non-root node
}

// DefaultMetrics returns pixel-scale spacing.
func DefaultMetrics() Metrics {
	return Metrics{
		SideMargin:     60,
		TopMargin:      40,
		BaselineMargin: 70,
		ParentGap:      70,
		RootGap:        60,
	}
}

// Layout recomputes the position of every auto-positioned node from the
// current structure and viewport size:
//
//   - leaves sit evenly spaced on a baseline near the bottom, in token order;
//   - internal nodes center over the midpoint of their children, one gap
//     above the highest of them;
//   - the unparented "S" root stays near the top, rising further if the tree
//     grows up to meet it;
//   - childless non-leaf nodes and pinned (user-dragged) nodes keep their
//     last position.
//
// Re-running with unchanged structure and viewport reproduces the same
// coordinates.
func (d *Diagram) Layout() {
	d.layoutLeaves()
	d.layoutInternal()
	d.layoutRoot()
}

func (d *Diagram) layoutLeaves() {
	leaves := d.Leaves()
	if len(leaves) == 0 {
		return
	}
	span := d.width - 2*d.metrics.SideMargin
	slot := span / float64(len(leaves))
	y := d.height - d.metrics.BaselineMargin
	for i, n := range leaves {
		if n.Pinned {
			continue
		}
		n.Pos = Point{
			X: d.metrics.SideMargin + slot*(float64(i)+0.5),
			Y: y,
		}
	}
}

// layoutInternal positions internal nodes over their children. Children can
// themselves be internal, so passes repeat until positions stop moving; the
// pass cap only matters if the user has drawn a cycle.
func (d *Diagram) layoutInternal() {
	root := d.Root()
	for pass := 0; pass <= len(d.nodes); pass++ {
		changed := false
		for _, n := range d.nodes {
			if n.Leaf || n.Pinned || n == root {
				continue
			}
			children := d.children(n.ID)
			if len(children) == 0 {
				continue // keeps its last position
			}
			minX, maxX := math.Inf(1), math.Inf(-1)
			minY := math.Inf(1)
			for _, c := range children {
				minX = math.Min(minX, c.Pos.X)
				maxX = math.Max(maxX, c.Pos.X)
				minY = math.Min(minY, c.Pos.Y)
			}
			pos := Point{X: (minX + maxX) / 2, Y: minY - d.metrics.ParentGap}
			if pos != n.Pos {
				n.Pos = pos
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

func (d *Diagram) layoutRoot() {
	root := d.Root()
	if root == nil || root.Pinned {
		return
	}
	highest := math.Inf(1)
	for _, n := range d.nodes {
		if n != root {
			highest = math.Min(highest, n.Pos.Y)
		}
	}
	y := d.metrics.TopMargin
	if !math.IsInf(highest, 1) && highest-d.metrics.RootGap < y {
		y = highest - d.metrics.RootGap
	}
	x := root.Pos.X
	if children := d.children(root.ID); len(children) > 0 {
		minX, maxX := math.Inf(1), math.Inf(-1)
		for _, c := range children {
			minX = math.Min(minX, c.Pos.X)
			maxX = math.Max(maxX, c.Pos.X)
		}
		x = (minX + maxX) / 2
	}
	root.Pos = Point{X: x, Y: y}
}
