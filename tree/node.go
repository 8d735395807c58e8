package tree

// Point is a coordinate on the diagram canvas. The unit is whatever the
// hosting surface uses: pixels for the web canvas, character cells for the
// terminal.
type Point struct {
	X, Y float64
}

// Node is a single labeled node in the diagram. Leaves carry sentence tokens
// and may be POS-tagged; internal nodes carry phrase labels.
type Node struct {
	ID    int
	Label string
	Pos   Point
	Leaf  bool

	// Tag is the part-of-speech tag. Only meaningful on leaves.
	Tag POS

	// ProjectedParent is the id of the phrasal parent auto-created for this
	// leaf's tag, or -1 when none exists.
	ProjectedParent int

	// Pinned marks a node the user has dragged. Pinned nodes keep their
	// position across layout passes.
	Pinned bool
}

// Edge is a directed parent→child link. It renders as a quadratic curve whose
// control point defaults to the segment midpoint; Control overrides that
// default once the user drags the curve.
type Edge struct {
	ID       string
	ParentID int
	ChildID  int
	Control  *Point
}

// Diagram is the whole editor state: nodes, edges, selection and linking
// state, and the viewport size. It is a plain mutable aggregate — all edits
// go through its methods, and nothing here enforces that the edges form a
// well-shaped tree.
type Diagram struct {
	nodes  []*Node
	edges  []*Edge
	nextID int

	width, height float64
	metrics       Metrics

	selection []int // node ids in click order
	linkFrom  int   // pending link parent id, -1 when idle
}

// New creates an empty diagram for a viewport of the given size.
func New(width, height float64) *Diagram {
	return &Diagram{
		width:    width,
		height:   height,
		metrics:  DefaultMetrics(),
		linkFrom: -1,
	}
}

// SetMetrics replaces the layout spacing constants and re-runs layout.
func (d *Diagram) SetMetrics(m Metrics) {
	d.metrics = m
	d.Layout()
}

// Size returns the current viewport size.
func (d *Diagram) Size() (width, height float64) {
	return d.width, d.height
}

// Resize updates the viewport size and re-runs layout.
func (d *Diagram) Resize(width, height float64) {
	d.width = width
	d.height = height
	d.Layout()
}

// Nodes returns all nodes in creation order. The returned slice is the
// diagram's own; callers must not reorder it.
func (d *Diagram) Nodes() []*Node {
	return d.nodes
}

// Edges returns all edges in creation order.
func (d *Diagram) Edges() []*Edge {
	return d.edges
}

// NodeByID returns the node with the given id, or nil.
func (d *Diagram) NodeByID(id int) *Node {
	for _, n := range d.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// SetLabel updates a node's text label. Unknown ids are ignored.
func (d *Diagram) SetLabel(id int, label string) {
	if n := d.NodeByID(id); n != nil {
		n.Label = label
	}
}

// MoveNode places a node at pos and pins it there, exempting it from future
// auto-layout passes.
func (d *Diagram) MoveNode(id int, pos Point) {
	n := d.NodeByID(id)
	if n == nil {
		return
	}
	n.Pos = pos
	n.Pinned = true
}

// newNode allocates a node with the next free id.
func (d *Diagram) newNode(label string, leaf bool, pos Point) *Node {
	n := &Node{
		ID:              d.nextID,
		Label:           label,
		Pos:             pos,
		Leaf:            leaf,
		ProjectedParent: -1,
	}
	d.nextID++
	d.nodes = append(d.nodes, n)
	return n
}

// removeNode deletes the node and every edge attached to it.
func (d *Diagram) removeNode(id int) {
	for i, n := range d.nodes {
		if n.ID == id {
			d.nodes = append(d.nodes[:i], d.nodes[i+1:]...)
			break
		}
	}
	kept := d.edges[:0]
	for _, e := range d.edges {
		if e.ParentID != id && e.ChildID != id {
			kept = append(kept, e)
		}
	}
	d.edges = kept
	for i, sel := range d.selection {
		if sel == id {
			d.selection = append(d.selection[:i], d.selection[i+1:]...)
			break
		}
	}
	if d.linkFrom == id {
		d.linkFrom = -1
	}
}

// children returns the child nodes of id, in edge creation order.
func (d *Diagram) children(id int) []*Node {
	var out []*Node
	for _, e := range d.edges {
		if e.ParentID != id {
			continue
		}
		if c := d.NodeByID(e.ChildID); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// hasParent reports whether any edge points at id as a child.
func (d *Diagram) hasParent(id int) bool {
	for _, e := range d.edges {
		if e.ChildID == id {
			return true
		}
	}
	return false
}

// Root returns the unparented node labeled "S", or nil. This is a heuristic
// lookup: if the user has built something stranger than a single-rooted
// forest, the first match wins.
func (d *Diagram) Root() *Node {
	for _, n := range d.nodes {
		if n.Label == "S" && !n.Leaf && !d.hasParent(n.ID) {
			return n
		}
	}
	return nil
}
