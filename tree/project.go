package tree

// POS is a part-of-speech tag attached to leaf nodes.
type POS string

// The tag inventory. The first five project a phrasal parent when assigned;
// the rest never do.
const (
	NoTag       POS = ""
	Noun        POS = "N"
	Verb        POS = "V"
	Adjective   POS = "Adj"
	Preposition POS = "P"
	Adverb      POS = "Adv"
	Auxiliary   POS = "Aux"
	Determiner  POS = "Det"
	ProperNoun  POS = "PN"
)

// phraseFor maps each projecting category to its phrase label.
var phraseFor = map[POS]string{
	Noun:        "NP",
	Verb:        "VP",
	Adjective:   "AdjP",
	Preposition: "PP",
	Adverb:      "AdvP",
}

// Projects reports whether assigning this tag auto-creates a phrasal parent.
func (p POS) Projects() bool {
	_, ok := phraseFor[p]
	return ok
}

// Phrase returns the phrase label this tag projects, or "".
func (p POS) Phrase() string {
	return phraseFor[p]
}

// AllTags lists the assignable tags in menu order.
func AllTags() []POS {
	return []POS{Noun, Verb, Adjective, Preposition, Adverb, Auxiliary, Determiner, ProperNoun, NoTag}
}

// SetTag assigns a POS tag to a leaf and maintains its auto-projected
// phrasal parent: a projecting tag creates exactly one parent node labeled
// with the phrase category, linked above the leaf; switching between
// projecting tags replaces the old projection with a new one; a
// non-projecting tag removes it. Non-leaves and unknown ids are ignored.
func (d *Diagram) SetTag(id int, tag POS) {
	n := d.NodeByID(id)
	if n == nil || !n.Leaf {
		return
	}
	n.Tag = tag

	if n.ProjectedParent >= 0 {
		d.removeNode(n.ProjectedParent)
		n.ProjectedParent = -1
	}
	if tag.Projects() {
		parent := d.newNode(tag.Phrase(), false, Point{X: n.Pos.X, Y: n.Pos.Y - d.metrics.ParentGap})
		d.addEdge(parent.ID, n.ID)
		n.ProjectedParent = parent.ID
	}
	d.Layout()
}
