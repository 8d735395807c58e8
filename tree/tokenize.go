package tree

import (
	"errors"
	"strings"
)

// ErrEmptySentence is returned by Tokenize for empty or whitespace-only
// input. The diagram is left untouched.
var ErrEmptySentence = errors.New("sentence is empty")

// Tokenize replaces the diagram contents with one leaf node per
// whitespace-separated token of sentence, plus a root node labeled "S".
// Edges, selection, linking state, and pins are all reset.
func (d *Diagram) Tokenize(sentence string) error {
	tokens := strings.Fields(sentence)
	if len(tokens) == 0 {
		return ErrEmptySentence
	}

	d.nodes = nil
	d.edges = nil
	d.nextID = 0
	d.selection = nil
	d.linkFrom = -1

	for _, tok := range tokens {
		d.newNode(tok, true, Point{})
	}
	d.newNode("S", false, Point{X: d.width / 2, Y: d.metrics.TopMargin})

	d.Layout()
	return nil
}

// Leaves returns the leaf nodes in token order.
func (d *Diagram) Leaves() []*Node {
	var out []*Node
	for _, n := range d.nodes {
		if n.Leaf {
			out = append(out, n)
		}
	}
	return out
}
