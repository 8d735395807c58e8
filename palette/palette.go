// Package palette assigns display colors to diagram nodes by grammatical
// category. Both the terminal and web frontends draw from the same palette so
// a noun phrase looks the same everywhere.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/EphraimMeiri/sentence-trees/tree"
)

// Category hues, spread around the wheel so adjacent categories stay
// distinguishable on both dark terminals and the white web canvas.
var hues = map[string]float64{
	"N": 210, "NP": 210, // blues
	"V": 0, "VP": 0, // reds
	"Adj": 280, "AdjP": 280, // purples
	"P": 30, "PP": 30, // oranges
	"Adv": 160, "AdvP": 160, // greens
	"Aux": 50,
	"Det": 50,
	"PN":  50,
	"S":   330,
}

var neutral = colorful.Hsv(220, 0.08, 0.75)

// ForNode returns the display color for a node: leaves color by their POS
// tag, internal nodes by their phrase label, untagged nodes stay neutral.
func ForNode(n *tree.Node) colorful.Color {
	key := n.Label
	if n.Leaf {
		key = string(n.Tag)
	}
	h, ok := hues[key]
	if !ok {
		return neutral
	}
	return colorful.Hsv(h, 0.55, 0.85)
}

// Hex returns the node color as a #rrggbb string for the web canvas.
func Hex(n *tree.Node) string {
	return ForNode(n).Hex()
}

// RGB returns the node color as 8-bit channels for the terminal renderer.
func RGB(n *tree.Node) (r, g, b uint8) {
	return ForNode(n).RGB255()
}
