package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/EphraimMeiri/sentence-trees/palette"
	"github.com/EphraimMeiri/sentence-trees/tree"
)

var (
	styleDefault = tcell.StyleDefault
	styleEdge    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBent    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHandle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleArmed   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleBar     = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorDarkSlateGray)
)

// displayText is the on-screen form of a node: leaves show "token/TAG" once
// tagged, the common bracketing shorthand.
func displayText(n *tree.Node) string {
	if n.Leaf && n.Tag != tree.NoTag {
		return n.Label + "/" + string(n.Tag)
	}
	if n.Label == "" {
		return "?"
	}
	return n.Label
}

func nodeStyle(n *tree.Node, selected bool) tcell.Style {
	r, g, b := palette.RGB(n)
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	if selected {
		st = st.Reverse(true).Bold(true)
	}
	return st
}

func (a *App) render() {
	s := a.screen
	s.Clear()
	w, h := s.Size()

	for _, e := range a.diagram.Edges() {
		a.drawEdge(e)
	}
	for _, n := range a.diagram.Nodes() {
		a.drawNode(n)
	}

	a.drawStatus(w, h)
	a.drawBar(w, h)
	s.Show()
}

// drawEdge samples the quadratic curve through the control point and plots it
// cell by cell, then marks the control point itself.
func (a *App) drawEdge(e *tree.Edge) {
	p := a.diagram.NodeByID(e.ParentID)
	c := a.diagram.NodeByID(e.ChildID)
	if p == nil || c == nil {
		return
	}
	ctrl := a.diagram.ControlPoint(e)

	p0 := tree.Point{X: p.Pos.X, Y: p.Pos.Y + 1}
	p1 := tree.Point{X: c.Pos.X, Y: c.Pos.Y - 1}
	dist := math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
	steps := int(dist)*2 + 8
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		u := 1 - t
		x := u*u*p0.X + 2*u*t*ctrl.X + t*t*p1.X
		y := u*u*p0.Y + 2*u*t*ctrl.Y + t*t*p1.Y
		a.screen.SetContent(round(x), round(y), '·', nil, styleEdge)
	}

	markStyle := styleEdge
	if e.Control != nil {
		markStyle = styleBent
	}
	a.screen.SetContent(round(ctrl.X), round(ctrl.Y), '◆', nil, markStyle)
}

func (a *App) drawNode(n *tree.Node) {
	text := displayText(n)
	x0, _, row := nodeSpan(n)
	st := nodeStyle(n, a.diagram.IsSelected(n.ID))

	col := x0
	for _, r := range text {
		a.screen.SetContent(col, row, r, nil, st)
		col += runewidth.RuneWidth(r)
	}

	// Link handle above the node.
	handleStyle := styleHandle
	handle := '○'
	if from, ok := a.diagram.Linking(); ok && from == n.ID {
		handleStyle = styleArmed
		handle = '●'
	}
	a.screen.SetContent(round(n.Pos.X), row-1, handle, nil, handleStyle)
}

func (a *App) drawStatus(w, h int) {
	row := h - 2
	st := styleStatus
	if a.statusErr {
		st = styleError
	}

	var line string
	switch a.mode {
	case modeSentence:
		line = "sentence: " + string(a.input) + "▏"
		st = styleDefault
	case modeLabel:
		line = "label: " + string(a.input) + "▏"
		st = styleDefault
	default:
		line = a.status
	}
	putLine(a.screen, 0, row, w, line, st)
}

func (a *App) drawBar(w, h int) {
	row := h - 1
	var line string
	switch {
	case a.mode == modeTag:
		var parts []string
		for i, tag := range tree.AllTags() {
			name := string(tag)
			if tag == tree.NoTag {
				name = "(none)"
			}
			parts = append(parts, fmt.Sprintf("%d:%s", i+1, name))
		}
		line = " tag?  " + strings.Join(parts, "  ") + "  esc:cancel"
	case a.showHelp:
		var parts []string
		for _, cmd := range a.cmds {
			parts = append(parts, fmt.Sprintf("%c:%s", cmd.Key, cmd.Label))
		}
		line = " " + strings.Join(parts, "  ") +
			"  |  click:select  ○:link  drag:move  right-click ◆:delete edge"
	default:
		line = " ?:help"
		if sel := a.diagram.Selected(); len(sel) > 0 {
			line += fmt.Sprintf("  %d selected", len(sel))
		}
		if _, ok := a.diagram.Linking(); ok {
			line += "  linking: click another node's ○ (same ○ cancels)"
		}
	}
	putLine(a.screen, 0, row, w, line, styleBar)
}

// putLine writes text padded or truncated to width.
func putLine(s tcell.Screen, x, y, width int, text string, st tcell.Style) {
	col := x
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if col+rw > x+width {
			break
		}
		s.SetContent(col, y, r, nil, st)
		col += rw
	}
	for ; col < x+width; col++ {
		s.SetContent(col, y, ' ', nil, st)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
