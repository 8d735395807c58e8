package main

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/EphraimMeiri/sentence-trees/commands"
	"github.com/EphraimMeiri/sentence-trees/tree"
)

// mode is the app's input mode: normal editing, or one of the prompts that
// capture the keyboard.
type mode int

const (
	modeNormal   mode = iota
	modeSentence      // typing a new sentence
	modeLabel         // editing a node label
	modeTag           // choosing a POS tag for a leaf
)

// App is the terminal UI. It owns the diagram and the transient interaction
// state; rendering and hit testing live in render.go and hittest.go.
type App struct {
	screen  tcell.Screen
	diagram *tree.Diagram
	drag    *tree.DragState
	cmds    []commands.Command

	mode      mode
	input     []rune // prompt text buffer
	editNode  int    // node being relabeled in modeLabel
	lastNode  int    // most recently clicked node, target for tag/label commands
	lastEdge  string // most recently touched edge, target for delete
	status    string
	statusErr bool
	showHelp  bool

	mouseHeld bool
	dragMoved bool
	pressed   int // node pressed but not yet released, -1 none

	quit bool
}

// tuiMetrics returns cell-scale layout spacing for the terminal grid.
func tuiMetrics() tree.Metrics {
	return tree.Metrics{
		SideMargin:     8,
		TopMargin:      1,
		BaselineMargin: 4,
		ParentGap:      4,
		RootGap:        3,
	}
}

func newApp() *App {
	a := &App{
		diagram:  tree.New(80, 24),
		drag:     tree.NewDragState(),
		editNode: -1,
		lastNode: -1,
		pressed:  -1,
	}
	a.diagram.SetMetrics(tuiMetrics())
	a.cmds = commands.All(commands.Actions{
		NewSentence: a.promptSentence,
		AddParent:   a.addParent,
		TagLeaf:     a.promptTag,
		EditLabel:   a.promptLabel,
		DeleteEdge:  a.deleteEdge,
		ToggleHelp:  func() { a.showHelp = !a.showHelp },
		Quit:        func() { a.quit = true },
	})
	return a
}

// Run initializes the terminal and drives the event loop until quit.
func (a *App) Run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(styleDefault)
	a.screen = screen

	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	w, h := screen.Size()
	a.diagram.Resize(float64(w), float64(h-2)) // reserve status and help rows

	for !a.quit {
		a.render()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventInterrupt:
			a.quit = true
		case *tcell.EventResize:
			w, h := ev.Size()
			a.diagram.Resize(float64(w), float64(h-2))
			screen.Sync()
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
	return nil
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = err.Error()
	a.statusErr = true
}

// --- command callbacks -------------------------------------------------

func (a *App) promptSentence() {
	a.mode = modeSentence
	a.input = nil
	a.setStatus("")
}

func (a *App) addParent() {
	if _, err := a.diagram.AddParent(); err != nil {
		a.setError(err)
		return
	}
	a.setStatus("grouped selection under new node")
}

func (a *App) promptTag() {
	n := a.diagram.NodeByID(a.lastNode)
	if n == nil || !n.Leaf {
		a.setStatus("click a leaf first, then press t")
		return
	}
	a.mode = modeTag
}

func (a *App) promptLabel() {
	n := a.diagram.NodeByID(a.lastNode)
	if n == nil {
		a.setStatus("click a node first, then press e")
		return
	}
	a.mode = modeLabel
	a.editNode = n.ID
	a.input = []rune(n.Label)
}

func (a *App) deleteEdge() {
	if a.lastEdge == "" || a.diagram.EdgeByID(a.lastEdge) == nil {
		a.setStatus("click an edge's curve point first, then press d")
		return
	}
	a.diagram.DeleteEdge(a.lastEdge)
	a.lastEdge = ""
	a.setStatus("edge deleted")
}

// --- keyboard ----------------------------------------------------------

func (a *App) handleKey(ev *tcell.EventKey) {
	switch a.mode {
	case modeSentence, modeLabel:
		a.handlePromptKey(ev)
	case modeTag:
		a.handleTagKey(ev)
	default:
		a.handleNormalKey(ev)
	}
}

func (a *App) handleNormalKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.diagram.ClearSelection()
		if from, ok := a.diagram.Linking(); ok {
			a.diagram.ClickHandle(from) // cancels
		}
		a.setStatus("")
	case tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyRune:
		if cmd := commands.ByKey(a.cmds, ev.Rune()); cmd != nil {
			cmd.OnExecute()
		}
	}
}

func (a *App) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.mode = modeNormal
		a.editNode = -1
		a.input = nil
	case tcell.KeyEnter:
		a.commitPrompt()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tcell.KeyRune:
		a.input = append(a.input, ev.Rune())
	}
}

func (a *App) commitPrompt() {
	text := string(a.input)
	switch a.mode {
	case modeSentence:
		if err := a.diagram.Tokenize(text); err != nil {
			a.setError(err)
		} else {
			a.setStatus("sentence tokenized")
			a.lastNode = -1
			a.lastEdge = ""
		}
	case modeLabel:
		a.diagram.SetLabel(a.editNode, text)
		a.setStatus("label updated")
	}
	a.mode = modeNormal
	a.editNode = -1
	a.input = nil
}

func (a *App) handleTagKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		a.mode = modeNormal
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	tags := tree.AllTags()
	i := int(ev.Rune() - '1')
	if i < 0 || i >= len(tags) {
		return
	}
	a.diagram.SetTag(a.lastNode, tags[i])
	a.mode = modeNormal
	if tags[i] == tree.NoTag {
		a.setStatus("tag cleared")
	} else {
		a.setStatus("tagged " + string(tags[i]))
	}
}

// --- mouse -------------------------------------------------------------

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	at := tree.Point{X: float64(x), Y: float64(y)}
	btns := ev.Buttons()

	if btns&tcell.Button3 != 0 {
		if e := a.controlAt(x, y); e != nil {
			a.diagram.DeleteEdge(e.ID)
			a.lastEdge = ""
		}
		return
	}

	switch {
	case btns&tcell.Button1 != 0 && !a.mouseHeld:
		a.mouseHeld = true
		a.dragMoved = false
		a.press(x, y, at)
	case btns&tcell.Button1 != 0 && a.mouseHeld:
		if a.drag.Active() {
			a.dragMoved = true
			a.drag.MoveTo(a.diagram, at)
		}
	case btns == tcell.ButtonNone && a.mouseHeld:
		a.mouseHeld = false
		if a.pressed >= 0 && !a.dragMoved {
			a.diagram.ToggleSelect(a.pressed)
		}
		a.pressed = -1
		a.drag.Release()
	}
}

func (a *App) press(x, y int, at tree.Point) {
	if n := a.handleAt(x, y); n != nil {
		a.diagram.ClickHandle(n.ID)
		return
	}
	if e := a.controlAt(x, y); e != nil {
		a.lastEdge = e.ID
		a.drag.GrabControl(a.diagram, e.ID, at)
		return
	}
	if n := a.nodeAt(x, y); n != nil {
		a.lastNode = n.ID
		a.pressed = n.ID
		a.drag.GrabNode(a.diagram, n.ID, at)
	}
}
