// Package commands declares the editor's keyboard commands and the callbacks
// they invoke, so the UI help bar and key dispatch share one table.
package commands

// Actions holds callbacks for all editor commands.
type Actions struct {
	NewSentence func()
	AddParent   func()
	TagLeaf     func()
	EditLabel   func()
	DeleteEdge  func()
	ToggleHelp  func()
	Quit        func()
}

// Command describes one keyboard-driven editor command.
type Command struct {
	ID        string
	Label     string
	Key       rune
	Category  string
	OnExecute func()
}

// All returns the full command list in help-bar order.
func All(a Actions) []Command {
	return []Command{
		{ID: "sentence.new", Label: "New Sentence", Key: 'n', Category: "Sentence", OnExecute: a.NewSentence},
		{ID: "tree.parent", Label: "Add Parent", Key: 'p', Category: "Tree", OnExecute: a.AddParent},
		{ID: "tree.tag", Label: "Tag Leaf", Key: 't', Category: "Tree", OnExecute: a.TagLeaf},
		{ID: "tree.label", Label: "Edit Label", Key: 'e', Category: "Tree", OnExecute: a.EditLabel},
		{ID: "tree.unlink", Label: "Delete Edge", Key: 'd', Category: "Tree", OnExecute: a.DeleteEdge},
		{ID: "app.help", Label: "Help", Key: '?', Category: "App", OnExecute: a.ToggleHelp},
		{ID: "app.quit", Label: "Quit", Key: 'q', Category: "App", OnExecute: a.Quit},
	}
}

// ByKey returns the command bound to key, or nil.
func ByKey(cmds []Command, key rune) *Command {
	for i := range cmds {
		if cmds[i].Key == key {
			return &cmds[i]
		}
	}
	return nil
}
