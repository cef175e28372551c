package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/gridedit/pkg/editor"
)

// KeyMap binds terminal keys to logical editor keys.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Write     key.Binding
	Quit      key.Binding
	Yank      key.Binding
	Help      key.Binding
	Commit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	Abort     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Write: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "write"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy cell"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save cell"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete char"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// ShortHelp lists the bindings shown in the status panel.
func (k KeyMap) ShortHelp() []key.Binding {
	var moveKeys []string
	for _, b := range []key.Binding{k.Left, k.Right, k.Up, k.Down} {
		moveKeys = append(moveKeys, b.Keys()...)
	}
	move := key.NewBinding(
		key.WithKeys(moveKeys...),
		key.WithHelp("arrows", "move"),
	)
	return []key.Binding{move, k.Edit, k.Commit, k.Cancel, k.Write, k.Quit, k.Yank, k.Help}
}

// FullHelp groups bindings by mode.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Edit, k.Write, k.Quit, k.Yank, k.Help},
		{k.Commit, k.Cancel, k.Backspace, k.Abort},
	}
}

// Decode maps a single key event to a logical key for the given mode.
// Letters that are commands while navigating are plain text while editing.
func (k KeyMap) Decode(msg tea.KeyMsg, editing bool) editor.Key {
	if editing {
		switch {
		case key.Matches(msg, k.Commit):
			return editor.K(editor.KeyCommit)
		case key.Matches(msg, k.Cancel):
			return editor.K(editor.KeyCancel)
		case key.Matches(msg, k.Backspace):
			return editor.K(editor.KeyBackspace)
		}
		if msg.Alt {
			return editor.K(editor.KeyNone)
		}
		switch msg.Type {
		case tea.KeyRunes:
			// pasted text can carry line breaks and tabs
			if len(msg.Runes) == 1 && unicode.IsPrint(msg.Runes[0]) {
				return editor.Char(msg.Runes[0])
			}
		case tea.KeySpace:
			return editor.Char(' ')
		}
		return k.decodeArrow(msg)
	}

	// pasted text is never interpreted as commands
	if msg.Paste {
		return editor.K(editor.KeyNone)
	}

	switch {
	case key.Matches(msg, k.Edit):
		return editor.K(editor.KeyEdit)
	case key.Matches(msg, k.Write):
		return editor.K(editor.KeyWrite)
	case key.Matches(msg, k.Quit):
		return editor.K(editor.KeyQuit)
	}
	return k.decodeArrow(msg)
}

func (k KeyMap) decodeArrow(msg tea.KeyMsg) editor.Key {
	switch {
	case key.Matches(msg, k.Left):
		return editor.K(editor.KeyLeft)
	case key.Matches(msg, k.Right):
		return editor.K(editor.KeyRight)
	case key.Matches(msg, k.Up):
		return editor.K(editor.KeyUp)
	case key.Matches(msg, k.Down):
		return editor.K(editor.KeyDown)
	}
	return editor.K(editor.KeyNone)
}
