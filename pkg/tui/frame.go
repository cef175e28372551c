package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/pluqqy/gridedit/pkg/editor"
	"github.com/pluqqy/gridedit/pkg/grid"
)

// FrameCell is one table cell as it should be drawn.
type FrameCell struct {
	Text     string
	Selected bool
	Editing  bool
}

// Frame is everything needed to draw one screen. It is built by Project
// and holds no references back into the grid or the machine.
type Frame struct {
	Columns   int
	Rows      [][]FrameCell
	CursorRow int
	CursorCol int

	Status   string
	Dirty    bool
	Help     []key.Binding
	FullHelp [][]key.Binding
	Message  string

	Editing     bool
	EditorTitle string
	EditorLine  string
}

// Project derives a frame from the grid and a machine snapshot. It only
// reads its inputs, so it is safe to call on every tick.
func Project(g *grid.Grid, s editor.Snapshot, keys KeyMap, message string) Frame {
	cols := g.Width()
	if cols < 1 {
		cols = 1
	}

	edit, editing := s.Mode.(editor.Editing)

	rows := make([][]FrameCell, g.Height())
	for r := range rows {
		cells := make([]FrameCell, cols)
		for c := range cells {
			cell := FrameCell{
				Text:     g.Get(r, c),
				Selected: r == s.Row && c == s.Col,
			}
			if editing && r == edit.Row && c == edit.Col {
				cell.Text = edit.Buffer
				cell.Editing = true
			}
			cells[c] = cell
		}
		rows[r] = cells
	}

	f := Frame{
		Columns:   cols,
		Rows:      rows,
		CursorRow: s.Row,
		CursorCol: s.Col,
		Status:    statusLine(s),
		Dirty:     s.Dirty,
		Help:      keys.ShortHelp(),
		FullHelp:  keys.FullHelp(),
		Message:   message,
		Editing:   editing,
	}

	if editing {
		f.EditorTitle = "Editor"
		f.EditorLine = fmt.Sprintf("Editing (r%d, c%d): %s", edit.Row+1, edit.Col+1, edit.Buffer)
	} else {
		f.EditorTitle = "Info"
		f.EditorLine = fmt.Sprintf("Press '%s' to edit selected cell", keys.Edit.Help().Key)
	}
	return f
}

func statusLine(s editor.Snapshot) string {
	dirty := "no"
	if s.Dirty {
		dirty = "yes"
	}
	return fmt.Sprintf("File: %s | Pos: (row %d, col %d) | Dirty: %s", s.Path, s.Row+1, s.Col+1, dirty)
}
