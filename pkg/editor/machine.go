// Package editor implements the cursor and single-cell edit state machine.
//
// The machine starts Navigating at (0,0). The edit key opens an Editing
// session seeded from the selected cell; commit writes the buffer back and
// marks the grid dirty, cancel discards it. Write and quit go through a Saver.
package editor

import (
	"errors"

	"github.com/pluqqy/gridedit/internal/logger"
	"github.com/pluqqy/gridedit/pkg/grid"
)

// Saver persists the grid to path.
type Saver interface {
	Save(path string, g *grid.Grid) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(path string, g *grid.Grid) error

func (f SaverFunc) Save(path string, g *grid.Grid) error {
	return f(path, g)
}

// ErrNoSaver is returned by Save on a machine built without a Saver.
var ErrNoSaver = errors.New("no saver configured")

var noSaver = SaverFunc(func(string, *grid.Grid) error { return ErrNoSaver })

// Outcome tells the event loop whether to keep running.
type Outcome int

const (
	Continue Outcome = iota
	Quit
)

// Machine owns the cursor, the mode and the dirty flag for one file.
type Machine struct {
	grid  *grid.Grid
	path  string
	saver Saver

	row   int
	col   int
	mode  Mode
	dirty bool
}

// New returns a machine navigating g, which was loaded from path. A nil
// saver makes every save fail with ErrNoSaver.
func New(g *grid.Grid, path string, saver Saver) *Machine {
	if g == nil {
		g = grid.New(nil)
	}
	if saver == nil {
		saver = noSaver
	}
	return &Machine{
		grid:  g,
		path:  path,
		saver: saver,
		mode:  Navigating{},
	}
}

// Snapshot is a read-only copy of the machine state used for rendering.
type Snapshot struct {
	Path  string
	Row   int
	Col   int
	Mode  Mode
	Dirty bool
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Path:  m.path,
		Row:   m.row,
		Col:   m.col,
		Mode:  m.mode,
		Dirty: m.dirty,
	}
}

func (m *Machine) Grid() *grid.Grid { return m.grid }
func (m *Machine) Path() string     { return m.path }
func (m *Machine) Dirty() bool      { return m.dirty }
func (m *Machine) Mode() Mode       { return m.mode }

// Cursor returns the selected (row, col).
func (m *Machine) Cursor() (int, int) {
	return m.row, m.col
}

// Editing reports whether an edit session is open.
func (m *Machine) Editing() bool {
	_, ok := m.mode.(Editing)
	return ok
}

// Selected returns the text of the selected cell.
func (m *Machine) Selected() string {
	return m.grid.Get(m.row, m.col)
}

// Handle applies k in the current mode. A save failure is returned as-is and
// leaves the mode, the cursor and the dirty flag unchanged.
func (m *Machine) Handle(k Key) (Outcome, error) {
	switch mode := m.mode.(type) {
	case Editing:
		m.handleEditing(mode, k)
		return Continue, nil
	default:
		return m.handleNavigating(k)
	}
}

func (m *Machine) handleNavigating(k Key) (Outcome, error) {
	switch k.Code {
	case KeyLeft:
		if m.col > 0 {
			m.col--
		}
	case KeyRight:
		if m.col+1 < m.grid.Width() {
			m.col++
		}
	case KeyUp:
		if m.row > 0 {
			m.row--
			m.clampCol()
		}
	case KeyDown:
		if m.row+1 < m.grid.Height() {
			m.row++
			m.clampCol()
		}
	case KeyEdit:
		before := m.grid.ExtentAt(m.row)
		m.grid.Ensure(m.row, m.col)
		m.mode = Editing{
			Row:    m.row,
			Col:    m.col,
			Buffer: m.grid.Get(m.row, m.col),
			before: before,
		}
		logger.Debug("edit started", "row", m.row, "col", m.col)
	case KeyWrite:
		if err := m.Save(); err != nil {
			return Continue, err
		}
	case KeyQuit:
		if m.dirty {
			if err := m.Save(); err != nil {
				return Continue, err
			}
		}
		logger.Info("quit requested", "path", m.path)
		return Quit, nil
	}
	return Continue, nil
}

// clampCol keeps the cursor inside the current row after vertical movement.
// A zero-length row clamps to column 0.
func (m *Machine) clampCol() {
	n := m.grid.RowLen(m.row)
	if n == 0 {
		m.col = 0
		return
	}
	if m.col > n-1 {
		m.col = n - 1
	}
}

func (m *Machine) handleEditing(e Editing, k Key) {
	switch k.Code {
	case KeyChar:
		e.Buffer += string(k.Rune)
		m.mode = e
	case KeyBackspace:
		e.Buffer = dropLastGrapheme(e.Buffer)
		m.mode = e
	case KeyCommit:
		m.grid.Ensure(e.Row, e.Col)
		m.grid.Set(e.Row, e.Col, e.Buffer)
		m.dirty = true
		m.mode = Navigating{}
		logger.Debug("edit committed", "row", e.Row, "col", e.Col)
	case KeyCancel:
		m.grid.Shrink(e.before)
		m.mode = Navigating{}
		logger.Debug("edit cancelled", "row", e.Row, "col", e.Col)
	}
}

// Save writes the grid to the machine's path and clears the dirty flag.
func (m *Machine) Save() error {
	if err := m.saver.Save(m.path, m.grid); err != nil {
		logger.Error("save failed", "path", m.path, "error", err)
		return err
	}
	m.dirty = false
	logger.Info("saved", "path", m.path, "rows", m.grid.Height())
	return nil
}
