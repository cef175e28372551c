package editor

import (
	"github.com/pluqqy/gridedit/pkg/grid"
	"github.com/rivo/uniseg"
)

// Mode is either Navigating or Editing. The edit buffer only exists inside
// Editing, so a navigating machine cannot carry a stale buffer.
type Mode interface {
	isMode()
}

// Navigating moves the cursor and dispatches file commands.
type Navigating struct{}

// Editing holds the single-cell edit session.
type Editing struct {
	Row    int
	Col    int
	Buffer string

	// shape of the grid before the session grew it, restored on cancel
	before grid.Extent
}

func (Navigating) isMode() {}
func (Editing) isMode()    {}

// dropLastGrapheme removes the final user-perceived character of s.
func dropLastGrapheme(s string) string {
	if s == "" {
		return s
	}
	end := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		from, _ := g.Positions()
		end = from
	}
	return s[:end]
}
