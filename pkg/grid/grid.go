// Package grid holds the in-memory table being edited. Rows are independent
// slices and may have different lengths; nothing is padded to a common width.
package grid

// Grid is a jagged sequence of text rows.
type Grid struct {
	rows [][]string
}

// New returns a grid that takes ownership of rows.
func New(rows [][]string) *Grid {
	return &Grid{rows: rows}
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the length of the longest row, or 0 for an empty grid.
func (g *Grid) Width() int {
	width := 0
	for _, row := range g.rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// RowLen returns the number of cells in row, or 0 if the row does not exist.
func (g *Grid) RowLen(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// Get returns the text at (row, col), or "" when the cell is out of bounds.
// It never grows the grid.
func (g *Grid) Get(row, col int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	if col < 0 || col >= len(g.rows[row]) {
		return ""
	}
	return g.rows[row][col]
}

// Ensure grows the grid with empty rows and empty cells until (row, col) is
// addressable. Existing content is left alone.
func (g *Grid) Ensure(row, col int) {
	if row < 0 || col < 0 {
		return
	}
	for len(g.rows) <= row {
		g.rows = append(g.rows, []string{})
	}
	for len(g.rows[row]) <= col {
		g.rows[row] = append(g.rows[row], "")
	}
}

// Set replaces the text at (row, col). Callers are expected to Ensure the
// cell first; Set grows the grid itself rather than dropping the write.
func (g *Grid) Set(row, col int, text string) {
	if row < 0 || col < 0 {
		return
	}
	g.Ensure(row, col)
	g.rows[row][col] = text
}

// Extent records the shape a later Shrink can return to.
type Extent struct {
	Height int
	Row    int
	RowLen int
}

// ExtentAt captures the current height and the length of row.
func (g *Grid) ExtentAt(row int) Extent {
	return Extent{Height: len(g.rows), Row: row, RowLen: g.RowLen(row)}
}

// Shrink undoes growth made by Ensure since e was captured. Rows appended
// after e are dropped and row e.Row is cut back to its recorded length.
func (g *Grid) Shrink(e Extent) {
	if e.Height < len(g.rows) {
		g.rows = g.rows[:e.Height]
	}
	if e.Row >= 0 && e.Row < len(g.rows) && e.RowLen < len(g.rows[e.Row]) {
		g.rows[e.Row] = g.rows[e.Row][:e.RowLen]
	}
}

// Rows returns a deep copy of the grid contents.
func (g *Grid) Rows() [][]string {
	out := make([][]string, len(g.rows))
	for i, row := range g.rows {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out
}
