package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
)

const (
	appTitle     = "Grid Edit"
	ellipsis     = "…"
	lineBreakTag = "↵"
)

// ViewOptions carries the presentation settings that do not come from the
// grid or the machine.
type ViewOptions struct {
	Width        int
	Height       int
	MaxCellWidth int
	ShowHelp     bool
	Help         help.Model
}

// RenderFrame lays out the table, status and editor regions.
func RenderFrame(f Frame, opts ViewOptions) string {
	status := renderStatus(f, opts)
	editorPanel := renderEditor(f, opts)
	header := renderHeader(f)

	// rows left for table data once the other regions and table borders are drawn
	capacity := 0
	if opts.Height > 0 {
		used := lipgloss.Height(header) + lipgloss.Height(status) + lipgloss.Height(editorPanel) + 2
		capacity = opts.Height - used
		if capacity < 1 {
			capacity = 1
		}
	}

	body := renderTable(f, capacity, opts.MaxCellWidth, opts.Width)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, editorPanel)
}

func renderHeader(f Frame) string {
	title := TitleStyle.Render(appTitle)
	if f.Dirty {
		title += " " + DirtyStyle.Render("*")
	}
	return title
}

// visibleRange returns the [start, end) rows to draw so that cursor stays
// on screen. capacity <= 0 means unbounded.
func visibleRange(total, cursor, capacity int) (int, int) {
	if capacity <= 0 || total <= capacity {
		return 0, total
	}
	start := 0
	if cursor >= capacity {
		start = cursor - capacity + 1
	}
	if start > total-capacity {
		start = total - capacity
	}
	return start, start + capacity
}

// visibleCols returns the [start, end) columns to draw so that cursor stays
// on screen. widths holds the drawn width of each column including its
// separator. avail <= 0 means unbounded. The cursor column is always drawn,
// even when it alone is wider than avail.
func visibleCols(widths []int, cursor, avail int) (int, int) {
	if avail <= 0 || len(widths) == 0 {
		return 0, len(widths)
	}
	if cursor >= len(widths) {
		cursor = len(widths) - 1
	}
	if cursor < 0 {
		cursor = 0
	}

	used := 0
	for _, w := range widths[:cursor+1] {
		used += w
	}
	start := 0
	for used > avail && start < cursor {
		used -= widths[start]
		start++
	}

	end := cursor + 1
	for end < len(widths) && used+widths[end] <= avail {
		used += widths[end]
		end++
	}
	return start, end
}

// displayText makes cell text safe for a single table line.
func displayText(s string, maxWidth int) string {
	s = strings.ReplaceAll(s, "\r\n", lineBreakTag)
	s = strings.ReplaceAll(s, "\n", lineBreakTag)
	s = strings.ReplaceAll(s, "\r", lineBreakTag)
	s = strings.ReplaceAll(s, "\t", " ")
	if maxWidth > 0 && lipgloss.Width(s) > maxWidth {
		s = truncate.StringWithTail(s, uint(maxWidth), ellipsis)
	}
	return s
}

func renderTable(f Frame, capacity, maxCellWidth, width int) string {
	if len(f.Rows) == 0 {
		return EmptyStyle.Render("(empty file: press e to add a cell)")
	}

	start, end := visibleRange(len(f.Rows), f.CursorRow, capacity)
	visible := f.Rows[start:end]

	texts := make([][]string, len(visible))
	widths := make([]int, f.Columns)
	for r, cells := range visible {
		texts[r] = make([]string, f.Columns)
		for c, cell := range cells {
			text := cell.Text
			if cell.Editing {
				text += "_"
			}
			texts[r][c] = displayText(text, maxCellWidth)
			if w := lipgloss.Width(texts[r][c]); w > widths[c] {
				widths[c] = w
			}
		}
	}
	// cell padding plus the border to the right of each column
	for c := range widths {
		widths[c] += CellStyle.GetHorizontalPadding() + 1
	}

	// the left border takes one column
	colStart, colEnd := visibleCols(widths, f.CursorCol, width-1)

	rows := make([][]string, len(texts))
	for r := range texts {
		rows[r] = texts[r][colStart:colEnd]
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			col += colStart
			if row < 0 || row >= len(visible) || col >= len(visible[row]) {
				return CellStyle
			}
			cell := visible[row][col]
			switch {
			case cell.Editing:
				return EditingCellStyle
			case cell.Selected:
				return SelectedCellStyle
			default:
				return CellStyle
			}
		}).
		Rows(rows...)

	return t.String()
}

func renderStatus(f Frame, opts ViewOptions) string {
	lines := []string{f.Status}
	if f.Message != "" {
		lines = append(lines, MessageStyle.Render(f.Message))
	}
	if opts.ShowHelp {
		if opts.Help.ShowAll {
			lines = append(lines, opts.Help.FullHelpView(f.FullHelp))
		} else {
			lines = append(lines, opts.Help.ShortHelpView(f.Help))
		}
	}
	return panel(PanelStyle, "Status", strings.Join(lines, "\n"), opts.Width)
}

func renderEditor(f Frame, opts ViewOptions) string {
	style := PanelStyle
	if f.Editing {
		style = ActivePanelStyle
	}
	return panel(style, f.EditorTitle, f.EditorLine, opts.Width)
}

func panel(style lipgloss.Style, title, content string, width int) string {
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(PanelTitleStyle.Render(title) + "  " + content)
}
