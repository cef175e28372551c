package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorNormal   = "245" // Light gray for normal text
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings and the dirty marker
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorBorder   = "243" // Border gray
	ColorCursor   = "220" // Yellow background for the selected cell
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive)).
			PaddingLeft(1)

	// Table cell styles
	CellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Padding(0, 1)

	SelectedCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDark)).
				Background(lipgloss.Color(ColorCursor)).
				Bold(true).
				Padding(0, 1)

	EditingCellStyle = SelectedCellStyle.
				Underline(true)

	TableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorBorder))

	// Panel styles
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive)).
			PaddingLeft(1).
			PaddingRight(1)

	ActivePanelStyle = PanelStyle.
				BorderForeground(lipgloss.Color(ColorActive))

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite))

	DirtyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)

	MessageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim)).
			PaddingLeft(1)
)
