package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/gridedit/internal/logger"
	"github.com/pluqqy/gridedit/pkg/editor"
	"github.com/pluqqy/gridedit/pkg/models"
)

// Clipboard receives copied cell text.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Option configures an App.
type Option func(*App)

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(a *App) { a.clipboard = c }
}

// App is the bubbletea model driving one editing session.
type App struct {
	machine   *editor.Machine
	settings  *models.Settings
	keys      KeyMap
	help      help.Model
	clipboard Clipboard

	width     int
	height    int
	statusMsg string
	err       error
}

func NewApp(machine *editor.Machine, settings *models.Settings, opts ...Option) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	a := &App{
		machine:   machine,
		settings:  settings,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		clipboard: systemClipboard{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Err returns the error that stopped the loop, if any.
func (a *App) Err() error {
	return a.err
}

func (a *App) Machine() *editor.Machine {
	return a.machine
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		a.statusMsg = ""
		return a, a.dispatch(msg)
	}
	return a, nil
}

// dispatch feeds a key event to the machine. An event carrying several
// runes is split so each rune is decoded against the mode it lands in.
func (a *App) dispatch(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		for _, r := range msg.Runes {
			single := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt, Paste: msg.Paste}
			if cmd := a.dispatch(single); cmd != nil {
				return cmd
			}
		}
		return nil
	}

	if key.Matches(msg, a.keys.Abort) {
		logger.Warn("aborted without saving", "path", a.machine.Path(), "dirty", a.machine.Dirty())
		return tea.Quit
	}

	editing := a.machine.Editing()
	if !editing && !msg.Paste && key.Matches(msg, a.keys.Yank) {
		a.yank()
		return nil
	}
	if !editing && !msg.Paste && key.Matches(msg, a.keys.Help) {
		a.help.ShowAll = !a.help.ShowAll
		return nil
	}

	k := a.keys.Decode(msg, editing)
	outcome, err := a.machine.Handle(k)
	if err != nil {
		a.err = err
		return tea.Quit
	}
	if outcome == editor.Quit {
		return tea.Quit
	}
	if k.Code == editor.KeyWrite && !editing {
		a.statusMsg = fmt.Sprintf("Saved %s", a.machine.Path())
	}
	return nil
}

func (a *App) yank() {
	text := a.machine.Selected()
	if err := a.clipboard.WriteAll(text); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		a.statusMsg = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	a.statusMsg = "Copied cell to clipboard"
}

// Frame projects the current state without touching it.
func (a *App) Frame() Frame {
	return Project(a.machine.Grid(), a.machine.Snapshot(), a.keys, a.statusMsg)
}

func (a *App) View() string {
	return RenderFrame(a.Frame(), ViewOptions{
		Width:        a.width,
		Height:       a.height,
		MaxCellWidth: a.settings.UI.MaxCellWidth,
		ShowHelp:     a.settings.UI.ShowHelp,
		Help:         a.help,
	})
}
