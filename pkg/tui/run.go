package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/gridedit/internal/logger"
)

// Run drives app until it quits, fails or ctx is cancelled. The alternate
// screen and raw input mode are held only for the duration of the call and
// are released by the program on every exit path, including panics in
// Update or View, before Run returns.
func Run(ctx context.Context, app *App, opts ...tea.ProgramOption) error {
	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts...)

	p := tea.NewProgram(app, options...)
	logger.Debug("terminal interface started")
	final, err := p.Run()
	logger.Debug("terminal interface stopped")
	if err != nil {
		return fmt.Errorf("failed to run the terminal interface: %w", err)
	}

	if a, ok := final.(*App); ok && a.Err() != nil {
		return a.Err()
	}
	return nil
}
