package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/pluqqy/gridedit/internal/cli"
	"github.com/pluqqy/gridedit/internal/logger"
	"github.com/pluqqy/gridedit/pkg/editor"
	"github.com/pluqqy/gridedit/pkg/files"
	"github.com/pluqqy/gridedit/pkg/models"
	"github.com/pluqqy/gridedit/pkg/tui"
)

var errMissingPath = errors.New("missing CSV file path")

// runUI is replaced in tests so the terminal is never touched
var runUI = tui.Run

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gridedit <path/to/file.csv>",
		Short: "Edit a comma-delimited file as a grid in the terminal",
		Long: `Gridedit loads a comma-delimited file into a grid, lets you move between
cells with the arrow keys, edit one cell at a time and write the result back
to the same file. Press q to quit; unsaved edits are written first.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errMissingPath
			}
			if len(args) > 1 {
				return fmt.Errorf("expected one file path, got %d arguments", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], loadSettings())
		},
	}
}

// loadSettings never fails: problems with the settings file are reported
// and the defaults are used instead.
func loadSettings() *models.Settings {
	path, err := files.SettingsPath()
	if err != nil {
		return models.DefaultSettings()
	}
	settings, err := files.ReadSettings(path)
	if err != nil {
		cli.PrintWarning("Ignoring settings: %v", err)
	}
	return settings
}

func run(ctx context.Context, path string, settings *models.Settings) error {
	if settings.UI.NoColor {
		cli.SetNoColor(true)
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if err := logger.Init(settings.Log.File, logger.ParseLevel(settings.Log.Level)); err != nil {
		cli.PrintWarning("Logging disabled: %v", err)
	}
	defer logger.Close()

	// load before the terminal is taken over so failures print normally
	g, err := files.Load(path)
	if err != nil {
		return err
	}

	machine := editor.New(g, path, editor.SaverFunc(files.Save))
	app := tui.NewApp(machine, settings)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runUI(ctx, app)
}

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, errMissingPath) {
			cli.PrintUsage(cmd.Name())
		}
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
