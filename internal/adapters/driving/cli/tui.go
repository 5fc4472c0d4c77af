package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive calculator.

Controls:
  ↑/k, ↓/j     Navigate menus
  0-9, a-f     Enter digits valid for the active base
  + - =        Add, subtract, evaluate
  tab          Next base
  backspace    Delete last digit
  delete       Clear
  esc          Back
  ctrl+c       Quit

The config file is watched while the TUI runs; edits to the default base,
steps or theme are applied immediately.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// buildTUIApp wires the TUI to the installed services.
// The keypad starts in the configured default base.
func buildTUIApp() (*tui.App, error) {
	if newKeypad == nil {
		return nil, errors.New("keypad not available")
	}

	base := domain.BaseDecimal
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			base = s.Calculator.DefaultBase
		}
	}

	ports := tui.NewPorts(converterService, newKeypad(base))
	ports.Settings = settingsService

	app, err := tui.NewApp(ports)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app, nil
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := buildTUIApp()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	// TUI is long-running, so config edits are pushed into it.
	if configWatcher != nil {
		go func() {
			err := configWatcher.Watch(ctx, func() {
				p.Send(messages.SettingsChanged{})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("config watcher stopped: %v", err)
				p.Send(messages.ErrorOccurred{Err: fmt.Errorf("config watcher stopped: %w", err)})
			}
		}()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
