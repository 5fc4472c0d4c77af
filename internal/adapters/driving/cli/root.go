// Package cli provides the cobra command tree for radix.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// Services holds the driving ports used by the commands.
type Services struct {
	Converter  driving.ConverterService
	Calculator driving.CalculatorService
	Settings   driving.SettingsService

	// NewKeypad creates a keypad starting in base.
	NewKeypad func(base domain.Base) driving.Keypad

	// Watcher is optional. When set, the TUI reloads settings on change.
	Watcher driven.ConfigWatcher
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(configDir string) (*Services, error)

var (
	version = "dev"

	verbose   bool
	configDir string

	converterService  driving.ConverterService
	calculatorService driving.CalculatorService
	settingsService   driving.SettingsService
	newKeypad         func(base domain.Base) driving.Keypad
	configWatcher     driven.ConfigWatcher

	bootstrap Bootstrap

	// isInteractive reports whether stdin and stdout are both terminals.
	isInteractive = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
)

var rootCmd = &cobra.Command{
	Use:   "radix",
	Short: "Number base converter and calculator",
	Long: `radix converts integers between binary, octal, decimal and hexadecimal
and adds or subtracts numbers within a base, showing every step.

Run without a command in a terminal to open the interactive calculator.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.radix)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services after flag parsing.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs the driving ports used by the commands.
func SetServices(s *Services) {
	converterService = s.Converter
	calculatorService = s.Calculator
	settingsService = s.Settings
	newKeypad = s.NewKeypad
	configWatcher = s.Watcher
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil {
		return nil
	}

	logger.Section("Startup")
	s, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(s)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isInteractive() {
		return runTUI(cmd, args)
	}
	return cmd.Help()
}
