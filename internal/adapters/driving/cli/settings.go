package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the default base, step traces and the TUI theme.

Settings are stored in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsBaseCmd = &cobra.Command{
	Use:   "base [BIN|OCT|DEC|HEX]",
	Short: "Set the default base",
	Long: `Set the base the calculator starts in and that decode, calc and keys
use when --base is not given. Without an argument a menu is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsBase,
}

var settingsStepsCmd = &cobra.Command{
	Use:   "steps [on|off]",
	Short: "Show or hide step traces by default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsSteps,
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme [default|mono]",
	Short: "Set the TUI colour theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTheme,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsBaseCmd)
	settingsCmd.AddCommand(settingsStepsCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	table := newTable(cmd.OutOrStdout(), "Setting", "Value")
	table.Append([]string{"calculator.default_base", settings.Calculator.DefaultBase.String()})
	table.Append([]string{"display.show_steps", strconv.FormatBool(settings.Display.ShowSteps)})
	table.Append([]string{"display.theme", settings.Display.Theme.String()})
	table.Render()
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'radix settings base' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsBase(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var base domain.Base
	if len(args) == 1 {
		parsed, err := domain.ParseBase(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q", err, args[0])
		}
		base = parsed
	} else {
		reader := bufio.NewReader(cmd.InOrStdin())

		cmd.Println("Select Default Base")
		cmd.Println("-------------------")
		bases := domain.AllBases()
		for i, b := range bases {
			cmd.Printf("  %d. %s (%s)\n", i+1, b.Description(), b)
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(reader), len(bases), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		base = bases[idx-1]
	}

	if err := settingsService.SetDefaultBase(base); err != nil {
		return fmt.Errorf("failed to set default base: %w", err)
	}

	cmd.Printf("Default base set to: %s\n", base.Description())
	return nil
}

func runSettingsSteps(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	show, err := parseToggle(args[0])
	if err != nil {
		return err
	}

	if err := settingsService.SetShowSteps(show); err != nil {
		return fmt.Errorf("failed to set steps: %w", err)
	}

	if show {
		cmd.Println("Step traces enabled.")
	} else {
		cmd.Println("Step traces disabled.")
	}
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	theme := domain.Theme(strings.ToLower(args[0]))
	if err := settingsService.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	cmd.Printf("Theme set to: %s\n", theme)
	return nil
}

// parseToggle accepts on/off in addition to the boolean forms cast understands.
func parseToggle(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	v, err := cast.ToBoolE(s)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
	return v, nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n') //nolint:errcheck // EOF yields the partial line
	return strings.TrimSpace(line)
}

// parseChoice parses a 1-based menu choice.
// Empty input returns defaultVal; invalid input returns 0.
func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > maxVal {
		return 0
	}
	return n
}
