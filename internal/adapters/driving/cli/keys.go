package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/logger"
)

// keysResult is the structured output of the keys command.
type keysResult struct {
	Display     string              `json:"display" yaml:"display"`
	Base        string              `json:"base" yaml:"base"`
	State       string              `json:"state" yaml:"state"`
	Pending     string              `json:"pending,omitempty" yaml:"pending,omitempty"`
	Calculation *domain.Calculation `json:"calculation,omitempty" yaml:"calculation,omitempty"`
	Errors      []string            `json:"errors,omitempty" yaml:"errors,omitempty"`
}

var keysCmd = &cobra.Command{
	Use:   "keys [tokens...]",
	Short: "Replay keypad presses",
	Long: `Feeds tokens to the calculator keypad as if they were pressed in order
and prints the final display.

Tokens:
  digits            each character is one digit press (e.g. 101, ff)
  + - =             operators and equals
  C, clear          clear everything
  bs, backspace, ⌫  delete the last digit
  DEC BIN OCT HEX   switch base, re-rendering the display

A lone "C" always clears. Use "c" to enter the hex digit C on its own.

Examples:
  radix keys --base bin 101 + 11 =
  radix keys 10 BIN`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKeys,
}

func init() {
	keysCmd.Flags().StringP("base", "b", "", "starting base (default: configured base)")
	addFormatFlag(keysCmd)
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	if newKeypad == nil {
		return errors.New("keypad not configured")
	}

	format, err := getFormat(cmd)
	if err != nil {
		return err
	}

	base, err := resolveBase(cmd)
	if err != nil {
		return err
	}

	var inputs []domain.KeypadInput
	for _, token := range args {
		parsed, err := domain.ParseKeypadInputs(token)
		if err != nil {
			return fmt.Errorf("token %q: %w", token, err)
		}
		inputs = append(inputs, parsed...)
	}

	keypad := newKeypad(base)
	result := keysResult{}

	logger.Section("Keypad")
	for _, input := range inputs {
		if err := keypad.Press(input); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", input, err))
		}
		snap := keypad.Snapshot()
		logger.Debug("%-3s -> %-24s display=%s", input, snap.State, snap.Display)
	}

	snap := keypad.Snapshot()
	result.Display = snap.Display
	result.Base = snap.Base.String()
	result.State = snap.State.String()
	result.Pending = snap.PendingLine()
	result.Calculation = snap.Calculation

	if format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, result)
	}

	for _, e := range result.Errors {
		cmd.PrintErrf("Error: %s\n", e)
	}
	cmd.Printf("Display: %s\n", result.Display)
	cmd.Printf("Base:    %s\n", result.Base)
	cmd.Printf("State:   %s\n", result.State)
	if result.Pending != "" {
		cmd.Printf("Pending: %s\n", result.Pending)
	}
	if result.Calculation != nil {
		cmd.Printf("Last:    %s\n", result.Calculation.Step.Explanation)
	}
	return nil
}
