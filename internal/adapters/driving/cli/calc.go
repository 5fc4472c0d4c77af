package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

var calcCmd = &cobra.Command{
	Use:   "calc [operand1] [+|-] [operand2]",
	Short: "Add or subtract two numbers in a base",
	Long: `Evaluates operand1 + operand2 or operand1 - operand2 where both operands
are written in the selected base. The result is shown in that base along
with the decimal working and every other base.

Without --base the configured default base is used.

Examples:
  radix calc 101 + 11 --base bin
  radix calc FF - 1 --base hex`,
	Args: cobra.ExactArgs(3),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringP("base", "b", "", "base of the operands (default: configured base)")
	calcCmd.Flags().Bool("steps", true, "print the calculation steps")
	addFormatFlag(calcCmd)
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	format, err := getFormat(cmd)
	if err != nil {
		return err
	}

	base, err := resolveBase(cmd)
	if err != nil {
		return err
	}

	operator, err := domain.ParseOperator(args[1])
	if err != nil {
		return err
	}

	calc, err := calculatorService.Evaluate(args[0], args[2], operator, base)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	if format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, calc)
	}

	outputCalculation(cmd, calc, resolveShowSteps(cmd))
	return nil
}

// outputCalculation prints the explanation, the working and every base.
func outputCalculation(cmd *cobra.Command, calc *domain.Calculation, showSteps bool) {
	step := calc.Step

	cmd.Println(step.Explanation)
	cmd.Println()

	if showSteps {
		cmd.Println("Steps:")
		cmd.Println("  1. Convert operands to decimal:")
		for _, line := range step.OperandLines() {
			cmd.Printf("       %s\n", line)
		}
		cmd.Println("  2. Calculate in decimal:")
		cmd.Printf("       %s\n", step.DecimalLine())
		cmd.Printf("  3. Convert result to %s:\n", step.Base)
		cmd.Printf("       %d (DEC) = %s (%s)\n", step.DecimalResult, step.Result, step.Base)
		cmd.Println()
	}

	writeRepresentations(cmd.OutOrStdout(), calc.Result)
}
