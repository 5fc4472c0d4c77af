package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

var convertCmd = &cobra.Command{
	Use:   "convert [decimal]",
	Short: "Convert a decimal integer to other bases",
	Long: `Converts a non-negative decimal integer to binary, octal and hexadecimal
by repeated division, printing each division step.

Without --base every base is shown.

Examples:
  radix convert 255
  radix convert 255 --base hex
  radix convert 10 --base bin --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("base", "b", "", "target base: BIN, OCT, DEC or HEX (default: all)")
	convertCmd.Flags().Bool("steps", true, "print the division steps")
	addFormatFlag(convertCmd)
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if converterService == nil {
		return errors.New("converter service not configured")
	}

	format, err := getFormat(cmd)
	if err != nil {
		return err
	}

	value, err := converterService.ToDecimal(args[0], domain.BaseDecimal)
	if err != nil {
		return err
	}

	rawBase, err := cmd.Flags().GetString("base")
	if err != nil {
		return fmt.Errorf("getting base flag: %w", err)
	}
	showSteps := resolveShowSteps(cmd)

	if rawBase == "" {
		set, err := converterService.ConvertAll(value)
		if err != nil {
			return fmt.Errorf("convert %d: %w", value, err)
		}
		if !showSteps {
			for _, base := range domain.AllBases() {
				set.In(base).Steps = nil
			}
		}
		if format != formatText {
			return writeStructured(cmd.OutOrStdout(), format, set)
		}
		return outputConversionSet(cmd, set, showSteps)
	}

	base, err := domain.ParseBase(rawBase)
	if err != nil {
		return fmt.Errorf("%w: %q", err, rawBase)
	}

	conv, err := converterService.Convert(value, base)
	if err != nil {
		return fmt.Errorf("convert %d: %w", value, err)
	}
	if !showSteps {
		conv.Steps = nil
	}
	if format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, conv)
	}

	cmd.Printf("%d (DEC) = %s (%s)\n", conv.Value, conv.Representation, conv.Base)
	if showSteps {
		cmd.Println()
		writeSteps(cmd.OutOrStdout(), "Steps:", conv.StepLines())
	}
	return nil
}

func outputConversionSet(cmd *cobra.Command, set *domain.ConversionSet, showSteps bool) error {
	out := cmd.OutOrStdout()

	table := newTable(out, "Base", "Radix", "Value")
	for _, base := range domain.AllBases() {
		conv := set.In(base)
		table.Append([]string{base.Description(), fmt.Sprint(base.Radix()), conv.Representation})
	}
	table.Render()

	if !showSteps {
		return nil
	}

	for _, base := range domain.AllBases() {
		conv := set.In(base)
		cmd.Println()
		writeSteps(out, fmt.Sprintf("%s (%s):", base.Description(), base), conv.StepLines())
	}
	return nil
}
