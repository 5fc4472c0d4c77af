package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// decodeResult is the structured output of the decode command.
type decodeResult struct {
	Input           string                 `json:"input" yaml:"input"`
	Base            string                 `json:"base" yaml:"base"`
	Decimal         int64                  `json:"decimal" yaml:"decimal"`
	Representations domain.Representations `json:"representations" yaml:"representations"`
}

var decodeCmd = &cobra.Command{
	Use:   "decode [digits]",
	Short: "Read a number written in a base",
	Long: `Parses digits written in the given base and shows the value in every base.
Hex letters may be upper or lower case. A leading minus sign is allowed.

Without --base the configured default base is used.

Examples:
  radix decode ff --base hex
  radix decode 1010 --base bin`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringP("base", "b", "", "base the digits are written in (default: configured base)")
	addFormatFlag(decodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	if converterService == nil {
		return errors.New("converter service not configured")
	}

	format, err := getFormat(cmd)
	if err != nil {
		return err
	}

	base, err := resolveBase(cmd)
	if err != nil {
		return err
	}

	value, err := converterService.ToDecimal(args[0], base)
	if err != nil {
		return err
	}

	result := decodeResult{
		Input:           domain.NormaliseDigits(args[0]),
		Base:            base.String(),
		Decimal:         value,
		Representations: converterService.FromDecimal(value),
	}

	if format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, result)
	}

	cmd.Printf("%s (%s) = %d (DEC)\n\n", result.Input, result.Base, result.Decimal)
	writeRepresentations(cmd.OutOrStdout(), result.Representations)
	return nil
}
