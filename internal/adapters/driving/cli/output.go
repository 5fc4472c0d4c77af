package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// addFormatFlag registers --format on cmd.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "o", formatText, "output format: text, json or yaml")
}

// getFormat reads and validates --format.
func getFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("getting format flag: %w", err)
	}
	switch format {
	case formatText, formatJSON, formatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

// writeStructured writes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// newTable returns a table writing to w with the given header.
func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// writeRepresentations prints a value in every base as a table.
func writeRepresentations(w io.Writer, r domain.Representations) {
	table := newTable(w, "Base", "Radix", "Value")
	for _, base := range domain.AllBases() {
		table.Append([]string{base.Description(), fmt.Sprint(base.Radix()), r.In(base)})
	}
	table.Render()
}

// writeSteps prints indented step lines under a heading.
func writeSteps(w io.Writer, heading string, lines []string) {
	fmt.Fprintln(w, heading)
	for _, line := range lines {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

// resolveBase reads --base, falling back to the configured default base.
func resolveBase(cmd *cobra.Command) (domain.Base, error) {
	raw, err := cmd.Flags().GetString("base")
	if err != nil {
		return 0, fmt.Errorf("getting base flag: %w", err)
	}
	if raw != "" {
		base, err := domain.ParseBase(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", err, raw)
		}
		return base, nil
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Calculator.DefaultBase, nil
		}
	}
	return domain.BaseDecimal, nil
}

// resolveShowSteps reads --steps, falling back to the configured default.
func resolveShowSteps(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("steps") {
		show, _ := cmd.Flags().GetBool("steps") //nolint:errcheck // flag is registered
		return show
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Display.ShowSteps
		}
	}
	return true
}
