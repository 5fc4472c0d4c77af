package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// buildInfo is the structured output of the version command.
type buildInfo struct {
	Version    string   `json:"version" yaml:"version"`
	GoVersion  string   `json:"go_version" yaml:"go_version"`
	Platform   string   `json:"platform" yaml:"platform"`
	MCPVersion string   `json:"mcp_server_version" yaml:"mcp_server_version"`
	Bases      []string `json:"bases" yaml:"bases"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	RunE:  runVersion,
}

func init() {
	addFormatFlag(versionCmd)
	rootCmd.AddCommand(versionCmd)
}

func currentBuildInfo() buildInfo {
	info := buildInfo{
		Version:    version,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		MCPVersion: mcp.Version,
	}
	for _, base := range domain.AllBases() {
		info.Bases = append(info.Bases, base.String())
	}
	return info
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := getFormat(cmd)
	if err != nil {
		return err
	}

	info := currentBuildInfo()
	if format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, info)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "radix version %s\n", info.Version)
	if verbose {
		fmt.Fprintf(out, "  go:    %s (%s)\n", info.GoVersion, info.Platform)
		fmt.Fprintf(out, "  mcp:   %s\n", info.MCPVersion)
		fmt.Fprintf(out, "  bases: %s\n", strings.Join(info.Bases, ", "))
	}
	return nil
}
