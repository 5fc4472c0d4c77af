package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/mcp"
)

// Port range searched when --http is given without --port.
const (
	mcpPortRangeStart = 8080
	mcpPortRangeEnd   = 8180
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

Tools:     convert, to_decimal, evaluate
Resources: radix://bases, radix://conversions/{value}

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead, or --http to pick a free port
between 8080 and 8180.

Examples:
  # Stdio mode (default)
  radix mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  radix mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "radix": {
        "command": "/path/to/radix",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("http", false, "serve over HTTP on the first free port")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	useHTTP, err := cmd.Flags().GetBool("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}
	if port < 0 {
		return errors.New("port must not be negative")
	}

	ports := &mcp.Ports{
		Converter:  converterService,
		Calculator: calculatorService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if useHTTP && port == 0 {
		port, err = mcp.FindAvailablePort(mcpPortRangeStart, mcpPortRangeEnd)
		if err != nil {
			return err
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
