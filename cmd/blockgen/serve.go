package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	blockgenmcp "github.com/gorewood/blockgen/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run blockgen as a Model Context Protocol (MCP) server over stdio.

This lets any MCP-capable editor or agent insert blocks into files and
learn where the cursor should land.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "blockgen": {
        "command": "blockgen",
        "args": ["serve"]
      }
    }
  }

Available tools: list_blocks, get_template, generate_block`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer application.close()

			application.logger.Debug("serving MCP on stdio")
			return newMCPServer(application).Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

// newMCPServer builds the MCP server on the loaded settings and catalog.
func newMCPServer(application *app) *mcp.Server {
	return blockgenmcp.NewServer(buildVersion(), blockgenmcp.Options{
		Catalog:          application.catalog,
		Logger:           application.logger,
		FallbackLanguage: application.settings.FallbackLanguage,
	})
}
