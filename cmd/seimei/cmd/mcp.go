package cmd

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/phrazzld/seimei-api/internal/mcptools"
	"github.com/spf13/cobra"
)

func (c *cli) newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the seimei tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, dict, err := c.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer c.closeDictionary(dict)

			c.logger.Info("serving MCP over stdio", "dictionary_driver", dict.Driver())
			return server.ServeStdio(mcptools.NewServer(svc))
		},
	}
}
