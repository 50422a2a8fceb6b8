package cli

import (
	mcpadapter "github.com/abdidvp/stockroom/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the stockroom MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(a))
	return cmd
}

func newMCPServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start stockroom MCP server (stdio)",
		Long:  "Start the stockroom MCP server using stdio transport. Assistants can list, add, update and procure products against one live catalog. Logs go to stderr.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.session(cmd)
			if err != nil {
				return err
			}
			s := mcpadapter.NewStockroomMCPServer(sess, version)
			return server.ServeStdio(s)
		},
	}
}
