package mcp

import (
	"github.com/abdidvp/stockroom/internal/application"
	"github.com/mark3labs/mcp-go/server"
)

// NewStockroomMCPServer creates an MCP server with all stockroom tools and
// resources registered. Every call operates on sess, so changes persist for
// the life of the server.
func NewStockroomMCPServer(sess *application.Session, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"stockroom",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, sess)
	registerResources(s, sess)

	return s
}
