package mcp

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/strcalc"
	"github.com/aretw0/strcalc/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SyntaxURI identifies the resource describing the input syntax.
const SyntaxURI = "strcalc://syntax"

const syntaxDoc = `# String calculator syntax

Numbers are separated by "," or newline by default.

A first line of the form "//<delimiters>\n" declares custom delimiters:

- "//;\n1;2;3"         one delimiter written as-is
- "//[***]\n1***2***3" one bracketed, possibly multi-character delimiter
- "//[*][%]\n1*2%3"    several bracketed delimiters

Negative numbers are rejected and all of them are listed in the error.
`

// Calculator defines the interface required by the MCP server.
type Calculator interface {
	Calculate(ctx context.Context, raw string) domain.Result
}

// Server wraps a Calculator and exposes it as an MCP Server.
type Server struct {
	calc      Calculator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(calc Calculator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		calc:      calc,
		logger:    logger,
		mcpServer: server.NewMCPServer("strcalc-mcp", strings.TrimSpace(strcalc.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// MCPServer exposes the underlying server, e.g. for SSE or in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	addTool := mcp.NewTool("add",
		mcp.WithDescription("Sum the integers encoded in a string. Supports custom delimiter headers such as \"//[*][%]\\n1*2%3\". Negative numbers are rejected."),
		mcp.WithString("numbers", mcp.Required(), mcp.Description("The encoded numbers, optionally starting with a //-header")),
		mcp.WithOutputSchema[domain.Result](),
	)
	s.mcpServer.AddTool(addTool, s.handleAdd)
}

func (s *Server) registerResources() {
	syntax := mcp.NewResource(SyntaxURI, "Input syntax",
		mcp.WithResourceDescription("How numbers and delimiters are written"),
		mcp.WithMIMEType("text/markdown"),
	)
	s.mcpServer.AddResource(syntax, s.readSyntax)
}

func (s *Server) handleAdd(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	numbers, err := request.RequireString("numbers")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := s.calc.Calculate(ctx, numbers)
	if !res.Success {
		s.logger.Warn("MCP add: Input rejected", "kind", res.Kind, "error", res.Error)
		// Clients reading only text still see the kind; structured clients get the full Result.
		failed := mcp.NewToolResultStructured(res, res.Kind+": "+res.Error)
		failed.IsError = true
		return failed, nil
	}

	return mcp.NewToolResultStructured(res, strconv.FormatInt(res.Value(), 10)), nil
}

func (s *Server) readSyntax(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      SyntaxURI,
			MIMEType: "text/markdown",
			Text:     syntaxDoc,
		},
	}, nil
}
