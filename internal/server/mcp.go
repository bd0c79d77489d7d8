package server

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/veslov/keep"
)

// NewMCPServer creates an MCP server exposing the store's resolution and I/O
// operations as tools. Blob content crosses the protocol as base64 text.
func NewMCPServer(st *keep.Store) *server.MCPServer {
	s := server.NewMCPServer(
		"keep",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("keep — cross-environment blob persistence at a single resolved location."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("resolve_path",
			mcp.WithDescription("Resolve the configured location candidates to the single path or key in use."),
		),
		mcpResolve(st),
	)

	s.AddTool(
		mcp.NewTool("blob_exists",
			mcp.WithDescription("Report whether the resolved location currently holds a value."),
		),
		mcpExists(st),
	)

	s.AddTool(
		mcp.NewTool("blob_read",
			mcp.WithDescription("Read the stored blob. Returns its content as base64."),
		),
		mcpRead(st),
	)

	s.AddTool(
		mcp.NewTool("blob_write",
			mcp.WithDescription("Replace the stored blob with the given content."),
			mcp.WithString("content", mcp.Description("New content, base64-encoded"), mcp.Required()),
		),
		mcpWrite(st),
	)

	return s
}

func mcpResolve(st *keep.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := st.Filename()
		if err != nil {
			return mcpError(fmt.Sprintf("resolution failed: %v", err)), nil
		}
		return mcpText(name), nil
	}
}

func mcpExists(st *keep.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ok, err := st.Exists(ctx)
		if err != nil {
			return mcpError(fmt.Sprintf("existence check failed: %v", err)), nil
		}
		if ok {
			return mcpText("true"), nil
		}
		return mcpText("false"), nil
	}
}

func mcpRead(st *keep.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := st.Read(ctx)
		if err != nil {
			return mcpError(fmt.Sprintf("read failed: %v", err)), nil
		}
		return mcpText(base64.StdEncoding.EncodeToString(data)), nil
	}
}

func mcpWrite(st *keep.Store) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := req.RequireString("content")
		if err != nil {
			return mcpError("content is required"), nil
		}
		data, err := base64.StdEncoding.DecodeString(content)
		if err != nil {
			return mcpError("content is not valid base64"), nil
		}
		if err := st.Write(ctx, data); err != nil {
			return mcpError(fmt.Sprintf("write failed: %v", err)), nil
		}
		return mcpText(fmt.Sprintf("wrote %d bytes", len(data))), nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
