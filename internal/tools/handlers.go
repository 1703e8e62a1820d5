package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"gitmcp.dev/gitmcp/internal/gitops"
	"gitmcp.dev/gitmcp/internal/log"
)

// handle returns the tool handler for one operation. Arguments are
// bound into the operation's typed request. Every failure, whether from
// binding, validation, or git itself, comes back as a tool error result
// so the protocol session survives the failed call.
func handle(d *gitops.Dispatcher, op gitops.Op) server.ToolHandlerFunc {
	return func(ctx context.Context, call mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := gitops.NewRequest(op)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := call.BindArguments(req); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: invalid arguments: %v", op, err)), nil
		}

		log.FromContext(ctx).Debug("tool call", "op", string(op))

		out, err := d.Execute(ctx, req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}
