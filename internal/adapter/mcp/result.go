package mcpadapter

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult encodes v as the text content of a successful tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// errorResult returns a tool error whose text is {"error": message}.
func errorResult(err error) *mcp.CallToolResult {
	raw, _ := json.Marshal(map[string]string{"error": err.Error()})
	return mcp.NewToolResultError(string(raw))
}
