package configs

import "strings"

// Transports supported by the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// MCP configures how tools are served.
type MCP struct {
	// Transport is "stdio" (default) or "http". With "http" the streamable
	// endpoint is mounted on the HTTP server at /mcp.
	Transport string `env:"TRANSPORT" envDefault:"stdio"`
}

// NormalizedTransport returns the lower-cased transport. Unknown values
// fall back to stdio.
func (c MCP) NormalizedTransport() string {
	switch strings.ToLower(c.Transport) {
	case TransportHTTP:
		return TransportHTTP
	default:
		return TransportStdio
	}
}
