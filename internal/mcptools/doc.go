// Package mcptools exposes the name-analysis service as MCP tools.
//
// Each tool follows the same shape:
// - A struct holding the service, injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Failures are reported as tool errors so the client can show them; Handle
// only returns a Go error when the request itself cannot be processed.
package mcptools
