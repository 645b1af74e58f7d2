// Package mcp exposes the tool router over the Model Context Protocol using
// mcp-go.
//
// # Implementation
//
// The package uses the mcp-go library (github.com/mark3labs/mcp-go). Every
// entry of the tools catalogue is registered on a server.MCPServer with its
// JSON schema and read-only annotations; the registered handler forwards the
// call arguments to tools.Router.Call and wraps the resulting payload in a
// single text content block.
//
// # Transport
//
// Serve reads line-delimited JSON-RPC 2.0 messages from stdin and writes one
// response line per request to stdout. A tools/call naming a tool outside the
// catalogue is answered in-band with the router's "Unknown tool" payload
// instead of the protocol error mcp-go would produce, so clients always get a
// tool result they can show to the model. Everything else is handed to
// MCPServer.HandleMessage.
//
// # Security
//
// All tools are read-only. Only files the indexers listed are ever read, via
// fileops.ReadIndexed; arguments name index entries, never paths.
//
// # Usage
//
// The server is normally started as a subprocess by an MCP client:
//
//	dsmcp serve
//
// It runs until stdin reaches EOF or the context is cancelled.
//
// # References
//
// - MCP Specification: https://modelcontextprotocol.io/specification
// - mcp-go Library: https://github.com/mark3labs/mcp-go
package mcp
