// Package tools is the closed catalogue of tools the server exposes and the
// router that dispatches calls to them.
//
// Each tool is a table entry pairing a JSON schema with a handler. Router.Call
// validates the arguments against the schema, decodes them into the handler's
// input struct (pre-filled with defaults) and turns whatever comes back into a
// Result:
//
//   - a payload on success
//   - {"error", "hint"} when a lookup finds nothing
//   - {"error"} for unknown tools, invalid arguments, handler errors and panics
//
// Call never panics and never returns a Go error; failure is part of the
// payload so that a client always receives a well-formed tool result.
package tools
