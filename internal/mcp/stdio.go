package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
)

// maxMessageSize bounds a single JSON-RPC line.
const maxMessageSize = 10 << 20

// rpcEnvelope is the part of an incoming message needed to route it. The
// arguments are left out so their shape never decides how a call is routed.
type rpcEnvelope struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method"`
	Params struct {
		Name string `json:"name"`
	} `json:"params"`
}

// rpcResponse is a JSON-RPC 2.0 success response.
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result"`
}

// Serve runs the line-delimited JSON-RPC loop until in reaches EOF or ctx is
// cancelled. Responses are written to out one per line.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("MCP server listening on stdio", "tools", len(s.router.ListTools()))

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
	w := bufio.NewWriter(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		response := s.handleLine(ctx, line)
		if response == nil {
			continue
		}
		if err := writeMessage(w, response); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read request: %w", err)
	}
	s.logger.Info("MCP client closed stdin, shutting down")
	return nil
}

// handleLine returns the response for one message, or nil for notifications.
func (s *Server) handleLine(ctx context.Context, line []byte) any {
	var env rpcEnvelope
	if err := json.Unmarshal(line, &env); err == nil &&
		env.Method == string(mcp.MethodToolsCall) &&
		len(env.ID) > 0 &&
		!s.router.Has(env.Params.Name) {
		s.logger.Warn("Call to unknown tool", "name", env.Params.Name)
		res := s.router.Call(ctx, env.Params.Name, nil)
		return rpcResponse{
			JSONRPC: mcp.JSONRPC_VERSION,
			ID:      env.ID,
			Result:  toCallToolResult(res),
		}
	}

	// HandleMessage copes with malformed JSON itself and answers with a
	// parse error.
	msg := make(json.RawMessage, len(line))
	copy(msg, line)
	return s.mcpServer.HandleMessage(ctx, msg)
}

func writeMessage(w *bufio.Writer, msg any) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return w.Flush()
}
