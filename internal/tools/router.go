package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dsmcp/internal/logging"
	"dsmcp/internal/repopaths"
	"dsmcp/internal/search"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/google/uuid"
)

// Descriptor is the public description of one tool.
type Descriptor struct {
	Name        Name               `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

type tool struct {
	toolSpec
	resolved *jsonschema.Resolved
}

// Router dispatches tool calls against one repository.
type Router struct {
	handlers *handlers
	logger   *logging.AppLogger
	tools    map[Name]*tool
	order    []Name
}

// Option configures a Router.
type Option func(*Router)

// WithSearchOptions forwards opts to every search call.
func WithSearchOptions(opts ...search.Option) Option {
	return func(r *Router) {
		r.handlers.searchOpts = append(r.handlers.searchOpts, opts...)
	}
}

// NewRouter builds the router and resolves every tool schema. A nil logger
// uses logging.GetDefault.
func NewRouter(paths repopaths.RepoPaths, logger *logging.AppLogger, opts ...Option) (*Router, error) {
	if logger == nil {
		logger = logging.GetDefault()
	}

	r := &Router{
		handlers: &handlers{paths: paths},
		logger:   logger,
		tools:    make(map[Name]*tool),
	}
	for _, spec := range catalogue() {
		resolved, err := spec.schema.Resolve(nil)
		if err != nil {
			return nil, fmt.Errorf("invalid schema for tool %s: %w", spec.name, err)
		}
		r.tools[spec.name] = &tool{toolSpec: spec, resolved: resolved}
		r.order = append(r.order, spec.name)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Paths returns the repository the router reads from.
func (r *Router) Paths() repopaths.RepoPaths {
	return r.handlers.paths
}

// ListTools returns the catalogue in a fixed order. It never touches the
// filesystem.
func (r *Router) ListTools() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		out = append(out, Descriptor{Name: t.name, Description: t.description, InputSchema: t.schema})
	}
	return out
}

// Has reports whether name is in the catalogue.
func (r *Router) Has(name string) bool {
	_, ok := r.tools[Name(name)]
	return ok
}

// Call runs the named tool. Every failure, including a panic in the handler,
// comes back as an error payload.
func (r *Router) Call(ctx context.Context, name string, args map[string]any) (result Result) {
	start := time.Now()
	logger := r.logger.With("request_id", uuid.NewString(), "tool", name)
	logger.DebugObject("arguments", args)

	defer func() {
		if p := recover(); p != nil {
			logger.Error("Tool handler panicked", "panic", p)
			result = errorResult("%v", p)
		}
		logger.LogToolCall(name, start, result.IsError)
	}()

	if err := ctx.Err(); err != nil {
		return errorResult("%v", err)
	}

	t, ok := r.tools[Name(name)]
	if !ok {
		return errorResult("Unknown tool: %s", name)
	}

	input, instance, err := normalize(args)
	if err != nil {
		return errorResult("Invalid arguments for %s: %v", name, err)
	}
	if err := t.resolved.Validate(instance); err != nil {
		return errorResult("Invalid arguments for %s: %v", name, err)
	}

	payload, err := t.handle(r.handlers, input)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return Result{Payload: ErrorPayload{Error: nf.Error(), Hint: nf.Hint}, IsError: true}
		}
		return errorResult("%v", err)
	}
	return Result{Payload: payload}
}

// normalize round-trips args through JSON so validation sees the same value
// shapes whether they came off the wire or from Go callers.
func normalize(args map[string]any) (json.RawMessage, map[string]any, error) {
	if args == nil {
		args = map[string]any{}
	}
	input, err := json.Marshal(args)
	if err != nil {
		return nil, nil, err
	}
	var instance map[string]any
	if err := json.Unmarshal(input, &instance); err != nil {
		return nil, nil, err
	}
	return input, instance, nil
}
