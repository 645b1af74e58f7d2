package tools

import (
	"encoding/json"
	"fmt"
)

// ErrorPayload is the body of every failed call.
type ErrorPayload struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// Result is the outcome of Router.Call.
type Result struct {
	Payload any
	IsError bool
}

func errorResult(format string, args ...any) Result {
	return Result{Payload: ErrorPayload{Error: fmt.Sprintf(format, args...)}, IsError: true}
}

// Text renders the payload as indented JSON, the single text block returned
// to clients.
func (r Result) Text() string {
	b, err := json.MarshalIndent(r.Payload, "", "  ")
	if err != nil {
		b, _ = json.Marshal(ErrorPayload{Error: fmt.Sprintf("failed to encode result: %v", err)})
	}
	return string(b)
}

// NotFoundError is returned by handlers whose lookup found nothing. Hint
// points the caller at the tool that lists valid keys.
type NotFoundError struct {
	Kind string
	Key  string
	Hint string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}
