package tools

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultText(t *testing.T) {
	res := Result{Payload: map[string]int{"count": 2}}
	assert.JSONEq(t, `{"count":2}`, res.Text())

	res = errorResult("Unknown tool: %s", "x")
	assert.True(t, res.IsError)
	assert.JSONEq(t, `{"error":"Unknown tool: x"}`, res.Text())

	res = Result{Payload: func() {}}
	assert.Contains(t, res.Text(), "failed to encode result")
}

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &NotFoundError{Kind: "Story", Key: "Card", Hint: storyHint})

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "Story not found: Card", nf.Error())
}
