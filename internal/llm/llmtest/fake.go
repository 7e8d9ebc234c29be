// Package llmtest provides an in-memory llm.Client for tests.
package llmtest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jonathan/resume-tailor/internal/llm"
)

// ErrNoResponse is returned when a FakeClient has no response queued.
var ErrNoResponse = errors.New("llmtest: no response queued")

// Response is one scripted reply.
type Response struct {
	Text string
	Err  error
}

// Call records one GenerateObject invocation.
type Call struct {
	Prompt string
	Schema *llm.Schema
	Tier   llm.ModelTier
}

// FakeClient replays scripted responses in order and records every call.
type FakeClient struct {
	mu        sync.Mutex
	responses []Response
	calls     []Call
	closed    bool
}

// New returns a FakeClient that replies with the given responses in order.
func New(responses ...Response) *FakeClient {
	return &FakeClient{responses: responses}
}

// Reply is shorthand for a successful response.
func Reply(text string) Response {
	return Response{Text: text}
}

// Fail is shorthand for a failed response.
func Fail(err error) Response {
	return Response{Err: err}
}

// JSON marshals v as a successful response.
func JSON(v any) Response {
	data, err := json.Marshal(v)
	if err != nil {
		return Response{Err: fmt.Errorf("llmtest: %w", err)}
	}
	return Response{Text: string(data)}
}

// GenerateObject implements llm.Client.
func (f *FakeClient) GenerateObject(_ context.Context, prompt string, schema *llm.Schema, tier llm.ModelTier) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Prompt: prompt, Schema: schema, Tier: tier})
	if len(f.responses) == 0 {
		return "", ErrNoResponse
	}
	r := f.responses[0]
	f.responses = f.responses[1:]
	return r.Text, r.Err
}

// GetModel implements llm.Client.
func (f *FakeClient) GetModel(tier llm.ModelTier) string {
	return "fake-" + string(tier)
}

// Close implements llm.Client.
func (f *FakeClient) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

// Calls returns a copy of the recorded calls.
func (f *FakeClient) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Closed reports whether Close was called.
func (f *FakeClient) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
