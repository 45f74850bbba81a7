package provider

import (
	"context"
	"errors"
	"sync"

	"github.com/notifyhub/sms-relay/internal/domain"
)

// MockProvider is a hand-written, in-memory Provider used in unit tests.
// It records every call so tests can assert on outbound traffic.
type MockProvider struct {
	mu    sync.Mutex
	calls []MockCall

	// Response and Err are returned from every Send call.
	Response *Response
	Err      error
}

// ErrNoMockResponse is returned when neither Response nor Err is set.
var ErrNoMockResponse = errors.New("mock provider: no response configured")

// MockCall is one recorded Send invocation.
type MockCall struct {
	Credential string
	Message    domain.OutboundMessage
}

func NewMockProvider(resp *Response) *MockProvider {
	return &MockProvider{Response: resp}
}

func (m *MockProvider) Send(_ context.Context, credential string, msg domain.OutboundMessage) (*Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Credential: credential, Message: msg})
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Response == nil {
		return nil, ErrNoMockResponse
	}
	body := make(map[string]any, len(m.Response.Body))
	for k, v := range m.Response.Body {
		body[k] = v
	}
	return &Response{StatusCode: m.Response.StatusCode, Body: body}, nil
}

// Calls returns a copy of the recorded calls.
func (m *MockProvider) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

var _ Provider = (*MockProvider)(nil)
