package provider

import (
	"context"

	"github.com/notifyhub/sms-relay/internal/domain"
)

// TextMessage is the text part of the gateway message payload.
type TextMessage struct {
	Text string `json:"text"`
}

// SendRequest is the JSON body posted to the SMS gateway.
type SendRequest struct {
	TextMessage  TextMessage `json:"textMessage"`
	PhoneNumbers []string    `json:"phoneNumbers"`
	SimNumber    int         `json:"simNumber"`
}

// Response carries the gateway status code and its decoded JSON body,
// whatever the status.
type Response struct {
	StatusCode int
	Body       map[string]any
}

// Success reports whether the gateway answered with a 2xx status.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Provider abstracts delivery to the external SMS gateway.
// Mocking this interface in tests gives full control over gateway behaviour
// without making real HTTP calls.
type Provider interface {
	Send(ctx context.Context, credential string, msg domain.OutboundMessage) (*Response, error)
}
