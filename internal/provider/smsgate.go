package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/notifyhub/sms-relay/internal/domain"
)

const messagesPath = "/3rdparty/v1/messages"

// SMSGateProvider relays messages to the SMS gateway 3rd-party API.
// The base URL is injected from config so tests can point to a local mock.
type SMSGateProvider struct {
	endpoint   string
	simNumber  int
	httpClient *http.Client
}

// NewSMSGateProvider builds a provider for baseURL. A zero timeout leaves the
// HTTP client without a deadline of its own.
func NewSMSGateProvider(baseURL string, simNumber int, timeout time.Duration) *SMSGateProvider {
	return &SMSGateProvider{
		endpoint:  strings.TrimRight(baseURL, "/") + messagesPath,
		simNumber: simNumber,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send makes a single POST attempt. Any status is returned to the caller as
// long as the body decodes as a JSON object.
func (p *SMSGateProvider) Send(ctx context.Context, credential string, msg domain.OutboundMessage) (*Response, error) {
	body, err := json.Marshal(SendRequest{
		TextMessage:  TextMessage{Text: msg.Text},
		PhoneNumbers: msg.PhoneNumbers,
		SimNumber:    p.simNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", BasicAuthorization(credential))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response (status %d): %w", resp.StatusCode, err)
	}

	// The whole body must be one JSON object; trailing bytes are malformed.
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: payload}, nil
}

// BasicAuthorization encodes an opaque "user:password" credential as an
// HTTP Basic Authorization header value.
func BasicAuthorization(credential string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credential))
}

// compile-time check that SMSGateProvider implements Provider
var _ Provider = (*SMSGateProvider)(nil)
