package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/notifyhub/sms-relay/internal/provider"
)

func TestMockProvider_NoResponseConfigured(t *testing.T) {
	m := provider.NewMockProvider(nil)

	resp, err := m.Send(context.Background(), "relay:s3cret", msg)
	if !errors.Is(err, provider.ErrNoMockResponse) {
		t.Fatalf("expected ErrNoMockResponse, got %v", err)
	}
	if resp != nil {
		t.Fatalf("expected nil response, got %+v", resp)
	}
	if n := len(m.Calls()); n != 1 {
		t.Fatalf("expected the call to be recorded, got %d", n)
	}
}

func TestMockProvider_ResponseBodyIsCopied(t *testing.T) {
	m := provider.NewMockProvider(&provider.Response{StatusCode: 200, Body: map[string]any{"id": "m1"}})

	resp, err := m.Send(context.Background(), "relay:s3cret", msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body["otp"] = "123456"

	if _, ok := m.Response.Body["otp"]; ok {
		t.Fatal("mutating a returned body must not touch the canned response")
	}
}
