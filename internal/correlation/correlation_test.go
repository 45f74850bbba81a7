package correlation_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/notifyhub/sms-relay/internal/correlation"
)

func TestID_RoundTrip(t *testing.T) {
	ctx := correlation.WithID(context.Background(), "abc-123")
	if got := correlation.ID(ctx); got != "abc-123" {
		t.Fatalf("expected abc-123, got %q", got)
	}
	if got := correlation.ID(context.Background()); got != "" {
		t.Fatalf("expected empty ID, got %q", got)
	}
}

func TestLogger_TagsOnlyWhenPresent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	correlation.Logger(correlation.WithID(context.Background(), "abc-123"), base).Info("tagged")
	correlation.Logger(context.Background(), base).Info("untagged")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["correlation_id"]; got != "abc-123" {
		t.Fatalf("expected correlation_id on tagged entry, got %v", got)
	}
	if _, ok := entries[1].ContextMap()["correlation_id"]; ok {
		t.Fatal("untagged entry must not carry correlation_id")
	}
}
