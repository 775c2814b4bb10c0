package services_test

import (
	"context"
	"testing"

	"threads-cli/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithDraftID(ctx, 42)
	ctx = services.WithCommand(ctx, "send-draft")
	ctx = services.WithRequestID(ctx, "req-123")

	if id, ok := services.DraftIDFromContext(ctx); !ok || id != 42 {
		t.Fatalf("unexpected draft id: %v %v", id, ok)
	}
	if name, ok := services.CommandFromContext(ctx); !ok || name != "send-draft" {
		t.Fatalf("unexpected command: %v %v", name, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithCommand(ctx, "")
	ctx = services.WithRequestID(ctx, "")
	if _, ok := services.CommandFromContext(ctx); ok {
		t.Fatal("expected no command value")
	}
	if _, ok := services.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id value")
	}
	if _, ok := services.DraftIDFromContext(ctx); ok {
		t.Fatal("expected no draft id value")
	}
}
