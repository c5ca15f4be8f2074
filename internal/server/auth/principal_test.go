package auth

import (
	"context"
	"testing"
)

func TestFromContext_Empty(t *testing.T) {
	t.Parallel()

	_, ok := FromContext(context.Background())
	if ok {
		t.Fatalf("expected no principal in empty context")
	}
}

func TestWithPrincipal_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithPrincipal(context.Background(), Principal{UserID: 5})

	p, ok := FromContext(ctx)
	if !ok {
		t.Fatalf("expected principal to be bound")
	}
	if p.UserID != 5 {
		t.Fatalf("userID mismatch: got %d want 5", p.UserID)
	}
}

func TestWithPrincipal_WriteOnce(t *testing.T) {
	t.Parallel()

	ctx := WithPrincipal(context.Background(), Principal{UserID: 5})
	ctx = WithPrincipal(ctx, Principal{UserID: 6})

	p, _ := FromContext(ctx)
	if p.UserID != 5 {
		t.Fatalf("second bind must not overwrite: got %d want 5", p.UserID)
	}
}
