package auth

import (
	"context"
	"testing"
)

func TestIdentityRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithIdentity(context.Background(), Identity{ID: 9, Email: "ann@x.com"})

	id, ok := IdentityFrom(ctx)
	if !ok {
		t.Fatalf("expected identity in context")
	}
	if id.ID != 9 || id.Email != "ann@x.com" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestIdentityFrom_Empty(t *testing.T) {
	t.Parallel()

	if _, ok := IdentityFrom(context.Background()); ok {
		t.Fatalf("expected no identity in a bare context")
	}
}
