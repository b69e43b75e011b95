package auth

import "context"

// Identity is the authenticated caller attached to a request by the
// authentication middleware. Only the fields resolvers actually need are
// carried: the user ID for owner-scoped queries and the email for display.
type Identity struct {
	ID    uint64
	Email string
}

type ctxKey int

const identityKey ctxKey = 0

// WithIdentity returns a context carrying the caller's identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the caller's identity from the context. ok is false
// for unauthenticated requests.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
