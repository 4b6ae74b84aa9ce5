package auth

import "context"

type ctxKey string

const principalKey ctxKey = "principal"

// Principal is the identity resolved from a verified bearer token. It is
// attached to the request context by the authorization middleware; handlers
// must not trust any other source for the caller's identity.
type Principal struct {
	UserID string
	Email  string
}

// NewContext returns a copy of ctx carrying the principal.
func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext extracts the principal attached by the middleware.
// ok is false on unprotected paths where no verification ran.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
