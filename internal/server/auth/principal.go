package auth

import "context"

// Principal is the identity bound to a request after successful token
// validation. A request without a principal is anonymous; downstream
// handlers decide whether that is acceptable.
type Principal struct {
	UserID int64
}

type ctxKey string

const principalKey ctxKey = "principal"

// WithPrincipal binds a principal to the context. The binding is write-once
// per request: if a principal is already present, the context is returned
// unchanged.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	if _, ok := FromContext(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the principal bound to the context, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
