package ports

import (
	"context"
	"net/http"
)

type Authenticator interface {
	WithAuthChi(handler http.Handler) http.Handler
	Verify(request *http.Request) (Principal, error)
	Supports(request *http.Request) bool
}

type principalCtxKey struct{}

func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(Principal)
	return p, ok
}
