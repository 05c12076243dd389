package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"question-lab/errors"
	"strings"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// Authenticator accepts a bearer JWT when a secret is configured, otherwise a static API key.
// With neither configured every request is let through.
type Authenticator struct {
	tokens *TokenManager
	apiKey string
}

func NewAuthenticator(jwtSecret, apiKey string) *Authenticator {
	a := &Authenticator{apiKey: apiKey}
	if jwtSecret != "" {
		a.tokens = NewTokenManager(jwtSecret)
	}
	return a
}

func (a *Authenticator) Enabled() bool {
	return a.tokens != nil || a.apiKey != ""
}

// Authenticate checks the raw Authorization and X-API-Key values and returns the enriched context.
func (a *Authenticator) Authenticate(ctx context.Context, authorization, apiKey string) (context.Context, error) {
	if a.tokens != nil {
		tokenStr, ok := strings.CutPrefix(authorization, "Bearer ")
		if !ok || tokenStr == "" {
			return ctx, fmt.Errorf("%w: authorization token is missing", errors.ErrUnauthorized)
		}
		claims, err := a.tokens.ValidateToken(tokenStr)
		if err != nil {
			return ctx, err
		}
		ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
		return context.WithValue(ctx, RolesKey, claims.Roles), nil
	}
	if a.apiKey != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(a.apiKey)) != 1 {
		return ctx, fmt.Errorf("%w: invalid api key", errors.ErrUnauthorized)
	}
	return ctx, nil
}

// Middleware protects every route but the public paths. Rejections are rendered by deny.
func (a *Authenticator) Middleware(deny func(w http.ResponseWriter, r *http.Request, err error), publicPaths ...string) func(http.Handler) http.Handler {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := public[r.URL.Path]; ok || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			ctx, err := a.Authenticate(r.Context(), r.Header.Get("Authorization"), r.Header.Get("X-API-Key"))
			if err != nil {
				deny(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user, empty for api key or anonymous calls.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}
