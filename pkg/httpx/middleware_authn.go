package httpx

import (
	"net/http"
	"strings"

	"github.com/driftboard/driftboard/pkg/jwtx"
	"github.com/driftboard/driftboard/pkg/slogx"
)

// TokenCookie is the cookie the service sets alongside the JSON token
// response. The guard accepts either the Authorization header or this
// cookie; a Bearer header wins when both are present.
const TokenCookie = "driftboard_token"

// BearerToken extracts the bearer credential from a request. It reports
// false when no credential is present at all. An Authorization header
// with a non-Bearer scheme is ignored so the cookie still counts.
func BearerToken(r *http.Request) (string, bool) {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer")), true
	}

	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value, true
	}

	return "", false
}

// RequireAuth is the request guard for endpoints that need an identity:
// extract the bearer credential, verify it, attach the claims to the
// request context. A missing credential is "not authenticated" (400); a
// credential that fails verification is "unauthorized" (401).
func RequireAuth(codec jwtx.Codec) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				WriteError(w, http.StatusBadRequest, "not_authenticated", "missing bearer token")
				return
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}

// RequireAnon guards signup-style endpoints that must reject callers who
// are already authenticated. Only a credential that actually verifies
// counts; junk tokens are treated as absent.
func RequireAnon(codec jwtx.Codec) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw, ok := BearerToken(r); ok {
				if _, err := codec.Verify(raw); err == nil {
					WriteError(w, http.StatusConflict, "already_authenticated", "sign out first")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-style error response for bearer auth failures.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "invalid_token", desc)
}
