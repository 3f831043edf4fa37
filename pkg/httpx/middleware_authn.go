package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/trialdesk/trialdesk/pkg/jwtx"
	"github.com/trialdesk/trialdesk/pkg/slogx"
)

// SessionVerifier validates a raw session token and returns its claims.
type SessionVerifier interface {
	Verify(raw string) (jwtx.SessionClaims, error)
}

// AuthnMiddleware verifies the Bearer session token and injects the
// claims into the request context.
func AuthnMiddleware(v SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				if errors.Is(err, jwtx.ErrTokenExpired) {
					writeBearerError(w, "token expired")
					return
				}
				log.Warn("session verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = contextWithSession(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithSession(ctx context.Context, c jwtx.SessionClaims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	return context.WithValue(ctx, CtxKeyClaims, c)
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteDetail(w, http.StatusUnauthorized, desc)
}
