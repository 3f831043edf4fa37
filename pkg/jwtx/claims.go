package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long issued sessions stay valid.
const DefaultSessionTTL = 12 * time.Hour

var (
	// ErrTokenInvalid reports a token that failed signature or structural
	// validation.
	ErrTokenInvalid = errors.New("jwtx: invalid token")
	// ErrTokenExpired reports a structurally valid but expired token.
	ErrTokenExpired = errors.New("jwtx: token expired")
)

// SessionClaims are the claims carried by a trialdesk session token.
//
// A session is always scoped to at most one tenant: TenantID and Role are
// empty only for platform administrators operating outside any tenant.
type SessionClaims struct {
	Email         string `json:"email"`
	TenantID      string `json:"tid,omitempty"`
	Role          string `json:"rol,omitempty"`
	PlatformAdmin bool   `json:"adm,omitempty"`

	jwt.RegisteredClaims
}

// UserID returns the subject claim, the user's ULID.
func (c SessionClaims) UserID() string { return c.Subject }

// ForUser builds the baseline claims for a user. Callers add the tenant
// scope before signing.
func ForUser(userID, email string) SessionClaims {
	return SessionClaims{
		Email:            email,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
	}
}
