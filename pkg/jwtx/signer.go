package jwtx

import (
	"crypto/ed25519"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/trialdesk/trialdesk/pkg/idx"
)

// Signer mints and verifies Ed25519-signed session tokens.
type Signer struct {
	issuer  string
	ttl     time.Duration
	private ed25519.PrivateKey
	public  ed25519.PublicKey
}

// NewSigner builds a Signer from an Ed25519 private key. A zero ttl falls
// back to DefaultSessionTTL.
func NewSigner(issuer string, key ed25519.PrivateKey, ttl time.Duration) (*Signer, error) {
	if issuer == "" {
		return nil, errors.New("jwtx: issuer must not be empty")
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, errors.New("jwtx: invalid ed25519 private key")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &Signer{
		issuer:  issuer,
		ttl:     ttl,
		private: key,
		public:  key.Public().(ed25519.PublicKey),
	}, nil
}

// Sign issues a session token for the given claims. Registered claims
// (issuer, issued-at, expiry, jti) are filled in here; callers only set
// the subject and session-specific fields.
func (s *Signer) Sign(claims SessionClaims) (string, error) {
	now := time.Now()

	claims.Issuer = s.issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	claims.ID = idx.New().String()

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(s.private)
}

// Verify parses and validates a session token, returning its claims.
func (s *Signer) Verify(raw string) (SessionClaims, error) {
	var claims SessionClaims

	token, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
				return nil, ErrTokenInvalid
			}
			return s.public, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SessionClaims{}, ErrTokenExpired
		}
		return SessionClaims{}, ErrTokenInvalid
	}
	if !token.Valid {
		return SessionClaims{}, ErrTokenInvalid
	}

	return claims, nil
}

// TTL reports the configured session lifetime.
func (s *Signer) TTL() time.Duration { return s.ttl }
