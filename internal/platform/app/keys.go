package app

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/trialdesk/trialdesk/pkg/jwtx"
)

// InitSessionSigner loads the Ed25519 session signing key from
// cfg.SessionKeyFile, generating and persisting a new one when the file
// does not exist. Rotating the key invalidates every outstanding session,
// which is acceptable for a 12h session TTL.
func InitSessionSigner(cfg Config, logger *slog.Logger) (*jwtx.Signer, error) {
	key, created, err := loadOrCreateKey(cfg.SessionKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session key: %w", err)
	}

	if created {
		logger.Info("generated new session signing key", "path", cfg.SessionKeyFile)
	} else {
		logger.Info("loaded session signing key", "path", cfg.SessionKeyFile)
	}

	return jwtx.NewSigner(cfg.Issuer, key, cfg.SessionTTL)
}

func loadOrCreateKey(path string) (ed25519.PrivateKey, bool, error) {
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		key, err := decodeKey(raw)
		return key, false, err

	case errors.Is(err, os.ErrNotExist):
		_, key, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, false, err
		}
		if err := writeKey(path, key); err != nil {
			return nil, false, err
		}
		return key, true, nil

	default:
		return nil, false, err
	}
}

func decodeKey(raw []byte) (ed25519.PrivateKey, error) {
	block, _ := pem.Decode(raw)
	if block == nil || block.Type != "PRIVATE KEY" {
		return nil, errors.New("session key file is not a PEM private key")
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("session key is not an ed25519 key")
	}
	return key, nil
}

func writeKey(path string, key ed25519.PrivateKey) error {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return err
	}

	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: der,
	})
	return os.WriteFile(path, pemBytes, 0o600)
}
