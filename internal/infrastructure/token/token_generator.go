// Package token generates opaque single-use tokens that are stored only as a hash.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// PrefixPasswordReset marks tokens mailed for password resets
const PrefixPasswordReset = "rst_"

const entropyBytes = 32

// TokenGenerator hands out URL-safe tokens. Only Hash output is meant to be persisted.
type TokenGenerator interface {
	Generate(prefix string) (plainToken string, hash string, err error)
	Hash(plainToken string) string
	Verify(plainToken, hash string) bool
}

type sha256Tokens struct{}

func NewTokenGenerator() TokenGenerator {
	return sha256Tokens{}
}

func (g sha256Tokens) Generate(prefix string) (string, string, error) {
	buf := make([]byte, entropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to read token entropy: %w", err)
	}
	plain := prefix + base64.RawURLEncoding.EncodeToString(buf)
	return plain, g.Hash(plain), nil
}

func (sha256Tokens) Hash(plainToken string) string {
	sum := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(sum[:])
}

func (g sha256Tokens) Verify(plainToken, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(g.Hash(plainToken)), []byte(hash)) == 1
}
