// Package id generates and validates the prefixed public references handed to clients.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the length of the random part of a reference
	DefaultLength = 12
)

// Prefixes for public references (Stripe-style)
const (
	PrefixAccount            = "acc"
	PrefixArtwork            = "art"
	PrefixGenre              = "gen"
	PrefixPersonalityProfile = "psn"
)

// Generate creates a random Base62 string of the given length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := range result {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// New creates a reference in the format "prefix_randomstring".
func New(prefix string) (string, error) {
	body, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + body, nil
}

// MustNew is New for contexts where entropy failure is unrecoverable.
func MustNew(prefix string) string {
	ref, err := New(prefix)
	if err != nil {
		panic(err)
	}
	return ref
}

// Validate checks that ref has the expected prefix and a well formed body.
func Validate(ref, expectedPrefix string) error {
	prefix, body, ok := strings.Cut(ref, "_")
	if !ok {
		return fmt.Errorf("invalid reference format: %q", ref)
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	if len(body) != DefaultLength {
		return fmt.Errorf("invalid reference length: %q", ref)
	}
	for i := 0; i < len(body); i++ {
		if !strings.ContainsRune(alphabet, rune(body[i])) {
			return fmt.Errorf("invalid reference character in %q", ref)
		}
	}
	return nil
}

// IsValid reports whether ref is a well formed reference with the expected prefix.
func IsValid(ref, expectedPrefix string) bool {
	return Validate(ref, expectedPrefix) == nil
}
