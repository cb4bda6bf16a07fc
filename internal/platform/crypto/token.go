package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenGenerator defines the interface for minting session tokens. Tokens
// are opaque references: high-entropy, unguessable, never derived from user
// data and carrying no decodable information.
type TokenGenerator interface {
	New() (string, error)
}

// RandomTokenGenerator mints tokens from crypto/rand.
type RandomTokenGenerator struct{}

// NewRandomTokenGenerator creates a new RandomTokenGenerator.
func NewRandomTokenGenerator() *RandomTokenGenerator {
	return &RandomTokenGenerator{}
}

// New returns a fresh token with 256 bits of entropy, base64url-encoded.
func (g *RandomTokenGenerator) New() (string, error) {
	const size = 32 // 256 bits

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
