package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy of a bearer token. 48 random bytes encode to a
// fixed 96-char hex string.
const tokenBytes = 48

// TokenIssuer generates the standing bearer token assigned to each account
// at signup.
type TokenIssuer interface {
	// Issue returns a new high-entropy token. It fails only when the secure
	// random source is unavailable, which is fatal to the signup.
	Issue() (string, error)
}

// RandomTokenIssuer implements TokenIssuer with crypto/rand.
type RandomTokenIssuer struct{}

// NewRandomTokenIssuer returns a RandomTokenIssuer.
func NewRandomTokenIssuer() *RandomTokenIssuer {
	return &RandomTokenIssuer{}
}

// Issue returns a 96-char hex token.
func (i *RandomTokenIssuer) Issue() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}
