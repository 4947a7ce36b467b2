package auth_test

import (
	"encoding/hex"
	"testing"

	"github.com/vijitdua/TaskUp/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTokenIssuer_Issue(t *testing.T) {
	issuer := auth.NewRandomTokenIssuer()

	token, err := issuer.Issue()
	require.NoError(t, err)

	assert.Len(t, token, 96, "48 random bytes hex-encode to 96 chars")
	_, err = hex.DecodeString(token)
	assert.NoError(t, err, "token must be valid hex")
}

func TestRandomTokenIssuer_IssueDistinct(t *testing.T) {
	issuer := auth.NewRandomTokenIssuer()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := issuer.Issue()
		require.NoError(t, err)
		assert.False(t, seen[token], "tokens must not repeat")
		seen[token] = true
	}
}
