package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := hashPassword("Secret123")
	require.NoError(t, err)

	assert.True(t, passwordMatches("Secret123", digest))
	assert.False(t, passwordMatches("secret123", digest))
	assert.False(t, passwordMatches("Secret1234", digest))
	assert.False(t, passwordMatches("", digest))
}

func TestPasswordMatchesMalformedDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, passwordMatches("Secret123", []byte("not-a-bcrypt-digest")))
	assert.False(t, passwordMatches("Secret123", nil))
}
