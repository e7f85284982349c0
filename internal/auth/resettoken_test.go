package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetToken_RoundTrip(t *testing.T) {
	t.Parallel()

	g := NewResetTokenGenerator("test-secret", 24*time.Hour)

	token := g.MakeToken("user-1", "$2a$10$hash")
	assert.True(t, g.CheckToken("user-1", "$2a$10$hash", token))
}

func TestResetToken_InvalidatedByPasswordChange(t *testing.T) {
	t.Parallel()

	g := NewResetTokenGenerator("test-secret", 24*time.Hour)

	token := g.MakeToken("user-1", "$2a$10$old-hash")

	// Once the stored hash changes, every previously issued token dies.
	assert.False(t, g.CheckToken("user-1", "$2a$10$new-hash", token))
}

func TestResetToken_BoundToUser(t *testing.T) {
	t.Parallel()

	g := NewResetTokenGenerator("test-secret", 24*time.Hour)

	token := g.MakeToken("user-1", "$2a$10$hash")
	assert.False(t, g.CheckToken("user-2", "$2a$10$hash", token))
}

func TestResetToken_ExpiresAfterWindow(t *testing.T) {
	t.Parallel()

	g := NewResetTokenGenerator("test-secret", 24*time.Hour)

	issued := time.Now()
	token := g.makeTokenAt("user-1", "hash", issued)

	assert.True(t, g.checkTokenAt("user-1", "hash", token, issued.Add(23*time.Hour)))
	assert.False(t, g.checkTokenAt("user-1", "hash", token, issued.Add(25*time.Hour)))
}

func TestResetToken_RejectsMalformed(t *testing.T) {
	t.Parallel()

	g := NewResetTokenGenerator("test-secret", 24*time.Hour)

	assert.False(t, g.CheckToken("user-1", "hash", ""))
	assert.False(t, g.CheckToken("user-1", "hash", "no-dash-but-not-hmac"))
	assert.False(t, g.CheckToken("user-1", "hash", "nodash"))
	assert.False(t, g.CheckToken("user-1", "hash", "!!!-deadbeef"))
}

func TestResetToken_RejectsFutureTimestamp(t *testing.T) {
	t.Parallel()

	g := NewResetTokenGenerator("test-secret", 24*time.Hour)

	issued := time.Now().Add(time.Hour)
	token := g.makeTokenAt("user-1", "hash", issued)

	assert.False(t, g.checkTokenAt("user-1", "hash", token, time.Now()))
}

func TestEncodeDecodeUID(t *testing.T) {
	t.Parallel()

	encoded := EncodeUID("3f9d2b1c-0000-4000-8000-deadbeef0001")
	decoded, err := DecodeUID(encoded)
	require.NoError(t, err)
	assert.Equal(t, "3f9d2b1c-0000-4000-8000-deadbeef0001", decoded)

	_, err = DecodeUID("%%% not base64 %%%")
	assert.Error(t, err)
}
