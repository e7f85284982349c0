package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	assert.Equal(t, "Jamie Doe", (&User{FirstName: "Jamie", LastName: "Doe"}).FullName())
	assert.Equal(t, "Jamie", (&User{FirstName: "Jamie"}).FullName())
	assert.Equal(t, "Doe", (&User{LastName: "Doe"}).FullName())
	assert.Equal(t, "", (&User{}).FullName())
}

func TestVerificationToken_Expiry(t *testing.T) {
	token := NewVerificationToken("user-1")
	token.CreatedAt = time.Now()

	assert.False(t, token.IsExpired(token.CreatedAt.Add(23*time.Hour)))
	assert.True(t, token.IsExpired(token.CreatedAt.Add(25*time.Hour)))
}

func TestVerificationToken_Regenerate(t *testing.T) {
	token := NewVerificationToken("user-1")
	token.CreatedAt = time.Now().Add(-48 * time.Hour)
	old := token.Token

	now := time.Now()
	token.Regenerate(now)

	assert.NotEqual(t, old, token.Token)
	assert.Equal(t, now, token.CreatedAt)
	assert.False(t, token.IsExpired(now.Add(time.Hour)), "regeneration restarts the window")
}
