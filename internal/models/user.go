package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticatable account: email is the login identifier, the
// password is stored only as a bcrypt hash, and IsActive stays false until
// email verification succeeds (or an administrator forces it).
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsActive     bool   `gorm:"default:false" json:"is_active"`
	IsStaff      bool   `gorm:"default:false" json:"is_staff"`

	// Relations
	Profile           *Profile                `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	VerificationToken *EmailVerificationToken `gorm:"foreignKey:UserID" json:"-"`
	Items             []Item                  `gorm:"foreignKey:OwnerID" json:"-"`
	CartItems         []CartItem              `gorm:"foreignKey:UserID" json:"-"`
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// EmailVerificationToken is the single pending-verification token of an
// account. Valid for TokenValidity from creation; expiry is checked at
// use-time, never by a background sweep. Consumed (deleted) on success.
type EmailVerificationToken struct {
	BaseModel
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	Token  string `gorm:"type:uuid;uniqueIndex;not null" json:"token"`
}

// TokenValidity is how long a verification token is accepted after creation.
const TokenValidity = 24 * time.Hour

// NewVerificationToken mints a fresh token for the user.
func NewVerificationToken(userID string) *EmailVerificationToken {
	return &EmailVerificationToken{
		UserID: userID,
		Token:  uuid.NewString(),
	}
}

// IsExpired reports whether the token is past its validity window at the
// given instant.
func (t *EmailVerificationToken) IsExpired(now time.Time) bool {
	return now.Sub(t.CreatedAt) > TokenValidity
}

// Regenerate replaces the token value and restarts the validity window.
func (t *EmailVerificationToken) Regenerate(now time.Time) {
	t.Token = uuid.NewString()
	t.CreatedAt = now
}
