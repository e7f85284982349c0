package dto

// RegisterRequest carries the registration payload: account fields plus the
// profile fields created with it. Validation mirrors the public API
// contract; confirm_password must equal password byte-for-byte.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required" validate:"required,email"`
	Password        string `json:"password" binding:"required" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" binding:"required" validate:"required"`
	LastName        string `json:"last_name" binding:"required" validate:"required"`

	// Profile fields
	DateOfBirth    string `json:"date_of_birth" validate:"required"` // YYYY-MM-DD
	Gender         string `json:"gender" validate:"required,oneof=male female other"`
	PhoneNumber    string `json:"phone_number" validate:"required,max=15"`
	AddressLine1   string `json:"address_line_1" validate:"omitempty,max=100"`
	AddressLine2   string `json:"address_line_2" validate:"omitempty,max=100"`
	City           string `json:"city" validate:"omitempty,max=20"`
	State          string `json:"state" validate:"omitempty,max=20"`
	Country        string `json:"country" validate:"omitempty,max=20"`
	ProfilePicture string `json:"profile_picture" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" binding:"required" validate:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type PasswordResetConfirm struct {
	NewPassword string `json:"new_password" binding:"required" validate:"required,min=6"`
}

// UserSummary is the minimal public account view returned on login.
type UserSummary struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginResponse is the stateless session credential pair plus the account
// summary.
type LoginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    UserSummary `json:"user"`
}
