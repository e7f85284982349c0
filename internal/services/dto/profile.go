package dto

// ProfileResponse is the full profile view for the dashboard and profile
// endpoints. ProfilePicture falls back to the configured default when the
// account never set one.
type ProfileResponse struct {
	UserID         string `json:"user"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name"`
	PhoneNumber    string `json:"phone_number"`
	ProfilePicture string `json:"profile_picture"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	Gender         string `json:"gender,omitempty"`
	AddressLine1   string `json:"address_line_1"`
	AddressLine2   string `json:"address_line_2"`
	City           string `json:"city"`
	State          string `json:"state"`
	Country        string `json:"country"`
}

// EditProfileRequest is the sparse profile update. Nil fields retain their
// previous values; first/last name flow through to the account row in the
// same transaction.
type EditProfileRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty"`
	LastName       *string `json:"last_name" validate:"omitempty"`
	DateOfBirth    *string `json:"date_of_birth" validate:"omitempty"` // YYYY-MM-DD
	Gender         *string `json:"gender" validate:"omitempty,oneof=male female other"`
	AddressLine1   *string `json:"address_line_1" validate:"omitempty,max=100"`
	AddressLine2   *string `json:"address_line_2" validate:"omitempty,max=100"`
	City           *string `json:"city" validate:"omitempty,max=20"`
	State          *string `json:"state" validate:"omitempty,max=20"`
	Country        *string `json:"country" validate:"omitempty,max=20"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,max=15"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,url"`
}
