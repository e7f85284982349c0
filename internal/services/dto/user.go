package dto

// UpdateUserRequest is the sparse account update: nil fields keep their
// previous values. The set of mutable fields is the explicit allow-list;
// nothing else on the account can be patched through this call.
type UpdateUserRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty"`
	LastName    *string `json:"last_name" validate:"omitempty"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=6"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty"` // YYYY-MM-DD
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female other"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" validate:"required"`
	NewPassword string `json:"new_password" binding:"required" validate:"required,min=6"`
}

// ProfileSummary is the nested profile view in UserResponse.
type ProfileSummary struct {
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

// UserResponse is the account + profile summary for GET /users/me.
type UserResponse struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Profile   ProfileSummary `json:"userprofile"`
}
