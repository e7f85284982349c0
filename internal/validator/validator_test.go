package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Gender          string `json:"gender" validate:"omitempty,oneof=male female other"`
	City            string `json:"city" validate:"omitempty,max=20"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:           "jamie@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Gender:          "other",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:           "not-an-email",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email", "errors are keyed by json tag, not Go field name")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_PasswordMismatchMessage(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:           "jamie@example.com",
		Password:        "secret123",
		ConfirmPassword: "different",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Passwords do not match", vErr.Errors["confirm_password"])
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:           "",
		Password:        "123",
		ConfirmPassword: "123",
		Gender:          "unknown",
		City:            "a city name that is far too long for the column",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["email"])
	assert.Equal(t, "Must be at least 6 characters long", vErr.Errors["password"])
	assert.Equal(t, "Must be one of: male, female, other", vErr.Errors["gender"])
	assert.Equal(t, "Must be at most 20", vErr.Errors["city"])
}
