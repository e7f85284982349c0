package apperrors

import (
	"net/http"
)

// Predefined domain errors. Static errors live here as variables; anything
// that needs an underlying cause goes through the factories in errors.go.

// --- Accounts & Auth ---

// ErrEmailAlreadyExists - registration attempted with an email that already
// has an account. Surfaced as 400 to keep the public API shape the frontend
// expects (a conflict by nature, a bad request on the wire).
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this email already exists",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - unknown email or wrong password. The message is
// deliberately identical for both cases so the API does not leak which
// emails are registered.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusBadRequest,
)

// ErrUserNotVerified - credentials are correct but the email was never
// verified.
var ErrUserNotVerified = New(
	CodeNotVerified,
	"auth",
	"Please verify your email before logging in",
	http.StatusForbidden,
)

// ErrWeakPassword - password below the minimum length.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

// --- Tokens ---

// ErrTokenNotFound - no verification token matches; also returned when a
// consumed token is replayed.
var ErrTokenNotFound = New(
	CodeTokenNotFound,
	"auth",
	"Verification token not found",
	http.StatusBadRequest,
)

// ErrTokenExpired - verification token is older than its validity window.
// The row is kept; expiry is a use-time check.
var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusBadRequest,
)

// ErrInvalidToken - refresh or reset token failed signature, expiry or
// type checks.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

// --- Resources ---

// ErrNotResourceOwner - an authenticated user touched a resource owned by
// someone else.
var ErrNotResourceOwner = New(
	CodeForbidden,
	"authorization",
	"You do not have permission to access this resource",
	http.StatusForbidden,
)

// ErrCartItemExists - the item is already in the user's cart; the
// (user, item) pair is unique.
var ErrCartItemExists = New(
	CodeAlreadyExists,
	"cart",
	"Item is already in the cart",
	http.StatusBadRequest,
)

// ErrNotFound wraps a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrEmailDelivery wraps an outbound mail failure. Delivery is never
// silent: registration and reset requests fail when the mail does.
func ErrEmailDelivery(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "email", "Failed to send email", http.StatusInternalServerError)
}
