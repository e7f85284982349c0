package contextkeys

// Custom type to avoid collisions with other packages' context keys.
type contextKey string

const (
	// UserIDKey holds the authenticated user's ID in gin.Context.
	UserIDKey = contextKey("userID")

	// IsStaffKey holds the authenticated user's staff flag in gin.Context.
	IsStaffKey = contextKey("isStaff")
)
