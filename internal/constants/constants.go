package constants

import "time"

const (
	// ContextKeyUserID is the gin context key holding the authenticated user ID.
	ContextKeyUserID = "user_id"

	// MinPasswordLength is the minimum accepted password length at registration.
	MinPasswordLength = 6

	// CustomerSearchLimit bounds customer list/search results.
	CustomerSearchLimit = 50

	// TokenTTL is the bearer token lifetime.
	TokenTTL = 7 * 24 * time.Hour
)
