package constants

import "time"

// Context keys
const (
	ContextKeyUserID    = "userID"
	ContextKeyRequestID = "requestID"
)

// Authentication
const (
	AuthCookieName    = "token"
	MinPasswordLength = 6
	TokenLifetime     = 7 * 24 * time.Hour
)

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Statistics
const (
	MonthlyStatsWindow = 12
)
