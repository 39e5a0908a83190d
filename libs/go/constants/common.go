package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name attached to structured logs
	ServiceName = "sails-api"

	// Countries whose nexus rules are evaluated
	USCountryCode = "US"
)

// Order statuses reported by the order-import subsystem
const (
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)

// Context keys set by the auth middleware
const (
	UserIDContextKey = "userID"
	EmailContextKey  = "userEmail"
)

// HTTP headers
const (
	CorrelationIDHeader = "X-Correlation-ID"
)
