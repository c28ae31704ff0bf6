package constants

// Context keys
const (
	ContextTokenData = "tokenData"
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Database tuning
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Defaults
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	DefaultTimeout    = 30 // seconds
)

// Capacity ledger
const (
	// Every event starts with this many seats, recorded as a
	// normal deposit transaction in the ledger.
	InitialEventCapacity = 100

	InitialCapacityDescription = "initial capacity"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
)

// Client user types. 1 is the administrator; 2 through 5 are regular
// client tiers (2 is the baseline).
const (
	ClientTypeAdmin   = 1
	ClientTypeRegular = 2
)
