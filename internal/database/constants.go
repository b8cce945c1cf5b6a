package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DefaultMaxConnections bounds the pool for a read-mostly analytics workload
	DefaultMaxConnections = 10

	// DefaultMaxConnIdleTime is how long an idle connection is kept before closing
	DefaultMaxConnIdleTime = 5 * time.Minute

	// DefaultMaxConnLifetime caps the total lifetime of a pooled connection
	DefaultMaxConnLifetime = 30 * time.Minute

	// DefaultPingTimeout bounds the startup connectivity check
	DefaultPingTimeout = 5 * time.Second
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgEntryStoreConnected = "Connected to the entry store"
)
