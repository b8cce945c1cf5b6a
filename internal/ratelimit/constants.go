package ratelimit

import "time"

const (
	// MaxTrackedClients bounds the number of concurrently tracked client keys
	MaxTrackedClients = 10000

	// BucketTTL is how long an idle client's bucket is retained
	BucketTTL = 10 * time.Minute
)
