// Package timeouts centralizes the context deadlines handlers apply to
// database round trips. One place to tune them keeps the behavior
// consistent across features.
//
// Guidelines:
//   - Ping: health checks
//   - Short: single-document reads
//   - Medium: paginated lists, single-document writes
//   - Long: multi-step writes (read-check-update flows)
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for health checks and connectivity probes.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document lookups.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and simple writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for multi-step writes.
func Long() time.Duration { return long }
