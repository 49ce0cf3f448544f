// Package lifecycle holds process-wide lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks, including graceful HTTP shutdown.
const DefaultTimeout = 15 * time.Second
