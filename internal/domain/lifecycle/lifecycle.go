// Package lifecycle holds timeouts shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook so a stuck dependency cannot hang shutdown.
const DefaultTimeout = 10 * time.Second
