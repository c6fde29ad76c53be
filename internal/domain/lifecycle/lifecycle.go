// Package lifecycle defines timeouts shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart/OnStop work such as pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
