// Package lifecycle holds timing shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart and OnStop hooks.
const DefaultTimeout = 15 * time.Second
