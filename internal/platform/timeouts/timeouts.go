// Package timeouts holds the HTTP server durations shared by the sheet
// binaries.
package timeouts

import "time"

// ReadHeader limits how long the server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long in-flight requests get after the context ends.
const Shutdown = 5 * time.Second

// Telemetry limits how long pending spans get to flush on exit.
const Telemetry = 5 * time.Second
