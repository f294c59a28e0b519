// Package timeouts defines shared timeout constants for the web process.
package timeouts

import "time"

// BackendRequest caps a single call to the offers backend, including
// document export.
const BackendRequest = 30 * time.Second

// HealthProbe caps the storage ping behind the health endpoint.
const HealthProbe = time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
