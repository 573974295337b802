// Package logging provides a minimal logging interface and adapters for the
// safety pipeline.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the pipeline and its services use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - SafetyLogger with contextual helpers (component, subject, pipeline
//     pass) and domain helpers for risk evaluations, consent verdicts and
//     dispatches
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	agent, err := ppdu.New(func(o *ppdu.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
