// Package core provides the foundational domain types and stage contracts
// used by the PPDU safety pipeline. It defines the core abstractions for:
//
//   - Context snapshots (the latest merged state per monitored subject)
//   - Risk evaluations (immutable scoring results with contributing factors)
//   - Decisions (candidate interventions produced by the decision policy)
//   - Consent verdicts (authorization results from the consent gate)
//   - Pluggable stores for context and consent state
//   - External channel contracts for notification, messaging and authority calls
//
// The package intentionally keeps implementation concerns (storage backends,
// pipeline orchestration, channel transports) out of scope, exposing small
// interfaces to enable custom backends and extensions.
package core
