// Package consent implements the single authorization choke point of the
// pipeline: no decision with RequiresConsent set may reach the dispatcher
// without an explicit affirmative consent record for the exact subject id.
//
// The Gate consumes the core.ConsentStore lookup boundary. An in-memory
// store suitable for tests and single-process deployments lives here; a
// durable SQLite backend lives in the sqlite sub-package. Only the wiring
// layer decides which implementation to instantiate.
package consent
