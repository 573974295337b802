// Package pipeline implements the core orchestration layer of PPDU.
//
// The Pipeline wires the five stages — context store, risk scorer, decision
// policy, consent gate and action dispatcher — into a strict chain and owns
// the concurrency model around them:
//
//   - Each context update triggers exactly one pass through the downstream
//     stages, driven by an explicit call into the store (no pub/sub).
//   - Updates for one subject are processed strictly in arrival order by a
//     single worker goroutine over a bounded queue; a pass completes (or
//     fails) before the next update for that subject begins.
//   - Distinct subjects run concurrently; the only shared state is the
//     per-key-synchronized context and consent stores.
//   - A recover boundary per pass contains panics: a failed pass is logged
//     and abandoned, the merged snapshot stays valid, and nothing propagates
//     to other subjects or to the ingestion caller.
//
// See pipeline.go for the operational implementation details.
package pipeline
