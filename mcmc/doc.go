// Package mcmc drives the negative-cycle-respecting edge-weight sampler
// spec §4 describes: repeatedly propose a new weight for a uniformly
// chosen edge, ask the configured oracle whether committing it would
// create a negative directed cycle, and on Accept commit the weight and
// repair the potential vector so the next proposal's oracle query is still
// answered against a feasible reduced-cost system.
//
// Run owns the one piece of mutable state the rest of the module doesn't:
// the graph's edge weights and the potential vector, both threaded through
// a single-threaded loop (spec §5 — no locking, by design, unlike
// lvlath/core's RWMutex-guarded Graph).
package mcmc
