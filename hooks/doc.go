// Package hooks lets callers observe an mcmc run without being able to
// influence it. It generalizes lvlath/bfs's OnVisit/OnEnqueue/OnDequeue
// pattern to this package's single event: a proposal has just been decided.
// Observers are called synchronously, after the decision is final and any
// potential repair has already happened, and must not block or mutate
// anything the driver owns (spec §4.7).
package hooks
