// Package serialize reads and writes the edge-list text format spec §6
// defines, and provides an independent negative-cycle check (classic
// Bellman-Ford over raw edge weights, not reduced costs) that the CLI's
// --check flag runs on the graph before an mcmc run starts and again after
// it finishes. The per-proposal cross-check of spec §8's cross-validation
// scenario is done inside mcmc.Run with oracle.BellmanFord, not here.
package serialize
