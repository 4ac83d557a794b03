// Package generate builds the synthetic directed multigraphs spec §6
// describes as CLI subcommands (gnp, rhg, dsf, complete, cycle) and reads
// graphs back from the edge-list file format, generalizing
// lvlath/builder's Constructor pattern (a closure of generation parameters
// that yields a graph) to graphcore.Graph[T] and gonum's distuv
// distributions where the teacher used math/rand directly.
//
// LargestSCC implements the optional --scc restriction (spec §9): applied
// by the CLI after a generator runs and before the graph reaches the mcmc
// core, never by the core itself.
package generate
