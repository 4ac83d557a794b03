// Command negcycle generates a benchmark instance for negative-weight
// shortest-path algorithms: it builds a directed graph from one of six
// sources (gnp, rhg, dsf, complete, cycle, file), runs the MCMC edge-weight
// sampler (spec §4) against it, and writes the resulting weighted edge list
// (spec §6).
//
//	negcycle [global flags] <gnp|rhg|dsf|complete|cycle|file> [subcommand flags]
//
// Exit codes: 0 success, 2 argument error, 1 verifier failure under
// --check (spec §6 "Exit codes").
package main
