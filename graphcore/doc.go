// Package graphcore implements the immutable directed multigraph the MCMC
// core operates on: fixed topology, integer node and edge ids, CSR-style
// forward and reverse adjacency for O(deg) neighbor iteration, and a mutable
// per-edge weight cell.
//
// Graph[T] is built once from an edge list via Build and never changes shape
// again — SetWeight is the only mutator, and it is called exclusively by the
// mcmc driver. This mirrors lvlath/core's Graph, generalized from a
// general-purpose thread-safe map-backed library type (string ids, RWMutex
// per map, designed for ad-hoc concurrent mutation) to a build-once,
// single-threaded, integer-indexed CSR structure, because spec §5 makes the
// core's lifetime strictly single-threaded and §4.2 calls for O(1) amortized
// adjacency iteration that a nested-map representation cannot give.
package graphcore
