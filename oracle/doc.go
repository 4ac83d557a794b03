// Package oracle implements the three interchangeable feasibility oracles
// spec §4.5 describes: bidirectional Dijkstra (bd, the production default),
// unidirectional Dijkstra (d), and Bellman-Ford (bf, the O(n*m) reference).
//
// All three answer the same question for a tentative edge (u,v) -> w':
// "does lowering w(u,v) to w' create a negative cycle?", by computing (a
// bound on) the shortest-path distance from v to u over the current reduced
// costs and comparing it against -(w' + h[u] - h[v]). They share one
// Oracle[T] interface so mcmc.Run can dispatch through a single indirect
// call per proposal (spec §9 "Oracle dispatch").
//
// Potential repair: on Accept every oracle reports, through Deltas, exactly
// the nodes at distance strictly less than threshold := -(w'+h[u]-h[v])
// from the candidate edge's head. The Dijkstra-family oracles reach that set
// by early termination (they stop as soon as the frontier minimum is >=
// threshold); BellmanFord computes every distance and keeps those below
// threshold. That is exactly the precondition the Johnson-style repair in
// the potential package's Repair needs: h_new[x] = h[x] + d[x] - threshold
// for every reported x, unchanged otherwise. This refines spec §4.3 step
// 4's informally-stated update into the form that provably preserves the
// reduced-cost invariant (see DESIGN.md's Open Questions section for the
// derivation); nodes outside the reported set, including every node
// unreachable in the query, keep their potential.
//
// Addressable priority queue: the Dijkstra-family oracles need true
// decrease-key, not the lazy-duplicate-push heap lvlath/dijkstra uses for
// its single-shot, non-bidirectional queries — spec §9 warns that the
// bidirectional variant's termination rule depends on the true current
// frontier minimum, which a stale-entry heap cannot give. addrHeap here is
// an indexed binary heap (container/heap plus a pos[] side table) using
// heap.Fix for decrease-key, generalizing lvlath/dijkstra's nodePQ.
package oracle
