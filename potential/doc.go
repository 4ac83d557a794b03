// Package potential implements the node-indexed potential vector h (spec
// §3, §4.3 step 4): h[v] such that the reduced cost w(u,v)+h[u]-h[v] is
// nonnegative for every edge, maintained across accepted MCMC proposals via
// a Johnson-style repair, with periodic renormalization to bound drift on
// integer instantiations (spec §9 "Potential overflow").
package potential
