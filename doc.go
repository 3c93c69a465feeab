// Package heatfield turns capacitive touch heatmaps into geodesic
// distance fields — the kernel a contact-finding pipeline builds on to
// separate touching fingers and bound contact regions.
//
// 🚀 What is heatfield?
//
//	A small, allocation-free library around one hard kernel:
//		• Weighted distance transform: Dijkstra-style propagation of
//		  per-pixel, per-direction edge costs from thresholded contacts
//		• Pluggable cost oracles: unit, chamfer, anisotropic axis, and
//		  gradient-aware metrics that refuse to bleed across ridges
//		• 4- or 8-connected neighborhoods with a hard cost cutoff
//		• Caller-owned buffers throughout: one output image and one
//		  reusable priority queue per frame stream
//
// ✨ Why choose heatfield?
//
//   - Frame-rate friendly – zero allocations in the hot path, queue
//     capacity reserved once across frames
//   - Deterministic – insertion-order tie-breaking yields bit-identical
//     fields for identical inputs
//   - Honest contracts – sentinel errors for every precondition, and no
//     runtime failure beyond them
//
// Everything is organized under three subpackages:
//
//	container/ — dense row-major Image[T], Size/Unravel helpers, and the
//	             Scalar model with its Inf sentinel
//	pqueue/    — the frontier min-heap of (index, cost) entries with
//	             lazy decrease-key semantics
//	wdt/       — the transform driver, collaborator contracts, cost
//	             oracles, and bitmap/threshold helpers
//
// Quick ASCII example:
//
//	heatmap          foreground        distance field (Conn4, unit cost)
//	1 2 1            . . .             2 1 2
//	2 9 3     →      . [ .      →      1 0 1
//	1 2 1            . . .             2 1 2
//
// Start with wdt.Transform; feed it one frame's threshold partition per
// call and hand the resulting field to your blob labeling.
package heatfield
