// Package wdt implements the weighted distance transform used to
// segment capacitive touch heatmaps into contact regions.
//
// Given a binary foreground/background partition of an image, a
// per-pixel per-direction cost oracle, and an optional exclusion mask,
// Transform computes for every background pixel the minimum accumulated
// cost of any path to the nearest foreground pixel under 4- or
// 8-connectivity, optionally bounded by a hard cost limit. It is the
// geodesic generalization of the Euclidean distance transform: the
// oracle can encode image-gradient-aware costs that keep adjacent
// finger contacts from bleeding into each other.
//
// What:
//
//   - Transform: seed pass plus Dijkstra-style relaxation over a
//     caller-owned output image and priority queue.
//   - Resume: the relaxation phase alone, for externally seeded queues.
//   - Bitmap and CostOracle: the collaborator contracts; BitField, All,
//     Threshold, UnitCost, ChamferCost, AxisCost and GradientCost are
//     ready-made implementations.
//
// Why:
//
//   - The transform runs once per sensor frame at interactive rates, so
//     the driver performs no allocation: output, predicates, oracle and
//     queue are all caller-owned, and the queue's storage growth is the
//     only dynamic memory activity (pre-size it with Reserve).
//   - Lazy decrease-key keeps the queue a plain binary heap: duplicates
//     are pushed freely and stale entries discarded at pop time.
//   - The seed pass is stratified into nine boundary regions (four
//     corners, four edges, interior) so neighbor offsets never need a
//     per-pixel bounds check.
//
// Direction convention:
//
//   - The cost of stepping across an edge is obtained from the oracle
//     at the edge's already-settled endpoint, with (dx, dy) pointing
//     from that endpoint toward the pixel being relaxed. The seed pass
//     calls the oracle on the foreground neighbor; the relaxation loop
//     calls it on the popped pixel. Both phases thereby evaluate the
//     same endpoint under the same sign convention, which is what lets
//     an oracle express anisotropic per-pixel costs.
//
// Complexity:
//
//   - Time:  O(P×d + E log E) where P = pixels, d = 4 or 8,
//     E ≤ P×d pushed entries under lazy decrease-key.
//   - Space: O(E) queue entries worst-case; nothing else is allocated.
//
// Errors (sentinel, returned before any pixel is touched):
//
//   - ErrNilImage, ErrNilBitmap, ErrNilOracle, ErrNilQueue: missing
//     collaborator.
//   - ErrDirtyQueue: Transform requires the queue passed in empty.
//   - ErrImageTooSmall: output smaller than 3×3.
//   - ErrBadStride: output stride differs from its width.
//   - ErrBadConnectivity: connectivity other than Conn4 or Conn8.
//
// Concurrency:
//
//   - Transform is single-threaded and synchronous, reads no global
//     state, and is safe to run concurrently across distinct
//     (output, queue) pairs. One queue cannot back two calls at once.
package wdt
