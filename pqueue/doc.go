// Package pqueue implements the min-heap of (index, cost) entries that
// drives the weighted distance transform's frontier.
//
// What:
//
//   - Item[T] pairs a linear pixel index with its candidate cost.
//   - Queue[T] is a binary min-heap ordered by cost, with equal costs
//     popped in insertion order.
//
// Why:
//
//   - The transform uses lazy decrease-key: instead of reprioritizing
//     an enqueued pixel, it pushes a duplicate and lets the driver
//     discard stale entries at pop time. The queue therefore never
//     deduplicates and may hold several entries per pixel.
//   - Insertion-order tie-breaking makes the transform's output fully
//     deterministic for a given input.
//   - The heap is hand-sifted over a concrete slice rather than built
//     on container/heap, whose interface boxes every pushed element;
//     with Reserve sized to the expected frontier, Push and Pop perform
//     no allocation at all.
//
// Complexity:
//
//   - Push, Pop: O(log n). Top, Len, Empty, Reset: O(1).
//   - Memory: O(n) for the entry slice; Reserve pre-grows it.
//
// Top and Pop on an empty queue are programmer error and panic.
package pqueue
