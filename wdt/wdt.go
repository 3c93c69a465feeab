package wdt

import (
	"github.com/veyrin/heatfield/container"
	"github.com/veyrin/heatfield/pqueue"
)

// Transform computes the weighted distance transform of the partition
// described by bin and mask into out, using cost as the edge metric and
// q as frontier scratch.
//
// On success, for every linear index i:
//
//   - bin.Get(i) == true             → out[i] = 0
//   - mask.Get(i) == false           → out[i] = Inf[T]()
//   - otherwise out[i] is the minimum, over all paths from i to any
//     foreground pixel whose interior pixels are all unmasked
//     background, of the summed oracle costs along the path — or
//     Inf[T]() if every such path reaches the Limit cutoff first.
//
// The queue must be passed in empty; it is drained again on return.
// Transform performs no allocation of its own — the queue's storage
// growth is the only dynamic memory activity, so callers reprocessing
// frames should Reserve it once to the expected frontier size.
//
// Preconditions and validation (in order):
//  1. out must be non-nil (ErrNilImage).
//  2. bin and mask must be non-nil (ErrNilBitmap).
//  3. cost must be non-nil (ErrNilOracle).
//  4. q must be non-nil (ErrNilQueue) and empty (ErrDirtyQueue).
//  5. out must be at least 3×3 (ErrImageTooSmall).
//  6. out must be packed, stride == width (ErrBadStride).
//  7. Options.Conn must be Conn4 or Conn8 (ErrBadConnectivity).
//
// Complexity:
//
//   - Time:  O(P×d + E log E), P = pixels, d = neighborhood size,
//     E = queue pushes (≤ P×d under lazy decrease-key).
//   - Space: O(E) in the queue, nothing else.
func Transform[T container.Scalar](
	out *container.Image[T],
	bin, mask Bitmap,
	cost CostOracle[T],
	q *pqueue.Queue[T],
	opts ...Option[T],
) error {
	// 1) Build options from defaults plus caller overrides.
	cfg := DefaultOptions[T]()
	var opt Option[T]
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate collaborators and geometry before touching a pixel. A
	// non-empty queue is reported after the nil checks and before the
	// geometry checks.
	if out != nil && bin != nil && mask != nil && cost != nil && q != nil && !q.Empty() {
		return ErrDirtyQueue
	}
	if err := validate(out, bin, mask, cost, q, cfg); err != nil {
		return err
	}

	// 3) Seed the frontier, then relax it to a fixed point.
	r := newRunner(out, bin, mask, cost, q, cfg)
	r.seed()
	r.relax()

	return nil
}

// Resume runs the relaxation phase only, draining an externally seeded
// (or previously interrupted) queue against an already initialized out.
// Running Resume with an empty queue over a converged output is a
// no-op: the transform is idempotent at its fixed point.
//
// Validation matches Transform except that a non-empty queue is the
// point, so ErrDirtyQueue cannot occur.
func Resume[T container.Scalar](
	out *container.Image[T],
	bin, mask Bitmap,
	cost CostOracle[T],
	q *pqueue.Queue[T],
	opts ...Option[T],
) error {
	cfg := DefaultOptions[T]()
	var opt Option[T]
	for _, opt = range opts {
		opt(&cfg)
	}
	if err := validate(out, bin, mask, cost, q, cfg); err != nil {
		return err
	}

	r := newRunner(out, bin, mask, cost, q, cfg)
	r.relax()

	return nil
}

// validate applies the shared precondition checks in a fixed order.
func validate[T container.Scalar](
	out *container.Image[T],
	bin, mask Bitmap,
	cost CostOracle[T],
	q *pqueue.Queue[T],
	cfg Options[T],
) error {
	if out == nil {
		return ErrNilImage
	}
	if bin == nil || mask == nil {
		return ErrNilBitmap
	}
	if cost == nil {
		return ErrNilOracle
	}
	if q == nil {
		return ErrNilQueue
	}
	size := out.Size()
	if size.X < 3 || size.Y < 3 {
		return ErrImageTooSmall
	}
	if out.Stride() != size.X {
		return ErrBadStride
	}
	if cfg.Conn != Conn4 && cfg.Conn != Conn8 {
		return ErrBadConnectivity
	}

	return nil
}

// seedDir describes one neighbor probe of the seed pass: the linear
// offset to the neighbor, and the (dx, dy) handed to the oracle — the
// seeded pixel's position relative to that neighbor.
type seedDir struct {
	off    int
	dx, dy int
}

// region is the neighbor probe set for one of the nine boundary strata.
type region struct {
	dirs [8]seedDir
	n    int
}

func (reg *region) add(w, ox, oy int) {
	reg.dirs[reg.n] = seedDir{off: oy*w + ox, dx: -ox, dy: -oy}
	reg.n++
}

// makeRegion builds the probe set for a stratum from which directions
// stay in bounds. Diagonals participate only under Conn8.
func makeRegion(w int, conn Connectivity, left, right, up, down bool) region {
	var reg region
	diag := conn == Conn8
	if left {
		reg.add(w, -1, 0)
	}
	if right {
		reg.add(w, 1, 0)
	}
	if up {
		if diag && left {
			reg.add(w, -1, -1)
		}
		reg.add(w, 0, -1)
		if diag && right {
			reg.add(w, 1, -1)
		}
	}
	if down {
		if diag && left {
			reg.add(w, -1, 1)
		}
		reg.add(w, 0, 1)
		if diag && right {
			reg.add(w, 1, 1)
		}
	}

	return reg
}

// runner holds the state of a single transform execution. It lives on
// the caller's stack; everything it points at is caller-owned.
type runner[T container.Scalar] struct {
	out   *container.Image[T]
	bin   Bitmap
	mask  Bitmap
	cost  CostOracle[T]
	q     *pqueue.Queue[T]
	limit T
	inf   T
	conn  Connectivity
	w, h  int

	// Probe sets for the nine seed strata: corners, edges, interior.
	tl, top, tr   region
	lft, mid, rgt region
	bl, bot, br   region
}

func newRunner[T container.Scalar](
	out *container.Image[T],
	bin, mask Bitmap,
	cost CostOracle[T],
	q *pqueue.Queue[T],
	cfg Options[T],
) runner[T] {
	size := out.Size()
	w, conn := size.X, cfg.Conn
	r := runner[T]{
		out:   out,
		bin:   bin,
		mask:  mask,
		cost:  cost,
		q:     q,
		limit: cfg.Limit,
		inf:   container.Inf[T](),
		conn:  conn,
		w:     w,
		h:     size.Y,
	}
	r.tl = makeRegion(w, conn, false, true, false, true)
	r.top = makeRegion(w, conn, true, true, false, true)
	r.tr = makeRegion(w, conn, true, false, false, true)
	r.lft = makeRegion(w, conn, false, true, true, true)
	r.mid = makeRegion(w, conn, true, true, true, true)
	r.rgt = makeRegion(w, conn, true, false, true, true)
	r.bl = makeRegion(w, conn, false, true, true, false)
	r.bot = makeRegion(w, conn, true, true, true, false)
	r.br = makeRegion(w, conn, true, false, true, false)

	return r
}

// seed traverses every pixel exactly once, stratified so that no probe
// ever leaves the buffer: foreground pixels become fixed zero-cost
// sources, all other pixels start at infinity, and every unmasked
// background pixel adjacent to foreground enters the queue with its
// best one-hop cost.
func (r *runner[T]) seed() {
	w, h := r.w, r.h

	// y = 0
	r.seedPixel(0, &r.tl)
	for i := 1; i < w-1; i++ {
		r.seedPixel(i, &r.top)
	}
	r.seedPixel(w-1, &r.tr)

	// 0 < y < h-1
	var i, rowEnd int
	for y := 1; y < h-1; y++ {
		i = y * w
		r.seedPixel(i, &r.lft)
		rowEnd = i + w - 1
		for i++; i < rowEnd; i++ {
			r.seedPixel(i, &r.mid)
		}
		r.seedPixel(rowEnd, &r.rgt)
	}

	// y = h-1
	base := (h - 1) * w
	r.seedPixel(base, &r.bl)
	for i = base + 1; i < base+w-1; i++ {
		r.seedPixel(i, &r.bot)
	}
	r.seedPixel(base+w-1, &r.br)
}

// seedPixel initializes pixel i and, if it is unmasked background with
// at least one foreground neighbor cheaper than the limit, enqueues its
// best one-hop cost. The oracle is evaluated on the foreground neighbor
// with the direction pointing back at i.
func (r *runner[T]) seedPixel(i int, reg *region) {
	if r.bin.Get(i) {
		r.out.SetIndex(i, 0)
		return
	}
	r.out.SetIndex(i, r.inf)
	if !r.mask.Get(i) {
		return
	}

	c := r.inf
	var cc T
	for k := 0; k < reg.n; k++ {
		d := &reg.dirs[k]
		if !r.bin.Get(i + d.off) {
			continue
		}
		if cc = r.cost.Cost(i+d.off, d.dx, d.dy); cc < c {
			c = cc
		}
	}
	if c < r.limit {
		r.q.Push(pqueue.Item[T]{Idx: i, Cost: c})
	}
}

// relax drains the queue: each pop either hits a stale entry (the pixel
// already settled at a cost no worse) or finalizes the pixel and offers
// improved costs to its in-bounds unmasked background neighbors. Edge
// costs are non-negative, so the first surviving pop per pixel is its
// minimum (Dijkstra optimality), and the loop terminates because every
// push strictly undercuts the target's current value.
func (r *runner[T]) relax() {
	w, h := r.w, r.h
	size := r.out.Size()
	diag := r.conn == Conn8

	var px pqueue.Item[T]
	var x, y int
	for !r.q.Empty() {
		px = r.q.Pop()

		// Stale check replaces decrease-key.
		if r.out.AtIndex(px.Idx) <= px.Cost {
			continue
		}
		r.out.SetIndex(px.Idx, px.Cost)

		x, y = container.Unravel(size, px.Idx)

		if x > 0 {
			r.step(px, -1, 0, -1)
		}
		if x < w-1 {
			r.step(px, 1, 0, 1)
		}
		if y > 0 {
			if diag && x > 0 {
				r.step(px, -1, -1, -w-1)
			}
			r.step(px, 0, -1, -w)
			if diag && x < w-1 {
				r.step(px, 1, -1, -w+1)
			}
		}
		if y < h-1 {
			if diag && x > 0 {
				r.step(px, -1, 1, w-1)
			}
			r.step(px, 0, 1, w)
			if diag && x < w-1 {
				r.step(px, 1, 1, w+1)
			}
		}
	}
}

// step offers px's settled cost plus one oracle step to the neighbor at
// offset off. The oracle is evaluated on the settled pixel with the
// direction pointing at the neighbor. out is not written here; the
// stale check arbitrates when the entry surfaces.
func (r *runner[T]) step(px pqueue.Item[T], dx, dy, off int) {
	j := px.Idx + off
	if r.bin.Get(j) || !r.mask.Get(j) {
		return
	}
	c := px.Cost + r.cost.Cost(px.Idx, dx, dy)
	if c < r.out.AtIndex(j) && c < r.limit {
		r.q.Push(pqueue.Item[T]{Idx: j, Cost: c})
	}
}
