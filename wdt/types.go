package wdt

import (
	"errors"

	"github.com/veyrin/heatfield/container"
)

// Sentinel errors returned by Transform and Resume.
var (
	// ErrNilImage indicates a nil output image.
	ErrNilImage = errors.New("wdt: output image is nil")
	// ErrNilBitmap indicates a nil foreground predicate or exclusion mask.
	ErrNilBitmap = errors.New("wdt: foreground and mask bitmaps must be non-nil")
	// ErrNilOracle indicates a nil cost oracle.
	ErrNilOracle = errors.New("wdt: cost oracle is nil")
	// ErrNilQueue indicates a nil priority queue.
	ErrNilQueue = errors.New("wdt: priority queue is nil")
	// ErrDirtyQueue indicates Transform was handed a non-empty queue.
	ErrDirtyQueue = errors.New("wdt: priority queue must be passed in empty")
	// ErrImageTooSmall indicates an output image below the 3×3 minimum.
	ErrImageTooSmall = errors.New("wdt: output image must be at least 3×3")
	// ErrBadStride indicates an output stride different from its width.
	ErrBadStride = errors.New("wdt: output stride must equal its width")
	// ErrBadConnectivity indicates a connectivity other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("wdt: connectivity must be Conn4 or Conn8")
)

// Bitmap answers a per-pixel yes/no query by linear index. It backs
// both collaborator roles of the transform:
//
//   - foreground predicate: Get(i) == true means pixel i is foreground;
//   - exclusion mask: Get(i) == true means pixel i participates in the
//     transform, false means it is skipped and left at infinity.
type Bitmap interface {
	Get(i int) bool
}

// CostOracle returns the scalar cost of traversing into the pixel that
// lies at offset (dx, dy) from pixel i, with (dx, dy) ranging over the
// eight unit directions. Costs must be non-negative. The driver only
// calls the oracle with i and i+(dx,dy) both in bounds.
//
// The original formulation specializes the oracle per direction at
// compile time; Go has no value-parameterized generics, so the eight
// call sites collapse into one runtime-dispatch method.
type CostOracle[T container.Scalar] interface {
	Cost(i, dx, dy int) T
}

// Connectivity selects the propagation neighborhood: orthogonal only
// (Conn4) or orthogonal plus diagonals (Conn8). These are the only two
// legal values; Transform rejects anything else.
type Connectivity int

const (
	// Conn4 propagates across the 4 axis-aligned neighbors.
	Conn4 Connectivity = 4
	// Conn8 additionally propagates across the 4 diagonal neighbors.
	Conn8 Connectivity = 8
)

// Options configures a transform run.
//
// Conn  – propagation neighborhood, Conn4 or Conn8.
// Limit – hard cost cutoff: a pixel whose best cost would be ≥ Limit is
// never enqueued and ends at infinity. Default Inf[T]() (no cutoff).
type Options[T container.Scalar] struct {
	Conn  Connectivity
	Limit T
}

// Option is a functional option for configuring Transform or Resume.
type Option[T container.Scalar] func(*Options[T])

// WithConnectivity selects the propagation neighborhood.
// Validity is checked by Transform, not here.
func WithConnectivity[T container.Scalar](c Connectivity) Option[T] {
	return func(o *Options[T]) {
		o.Conn = c
	}
}

// WithLimit sets the hard cost cutoff. Pixels whose best accumulated
// cost would equal or exceed limit stay at infinity, which bounds the
// explored frontier in sparse foreground scenes.
func WithLimit[T container.Scalar](limit T) Option[T] {
	return func(o *Options[T]) {
		o.Limit = limit
	}
}

// DefaultOptions returns the defaults: Conn8 and no cost cutoff.
func DefaultOptions[T container.Scalar]() Options[T] {
	return Options[T]{
		Conn:  Conn8,
		Limit: container.Inf[T](),
	}
}
