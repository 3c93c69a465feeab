package container

import "errors"

// Sentinel errors for container construction.
var (
	// ErrBadDimensions indicates a width or height below 1.
	ErrBadDimensions = errors.New("container: width and height must be at least 1")
	// ErrBadStride indicates a stride smaller than the image width.
	ErrBadStride = errors.New("container: stride must be at least the image width")
)

// Size holds image dimensions in pixels.
type Size struct {
	X, Y int
}

// Span returns the number of addressable pixels, X·Y.
// Complexity: O(1).
func (s Size) Span() int {
	return s.X * s.Y
}

// Unravel converts a linear index into (x, y) coordinates, assuming a
// packed layout (stride == width): x = i mod size.X, y = i div size.X.
// Complexity: O(1).
func Unravel(size Size, i int) (x, y int) {
	return i % size.X, i / size.X
}

// Image is a dense 2D array of element type T stored row-major in a
// single buffer of stride·height elements. The buffer is caller-visible
// through Pix; none of the algorithms in this module allocate copies.
type Image[T any] struct {
	size   Size
	stride int
	pix    []T
}

// New constructs a packed image (stride == width).
// Returns ErrBadDimensions if w or h is below 1.
// Complexity: O(w×h) for the buffer allocation.
func New[T any](w, h int) (*Image[T], error) {
	return NewWithStride[T](w, h, w)
}

// NewWithStride constructs an image whose rows are stride elements
// apart. Strides larger than the width leave per-row padding that no
// accessor touches. Returns ErrBadDimensions or ErrBadStride on
// invalid geometry.
// Complexity: O(stride×h) for the buffer allocation.
func NewWithStride[T any](w, h, stride int) (*Image[T], error) {
	if w < 1 || h < 1 {
		return nil, ErrBadDimensions
	}
	if stride < w {
		return nil, ErrBadStride
	}
	im := &Image[T]{
		size:   Size{X: w, Y: h},
		stride: stride,
		pix:    make([]T, stride*h),
	}

	return im, nil
}

// Size returns the image dimensions.
func (im *Image[T]) Size() Size { return im.size }

// Stride returns the number of buffer elements per row.
func (im *Image[T]) Stride() int { return im.stride }

// Span returns the number of addressable pixels, width·height.
func (im *Image[T]) Span() int { return im.size.Span() }

// Index maps (x, y) to the linear buffer index y·stride + x.
// Complexity: O(1).
func (im *Image[T]) Index(x, y int) int {
	return y*im.stride + x
}

// At returns the pixel at (x, y).
func (im *Image[T]) At(x, y int) T {
	return im.pix[y*im.stride+x]
}

// Set stores v at (x, y).
func (im *Image[T]) Set(x, y int, v T) {
	im.pix[y*im.stride+x] = v
}

// AtIndex returns the pixel at linear buffer index i.
func (im *Image[T]) AtIndex(i int) T {
	return im.pix[i]
}

// SetIndex stores v at linear buffer index i.
func (im *Image[T]) SetIndex(i int, v T) {
	im.pix[i] = v
}

// Pix exposes the backing buffer. Mutating it mutates the image.
func (im *Image[T]) Pix() []T { return im.pix }

// Fill writes v into every buffer element, padding included.
// Complexity: O(stride×height).
func (im *Image[T]) Fill(v T) {
	for i := range im.pix {
		im.pix[i] = v
	}
}
