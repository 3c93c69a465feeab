package wdt

import "github.com/veyrin/heatfield/container"

// BitField is a dense per-pixel boolean indexed linearly, the standard
// caller-owned backing for both the foreground predicate and the
// exclusion mask.
type BitField struct {
	bits []bool
}

// NewBitField returns an all-false BitField covering span pixels.
func NewBitField(span int) *BitField {
	return &BitField{bits: make([]bool, span)}
}

// Get implements Bitmap.
func (b *BitField) Get(i int) bool { return b.bits[i] }

// SetBit stores v for pixel i.
func (b *BitField) SetBit(i int, v bool) { b.bits[i] = v }

// Span returns the number of pixels covered.
func (b *BitField) Span() int { return len(b.bits) }

// All is a Bitmap that answers the same value for every index.
// All(true) is the usual "compute everywhere" exclusion mask.
type All bool

// Get implements Bitmap.
func (a All) Get(int) bool { return bool(a) }

// Threshold partitions a heatmap into foreground and background: the
// returned BitField is true exactly where the pixel value is at least t.
// Indices are linear over the image buffer, so the result plugs
// directly into Transform as the foreground predicate.
// Complexity: O(stride×height).
func Threshold[T container.Scalar](img *container.Image[T], t T) *BitField {
	pix := img.Pix()
	b := NewBitField(len(pix))
	for i, v := range pix {
		if v >= t {
			b.bits[i] = true
		}
	}

	return b
}
