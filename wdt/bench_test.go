package wdt_test

import (
	"math/rand"
	"testing"

	"github.com/veyrin/heatfield/container"
	"github.com/veyrin/heatfield/pqueue"
	"github.com/veyrin/heatfield/wdt"
)

// benchHeat builds a deterministic 72×48 pseudo-heatmap, roughly the
// geometry of one touch sensor frame.
func benchHeat(b *testing.B) *container.Image[float64] {
	rng := rand.New(rand.NewSource(42))
	heat, err := container.New[float64](72, 48)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	pix := heat.Pix()
	for i := range pix {
		pix[i] = rng.Float64() * 4
	}

	return heat
}

// BenchmarkTransform_Unit8 measures the transform under a unit oracle
// and 8-connectivity with sparse thresholded foreground.
// Complexity: O(P×d + E log E).
func BenchmarkTransform_Unit8(b *testing.B) {
	heat := benchHeat(b)
	size := heat.Size()
	out, err := container.New[float64](size.X, size.Y)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	fg := wdt.Threshold(heat, 3.8)
	cost := wdt.UnitCost[float64]{}
	q := pqueue.New[float64](8 * out.Span())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Reset()
		if err := wdt.Transform(out, fg, wdt.All(true), cost, q); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTransform_Gradient4 measures the contact-finder
// configuration: gradient-aware oracle, 4-connectivity, and a cost
// cutoff bounding the frontier around each contact.
func BenchmarkTransform_Gradient4(b *testing.B) {
	heat := benchHeat(b)
	size := heat.Size()
	out, err := container.New[float64](size.X, size.Y)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	fg := wdt.Threshold(heat, 3.8)
	cost := wdt.GradientCost[float64]{Heat: heat, Orthogonal: 1, Diagonal: 1.5, Alpha: 0.5}
	q := pqueue.New[float64](8 * out.Span())
	opts := []wdt.Option[float64]{
		wdt.WithConnectivity[float64](wdt.Conn4),
		wdt.WithLimit(6.0),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Reset()
		if err := wdt.Transform(out, fg, wdt.All(true), cost, q, opts...); err != nil {
			b.Fatal(err)
		}
	}
}
