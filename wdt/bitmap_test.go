package wdt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veyrin/heatfield/container"
	"github.com/veyrin/heatfield/wdt"
)

func TestBitField_SetGet(t *testing.T) {
	b := wdt.NewBitField(9)
	require.Equal(t, 9, b.Span())
	for i := 0; i < 9; i++ {
		require.False(t, b.Get(i))
	}
	b.SetBit(4, true)
	require.True(t, b.Get(4))
	b.SetBit(4, false)
	require.False(t, b.Get(4))
}

func TestAll_ConstantAnswer(t *testing.T) {
	require.True(t, wdt.All(true).Get(0))
	require.True(t, wdt.All(true).Get(1234))
	require.False(t, wdt.All(false).Get(0))
}

func TestThreshold_PartitionsAtBoundary(t *testing.T) {
	heat, err := container.New[float64](3, 3)
	require.NoError(t, err)
	copy(heat.Pix(), []float64{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8,
	})

	fg := wdt.Threshold(heat, 4)
	for i := 0; i < heat.Span(); i++ {
		require.Equal(t, heat.AtIndex(i) >= 4, fg.Get(i), "pixel %d", i)
	}
}
