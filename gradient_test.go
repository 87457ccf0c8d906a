package radial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRampColorAt(t *testing.T) {
	var r Ramp
	assert.Equal(t, Transparent, r.ColorAt(0.5))

	r.Add(0.5, Green)
	assert.Equal(t, Green, r.ColorAt(0))
	assert.Equal(t, Green, r.ColorAt(1))

	r.Add(0, Red)
	r.Add(1, Blue)
	assert.Equal(t, Red, r.ColorAt(-1))
	assert.Equal(t, Red, r.ColorAt(0))
	assert.Equal(t, Green, r.ColorAt(0.5))
	assert.Equal(t, Blue, r.ColorAt(1))
	assert.Equal(t, Blue, r.ColorAt(2))
}

func TestRampInterpolatesInLinearLight(t *testing.T) {
	var r Ramp
	r.Add(0, Red)
	r.Add(1, Blue)

	mid := r.ColorAt(0.5)
	assert.InDelta(t, 0.7354, mid.R, 0.001)
	assert.InDelta(t, 0.0, mid.G, 1e-6)
	assert.InDelta(t, 0.7354, mid.B, 0.001)
	assert.InDelta(t, 1.0, mid.A, 1e-6)
}

func TestRampStopsSorted(t *testing.T) {
	var r Ramp
	r.Add(1, Blue)
	r.Add(0.25, Green)
	r.Add(-3, Red)

	stops := r.Stops()
	require.Len(t, stops, 3)
	assert.Equal(t, []float64{0, 0.25, 1}, []float64{stops[0].Offset, stops[1].Offset, stops[2].Offset})
}

func TestRampNoBlendingColor(t *testing.T) {
	var r Ramp
	assert.False(t, r.NoBlendingColor(), "empty ramp")

	r.Add(0, Red)
	r.Add(1, Blue)
	assert.True(t, r.NoBlendingColor())

	r.Add(0.5, RGBA2(1, 1, 1, 0.99))
	assert.False(t, r.NoBlendingColor())
}

func TestRampTableOpacity(t *testing.T) {
	var r Ramp
	r.Add(0, Red)
	r.Add(1, Blue)

	full := r.Table(255)
	assert.Equal(t, uint32(0xFFFF0000), full[0])
	assert.Equal(t, uint32(0xFF0000FF), full[255])

	half := r.Table(128)
	assert.Equal(t, uint32(0x80FF0000), half[0])
	assert.Equal(t, uint32(0x800000FF), half[255])

	none := r.Table(0)
	assert.Equal(t, uint32(0x00FF0000), none[0])
}

func TestLinearColorsSpread(t *testing.T) {
	tests := []struct {
		style  Spread
		mirror bool
	}{
		{SpreadPad, true},
		{SpreadRepeat, false},
		{SpreadReflect, true},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			g := redBlue(0, 0, 10).SetStyle(tt.style)
			colors := g.LinearColors(255)
			require.Len(t, colors, 512)
			for i := range 256 {
				want := colors[i]
				if tt.mirror {
					want = colors[255-i]
				}
				require.Equal(t, want, colors[256+i], "i=%d", i)
			}
		})
	}
}

func TestRadialGradientConstructors(t *testing.T) {
	g := NewRadialGradient(1, 2, 3)
	assert.Equal(t, RadialGradient{CenterX: 1, CenterY: 2, RadiusX: 3, RadiusY: 3, FocusX: 1, FocusY: 2}, *g)

	e := NewEllipticalGradient(1, 2, 3, 4).SetFocus(5, 6).SetStyle(SpreadReflect)
	assert.Equal(t, 4.0, e.RadiusY)
	assert.Equal(t, 5.0, e.FocusX)
	assert.Equal(t, 6.0, e.FocusY)
	assert.Equal(t, SpreadReflect, e.Style)
	assert.Equal(t, PaintRadialGradient, e.PaintType())
}

func TestRadialGradientOpaque(t *testing.T) {
	g := redBlue(0, 0, 1)
	assert.True(t, g.Opaque(255))
	assert.False(t, g.Opaque(254))

	g.AddColorStop(0.5, Transparent)
	assert.False(t, g.Opaque(255))
}

func TestSpreadString(t *testing.T) {
	assert.Equal(t, "pad", SpreadPad.String())
	assert.Equal(t, "repeat", SpreadRepeat.String())
	assert.Equal(t, "reflect", SpreadReflect.String())
}
