package radial

import (
	"encoding/binary"
	"math"
	"sort"

	icolor "github.com/gogpu/radial/internal/color"
	"github.com/gogpu/radial/internal/ramp"
)

// Spread defines how a gradient continues beyond its radius.
type Spread int

const (
	// SpreadPad extends the edge colors beyond the radius (default behavior).
	SpreadPad Spread = iota
	// SpreadRepeat repeats the ramp.
	SpreadRepeat
	// SpreadReflect mirrors the ramp on every other repetition.
	SpreadReflect
)

// String returns the spread name.
func (s Spread) String() string {
	switch s {
	case SpreadRepeat:
		return "repeat"
	case SpreadReflect:
		return "reflect"
	default:
		return "pad"
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Ramp is an ordered list of color stops.
type Ramp struct {
	stops []ColorStop
}

// Add inserts a stop, keeping stops ordered by offset. Stops with equal
// offsets keep their insertion order.
func (r *Ramp) Add(offset float64, c RGBA) {
	r.stops = append(r.stops, ColorStop{Offset: clamp01(offset), Color: c})
	sort.SliceStable(r.stops, func(i, j int) bool {
		return r.stops[i].Offset < r.stops[j].Offset
	})
}

// Stops returns the stops in offset order. The slice must not be modified.
func (r *Ramp) Stops() []ColorStop {
	return r.stops
}

// fingerprint encodes the stops exactly, for use as a cache key.
func (r *Ramp) fingerprint() string {
	buf := make([]byte, 0, len(r.stops)*5*8)
	for _, st := range r.stops {
		for _, v := range [...]float64{st.Offset, st.Color.R, st.Color.G, st.Color.B, st.Color.A} {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}
	return string(buf)
}

// NoBlendingColor reports whether every stop is fully opaque, which makes
// every color the ramp produces opaque as well.
func (r *Ramp) NoBlendingColor() bool {
	if len(r.stops) == 0 {
		return false
	}
	for _, s := range r.stops {
		if !s.Color.Opaque() {
			return false
		}
	}
	return true
}

// ColorAt returns the color at t, clamped to [0, 1].
// Colors between stops are interpolated in linear light.
func (r *Ramp) ColorAt(t float64) RGBA {
	stops := r.stops
	switch {
	case len(stops) == 0:
		return Transparent
	case t <= stops[0].Offset:
		return stops[0].Color
	case t >= stops[len(stops)-1].Offset:
		return stops[len(stops)-1].Color
	}

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	hi := stops[idx]
	if hi.Offset == t {
		return hi.Color
	}
	lo := stops[idx-1]
	return interpolateColorLinear(lo.Color, hi.Color, (t-lo.Offset)/(hi.Offset-lo.Offset))
}

// Table resolves the ramp into 256 packed ARGB pixels with alpha scaled by
// opacity/255.
func (r *Ramp) Table(opacity uint8) [256]uint32 {
	var table [256]uint32
	for i := range table {
		c := r.ColorAt(float64(i) / 255).ARGB()
		table[i] = icolor.ScaleAlpha(c, opacity)
	}
	return table
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// interpolateColorLinear mixes two colors in linear light.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	m := icolor.MixLinear(c1.f32(), c2.f32(), float32(t))
	return RGBA{R: float64(m.R), G: float64(m.G), B: float64(m.B), A: float64(m.A)}
}

// RadialGradient is a radial or elliptical gradient in device space.
//
// The ramp runs from the focus (offset 0) to the ellipse with radii
// RadiusX and RadiusY around the center (offset 1). Both radii must be
// positive. A focus equal to the center gives concentric rings.
type RadialGradient struct {
	CenterX, CenterY float64
	RadiusX, RadiusY float64
	FocusX, FocusY   float64
	Style            Spread
	Ramp             Ramp
}

// NewRadialGradient creates a circular gradient centered at (cx, cy) with
// the focus at the center.
func NewRadialGradient(cx, cy, r float64) *RadialGradient {
	return NewEllipticalGradient(cx, cy, r, r)
}

// NewEllipticalGradient creates an axis-aligned elliptical gradient
// centered at (cx, cy) with the focus at the center.
func NewEllipticalGradient(cx, cy, rx, ry float64) *RadialGradient {
	return &RadialGradient{
		CenterX: cx,
		CenterY: cy,
		RadiusX: rx,
		RadiusY: ry,
		FocusX:  cx,
		FocusY:  cy,
	}
}

// SetFocus moves the focal point. Returns the gradient for method chaining.
func (g *RadialGradient) SetFocus(fx, fy float64) *RadialGradient {
	g.FocusX, g.FocusY = fx, fy
	return g
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.Ramp.Add(offset, c)
	return g
}

// SetStyle sets the spread style. Returns the gradient for method chaining.
func (g *RadialGradient) SetStyle(s Spread) *RadialGradient {
	g.Style = s
	return g
}

// PaintType implements Paint.
func (*RadialGradient) PaintType() PaintType { return PaintRadialGradient }

// LinearColors returns the ramp resolved into 512 packed ARGB pixels with
// alpha scaled by opacity/255. Entries 256-511 repeat the ramp for
// SpreadRepeat and mirror it otherwise, so that masking a ramp index with
// 511 realises the spread style.
func (g *RadialGradient) LinearColors(opacity uint8) []uint32 {
	half := g.Ramp.Table(opacity)
	colors := make([]uint32, 2*len(half))
	copy(colors, half[:])
	for i := range half {
		if g.Style == SpreadRepeat {
			colors[len(half)+i] = half[i]
		} else {
			colors[len(half)+i] = half[len(half)-1-i]
		}
	}
	return colors
}

// Opaque reports whether every color the gradient produces at opacity is
// fully opaque.
func (g *RadialGradient) Opaque(opacity uint8) bool {
	return opacity == 255 && g.Ramp.NoBlendingColor()
}

func (g *RadialGradient) geometry() ramp.Geometry {
	return ramp.Geometry{
		CenterX: g.CenterX,
		CenterY: g.CenterY,
		RadiusX: g.RadiusX,
		RadiusY: g.RadiusY,
		FocusX:  g.FocusX,
		FocusY:  g.FocusY,
	}
}
