// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ramp maps pixel coordinates to color ramp indices for radial and
// elliptical gradients.
//
// There are four geometric cases, selected by Classify:
//
//	circular   && !focal  ->  sqrt(dx² + dy²) * 256 / r
//	elliptical && !focal  ->  sqrt(dx²/rx² + dy²/ry²) * 256
//	circular   &&  focal  ->  focal ray/circle solution
//	elliptical &&  focal  ->  focal solution with y normalised to a circle
//
// Every evaluator precomputes the row-invariant terms in Row and then yields
// consecutive indices along the row with Seek and Next.
package ramp

import "math"

const (
	// ColorIndexScale maps a normalised distance of 1 to the end of the ramp.
	ColorIndexScale = 256

	// ColorIndexDoubleMask selects an index in the doubled ramp domain used
	// by the repeat and reflect spread styles.
	ColorIndexDoubleMask = 511

	// focusAdjustment is how far a focus sitting exactly on the circle is
	// pulled towards the center.
	focusAdjustment = 0.1
)

// Geometry describes a radial gradient in device space.
type Geometry struct {
	CenterX, CenterY float64
	RadiusX, RadiusY float64
	FocusX, FocusY   float64
}

// Circular reports whether both radii are equal.
func (g Geometry) Circular() bool {
	return g.RadiusX == g.RadiusY
}

// Focal reports whether the focus is offset from the center.
func (g Geometry) Focal() bool {
	return g.FocusX != g.CenterX || g.FocusY != g.CenterY
}

// Case identifies one of the four evaluator families.
type Case int

const (
	// CircularPlain is a circle with the focus at its center.
	CircularPlain Case = iota
	// EllipticalPlain is an ellipse with the focus at its center.
	EllipticalPlain
	// CircularFocal is a circle with an offset focus.
	CircularFocal
	// EllipticalFocal is an ellipse with an offset focus.
	EllipticalFocal
)

// String returns the case name.
func (c Case) String() string {
	switch c {
	case CircularPlain:
		return "circular"
	case EllipticalPlain:
		return "elliptical"
	case CircularFocal:
		return "circular-focal"
	case EllipticalFocal:
		return "elliptical-focal"
	default:
		return "unknown"
	}
}

// Classify returns the evaluator family for g.
func Classify(g Geometry) Case {
	switch circular, focal := g.Circular(), g.Focal(); {
	case circular && !focal:
		return CircularPlain
	case !circular && !focal:
		return EllipticalPlain
	case circular:
		return CircularFocal
	default:
		return EllipticalFocal
	}
}

// Evaluator yields ramp indices along a scanline.
type Evaluator interface {
	// Row precomputes the terms that depend only on y.
	Row(y int)

	// Seek positions the evaluator at column x of the current row.
	Seek(x int)

	// Next returns the index at the current column and advances by one.
	Next() int
}

// New returns the evaluator for g. When pad is true indices are clamped to
// [0, 255]; otherwise they are masked with ColorIndexDoubleMask.
func New(g Geometry, pad bool) Evaluator {
	switch Classify(g) {
	case CircularPlain:
		return newCircular(g, pad)
	case EllipticalPlain:
		return newElliptical(g, pad)
	case CircularFocal:
		return newFocal(g, 1, pad)
	default:
		return newFocal(g, g.RadiusX/g.RadiusY, pad)
	}
}

// spread folds a raw index into the ramp table domain.
type spread bool

func (pad spread) apply(v int) int {
	if !pad {
		return v & ColorIndexDoubleMask
	}
	if v < 0 {
		return 0
	}
	if v > 254 {
		return 255
	}
	return v
}

// round adds one half and truncates towards zero, matching a C-style cast.
func round(v float64) int {
	return int(v + 0.5)
}

// circular evaluates concentric circles.
type circular struct {
	cx, cy float64
	scale  float64
	spread spread

	dyy float64
	dx  float64
}

func newCircular(g Geometry, pad bool) *circular {
	return &circular{
		cx:     g.CenterX,
		cy:     g.CenterY,
		scale:  ColorIndexScale / g.RadiusX,
		spread: spread(pad),
	}
}

func (e *circular) Row(y int) {
	dy := float64(y) - e.cy
	e.dyy = dy * dy
}

func (e *circular) Seek(x int) {
	e.dx = float64(x) - e.cx
}

func (e *circular) Next() int {
	v := round(math.Sqrt(e.dx*e.dx+e.dyy) * e.scale)
	e.dx++
	return e.spread.apply(v)
}

// elliptical evaluates concentric axis-aligned ellipses.
type elliptical struct {
	cx, cy         float64
	invRx2, invRy2 float64
	spread         spread

	dyTerm float64
	dx     float64
}

func newElliptical(g Geometry, pad bool) *elliptical {
	return &elliptical{
		cx:     g.CenterX,
		cy:     g.CenterY,
		invRx2: 1 / (g.RadiusX * g.RadiusX),
		invRy2: 1 / (g.RadiusY * g.RadiusY),
		spread: spread(pad),
	}
}

func (e *elliptical) Row(y int) {
	dy := float64(y) - e.cy
	e.dyTerm = dy * dy * e.invRy2
}

func (e *elliptical) Seek(x int) {
	e.dx = float64(x) - e.cx
}

func (e *elliptical) Next() int {
	v := round(math.Sqrt(e.dx*e.dx*e.invRx2+e.dyTerm) * ColorIndexScale)
	e.dx++
	return e.spread.apply(v)
}

// focal evaluates a circle whose focus is offset from the center. Ellipses
// reuse it by scaling y offsets with yScale = RadiusX/RadiusY, which maps the
// ellipse onto the circle of radius RadiusX.
type focal struct {
	focusX, focusY float64
	fx, fy         float64
	r2             float64
	yScale         float64
	spread         spread

	// The index is (sum * focalScale) * indexScale. Folding the two into
	// one factor changes rounding at half-way indices.
	focalScale, indexScale float64

	// Row terms.
	dy, dyy, dyfx, dyfy float64

	// Column terms, advanced incrementally.
	dx, cross float64
}

func newFocal(g Geometry, yScale float64, pad bool) *focal {
	r := g.RadiusX
	fx := g.FocusX - g.CenterX
	fy := (g.FocusY - g.CenterY) * yScale

	denom := r*r - (fx*fx + fy*fy)
	if denom == 0 {
		fx = towardZero(fx)
		fy = towardZero(fy)
		denom = r*r - (fx*fx + fy*fy)
	}
	if denom == 0 {
		fx, fy = 0, 0
		denom = r * r
	}

	return &focal{
		focusX:     g.FocusX,
		focusY:     g.FocusY,
		fx:         fx,
		fy:         fy,
		r2:         r * r,
		yScale:     yScale,
		focalScale: r / denom,
		indexScale: ColorIndexScale / r,
		spread:     spread(pad),
	}
}

// towardZero pulls v towards zero by focusAdjustment without crossing it.
func towardZero(v float64) float64 {
	switch {
	case v > 0:
		return max(v-focusAdjustment, 0)
	case v < 0:
		return min(v+focusAdjustment, 0)
	default:
		return v
	}
}

func (e *focal) Row(y int) {
	e.dy = (float64(y) - e.focusY) * e.yScale
	e.dyy = e.dy * e.dy
	e.dyfx = e.dy * e.fx
	e.dyfy = e.dy * e.fy
}

func (e *focal) Seek(x int) {
	e.dx = float64(x) - e.focusX
	e.cross = e.dx*e.fy - e.dyfx
}

func (e *focal) Next() int {
	root := math.Sqrt(math.Abs(e.r2*(e.dx*e.dx+e.dyy) - e.cross*e.cross))
	v := round((e.dx*e.fx + e.dyfy + root) * e.focalScale * e.indexScale)
	e.dx++
	e.cross += e.fy
	return e.spread.apply(v)
}
