// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts polygon outlines into the per-scanline coverage
// cells consumed by radial.Filler.
//
// Outlines are given in 26.6 fixed-point device coordinates. Every edge is
// walked pixel by pixel, accumulating the signed height it spans (cover)
// and the part of that height lying left of the edge inside the pixel
// (area). Cells reports the accumulated values scaled to the filler's
// units: 256 per full pixel height, with 9 fractional bits for area.
//
// Usage:
//
//	r := raster.NewRasterizer(w, h)
//	r.AddEllipse(cx, cy, rx, ry)
//	rows := r.Cells()
package raster

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/radial"
)

const (
	// coverageOne is the cell coverage of one full pixel height. One
	// winding folds to alpha 255 under both fill rules and two windings
	// cancel exactly under even-odd.
	coverageOne = 256

	// areaOne is the cell area unit for one full pixel height.
	areaOne = coverageOne << 9
)

// accum is the unscaled contribution of all edges to one pixel.
type accum struct {
	cover float64
	area  float64
}

// Rasterizer accumulates polygon outlines over a width x height pixel grid.
//
// Subpaths are implicitly closed. Coverage left of column 0 is folded into
// column 0; coverage right of the grid is kept in one extra column so that
// every row's running coverage returns to zero.
type Rasterizer struct {
	width, height int

	edges EdgeList

	start, cur fixed.Point26_6
	open       bool

	// rows are allocated on first touch, width+1 entries each.
	rows [][]accum
}

// NewRasterizer creates a rasterizer for a width x height grid.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		rows:   make([][]accum, height),
	}
}

// Size returns the grid dimensions.
func (r *Rasterizer) Size() (width, height int) {
	return r.width, r.height
}

// Reset discards all outlines.
func (r *Rasterizer) Reset() {
	r.edges.Reset()
	r.open = false
}

// MoveTo starts a new subpath at p, closing the current one.
func (r *Rasterizer) MoveTo(p fixed.Point26_6) {
	r.Close()
	r.start, r.cur = p, p
	r.open = true
}

// LineTo adds a straight edge from the current point to p.
func (r *Rasterizer) LineTo(p fixed.Point26_6) {
	if !r.open {
		r.MoveTo(p)
		return
	}
	r.edges.AddLine(toFloat(r.cur.X), toFloat(r.cur.Y), toFloat(p.X), toFloat(p.Y))
	r.cur = p
}

// Close adds the edge back to the start of the current subpath.
func (r *Rasterizer) Close() {
	if !r.open {
		return
	}
	if r.cur != r.start {
		r.LineTo(r.start)
	}
	r.open = false
}

// AddPolygon adds a closed polygon through pts, given in pixels.
func (r *Rasterizer) AddPolygon(pts ...[2]float64) {
	for i, p := range pts {
		if i == 0 {
			r.MoveTo(Pt(p[0], p[1]))
		} else {
			r.LineTo(Pt(p[0], p[1]))
		}
	}
	r.Close()
}

// AddRect adds the axis-aligned rectangle [x0, x1) x [y0, y1).
func (r *Rasterizer) AddRect(x0, y0, x1, y1 float64) {
	r.AddPolygon([2]float64{x0, y0}, [2]float64{x1, y0}, [2]float64{x1, y1}, [2]float64{x0, y1})
}

// AddEllipse adds an axis-aligned ellipse approximated by a polygon whose
// vertices lie on the ellipse and whose sagitta stays below a quarter pixel.
func (r *Rasterizer) AddEllipse(cx, cy, rx, ry float64) {
	n := ellipseSegments(max(rx, ry))
	r.MoveTo(Pt(cx+rx, cy))
	for i := 1; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		r.LineTo(Pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a)))
	}
	r.Close()
}

// ellipseSegments returns the vertex count for a circle of radius rad.
func ellipseSegments(rad float64) int {
	const tolerance = 0.25
	if rad <= tolerance {
		return 8
	}
	step := 2 * math.Acos(1-tolerance/rad)
	return max(int(math.Ceil(2*math.Pi/step)), 8)
}

// Pt converts pixel coordinates to a 26.6 point.
func Pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Cells closes any open subpath and returns the coverage cells of all
// outlines added so far, one row per grid scanline.
func (r *Rasterizer) Cells() *radial.RowTable {
	t := radial.NewRowTable(r.height)
	r.CellsInto(t)
	return t
}

// CellsInto is like Cells but fills t, which is reset first and must have
// at least as many rows as the grid.
func (r *Rasterizer) CellsInto(t *radial.RowTable) {
	r.Close()
	t.Reset()
	for i := range r.rows {
		clear(r.rows[i])
	}
	for i := range r.edges.Edges() {
		r.accumulate(&r.edges.Edges()[i])
	}
	for y, row := range r.rows {
		if row != nil {
			emitRow(t, y, row)
		}
	}
}

// emitRow converts one row of accumulated float coverage into cells.
// Coverage is rounded cumulatively so rounding errors never build up
// along the row.
func emitRow(t *radial.RowTable, y int, row []accum) {
	var acc float64
	var prev int32
	for x, a := range row {
		if a.cover == 0 && a.area == 0 {
			continue
		}
		acc += a.cover
		total := int32(math.Round(acc * coverageOne))
		delta := total - prev
		prev = total

		// Chosen so that ((total << 9) - area) >> 9 is the pixel's own
		// coverage, (acc - a.area) * coverageOne.
		area := int32(math.Round(float64(total)*(1<<9) - (acc-a.area)*areaOne))
		if delta != 0 || area != 0 {
			t.Add(y, x, area, delta)
		}
	}
}

// accumulate walks the rows spanned by e, clipped to the grid.
func (r *Rasterizer) accumulate(e *Edge) {
	y0 := max(e.YMin, 0)
	y1 := min(e.YMax, float64(r.height))
	if y0 >= y1 {
		return
	}
	sign := float64(e.Winding)

	for row := int(math.Floor(y0)); float64(row) < y1; row++ {
		ya := max(y0, float64(row))
		yb := min(y1, float64(row+1))
		if yb <= ya {
			continue
		}
		r.rowSegment(row, e.XAtY(ya), e.XAtY(yb), sign*(yb-ya))
	}
}

// rowSegment splits the part of an edge inside one row at pixel
// boundaries. dy is the signed height of the part.
func (r *Rasterizer) rowSegment(row int, xa, xb, dy float64) {
	if xa > xb {
		xa, xb = xb, xa
	}
	cells := r.row(row)

	if xb-xa < Epsilon {
		c := int(math.Floor(xa))
		r.deposit(cells, c, dy, xa-float64(c))
		return
	}

	invDX := 1 / (xb - xa)
	for c := int(math.Floor(xa)); float64(c) < xb; c++ {
		px0 := max(xa, float64(c))
		px1 := min(xb, float64(c+1))
		if px1 <= px0 {
			continue
		}
		part := dy * (px1 - px0) * invDX
		fx := (px0+px1)/2 - float64(c)
		r.deposit(cells, c, part, fx)
	}
}

// deposit adds a piece of edge with height dy at mean x-fraction fx in
// column c, clamping columns outside the grid.
func (r *Rasterizer) deposit(cells []accum, c int, dy, fx float64) {
	switch {
	case c < 0:
		c, fx = 0, 0
	case c >= r.width:
		c, fx = r.width, 0
	}
	cells[c].cover += dy
	cells[c].area += dy * fx
}

func (r *Rasterizer) row(y int) []accum {
	if r.rows[y] == nil {
		r.rows[y] = make([]accum, r.width+1)
	}
	return r.rows[y]
}
