// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
)

// Edge represents a non-horizontal line segment of a polygon outline.
type Edge struct {
	// YMin is the minimum Y coordinate (top of edge)
	YMin float64

	// YMax is the maximum Y coordinate (bottom of edge)
	YMax float64

	// XAtYMin is the X coordinate at YMin
	XAtYMin float64

	// DXDY is the inverse slope: change in X per unit Y
	DXDY float64

	// Winding indicates the direction: +1 for downward, -1 for upward
	Winding int8
}

// NewEdge creates an edge from (x0, y0) to (x1, y1). The winding is +1
// when the segment runs downward and -1 when it runs upward.
// Returns nil if the edge is horizontal (no Y extent).
func NewEdge(x0, y0, x1, y1 float64) *Edge {
	var winding int8 = 1
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		winding = -1
	}

	dy := y1 - y0
	if dy < Epsilon {
		return nil
	}

	return &Edge{
		YMin:    y0,
		YMax:    y1,
		XAtYMin: x0,
		DXDY:    (x1 - x0) / dy,
		Winding: winding,
	}
}

// Epsilon is the smallest vertical extent an edge may have.
const Epsilon = 1e-6

// XAtY calculates the X coordinate at a given Y value.
func (e *Edge) XAtY(y float64) float64 {
	return e.XAtYMin + (y-e.YMin)*e.DXDY
}

// Height returns the vertical extent of the edge.
func (e *Edge) Height() float64 {
	return e.YMax - e.YMin
}

// EdgeList is a collection of edges with utility methods.
type EdgeList struct {
	edges []Edge
}

// Reset clears the edge list for reuse.
func (el *EdgeList) Reset() {
	el.edges = el.edges[:0]
}

// AddLine adds a line segment as an edge. Horizontal segments are dropped.
func (el *EdgeList) AddLine(x0, y0, x1, y1 float64) {
	if e := NewEdge(x0, y0, x1, y1); e != nil {
		el.edges = append(el.edges, *e)
	}
}

// Len returns the number of edges.
func (el *EdgeList) Len() int {
	return len(el.edges)
}

// Edges returns the underlying slice.
func (el *EdgeList) Edges() []Edge {
	return el.edges
}

// Bounds returns the bounding rectangle of all edges.
func (el *EdgeList) Bounds() (minX, minY, maxX, maxY float64) {
	if len(el.edges) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64

	for i := range el.edges {
		e := &el.edges[i]

		minY = min(minY, e.YMin)
		maxY = max(maxY, e.YMax)

		x0 := e.XAtYMin
		x1 := e.XAtY(e.YMax)
		minX = min(minX, x0, x1)
		maxX = max(maxX, x0, x1)
	}

	return minX, minY, maxX, maxY
}
