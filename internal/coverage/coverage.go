// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package coverage walks per-scanline coverage cells and folds the signed
// running coverage into 0-255 alpha values.
//
// A row is a singly linked list of cells stored in an arena and linked by
// index. Walking a row left to right yields two kinds of spans:
//
//   - runs: the pixels strictly between the previous cell and the current
//     cell, all covered by the running total accumulated so far
//   - boundary pixels: the pixel at a cell's X, whose partial coverage is
//     refined by the cell's Area
//
// Coverage values use 255 for one full pixel height. Area carries 9
// fractional bits, so the boundary coverage is
// ((cover << 9) - area) >> 9.
package coverage

// NoCell terminates a row's cell list.
const NoCell int32 = -1

// areaShift is the number of fractional bits carried by Cell.Area.
const areaShift = 9

// Cell is one coverage change within a scanline.
type Cell struct {
	// X is the pixel column of the change.
	X int32

	// Area is the signed sub-pixel area subtracted from the running
	// coverage at the boundary pixel, with 9 fractional bits.
	Area int32

	// Coverage is the signed delta applied to the running total as the
	// scan crosses this cell.
	Coverage int32

	// Next is the arena index of the next cell in the same row, or NoCell.
	Next int32
}

// Rule folds an absolute coverage value into an alpha value.
type Rule int

const (
	// NonZero clamps coverage to 255.
	NonZero Rule = iota
	// EvenOdd folds coverage with a triangle wave of period 512.
	EvenOdd
)

// Abs returns |v| using the twos-complement trick.
func Abs(v int32) int32 {
	m := v >> 31
	return (v ^ m) - m
}

// FoldNonZero converts signed coverage to alpha under the non-zero rule.
func FoldNonZero(v int32) uint32 {
	v = Abs(v)
	if v > 255 {
		v = 255
	}
	return uint32(v) //nolint:gosec // G115: v is in [0, 255]
}

// FoldEvenOdd converts signed coverage to alpha under the even-odd rule.
func FoldEvenOdd(v int32) uint32 {
	v = Abs(v)
	v &= 511
	if v >= 256 {
		v = 512 - v - 1
	}
	return uint32(v) //nolint:gosec // G115: v is in [0, 255]
}

// Folder returns the fold function for the rule.
func (r Rule) Folder() func(int32) uint32 {
	if r == EvenOdd {
		return FoldEvenOdd
	}
	return FoldNonZero
}

// CellCoverage returns the unfolded coverage of the boundary pixel of a
// cell, given the running total after the cell's delta was applied.
func CellCoverage(cover, area int32) int32 {
	return ((cover << areaShift) - area) >> areaShift
}

// Sink receives the spans produced by Walk.
type Sink interface {
	// Run paints pixels [x0, x1) with the same alpha.
	Run(x0, x1 int, alpha uint32)

	// Pixel paints the boundary pixel at x.
	Pixel(x int, alpha uint32)
}

// Walk visits the row starting at head and reports non-transparent runs
// and boundary pixels to sink in ascending X order.
func Walk(cells []Cell, head int32, fold func(int32) uint32, sink Sink) {
	var cover int32
	prev := -1
	for i := head; i != NoCell; {
		c := &cells[i]
		x := int(c.X)

		if x > prev+1 && cover != 0 {
			if alpha := fold(cover); alpha != 0 {
				sink.Run(prev+1, x, alpha)
			}
		}

		cover += c.Coverage
		if alpha := fold(CellCoverage(cover, c.Area)); alpha != 0 {
			sink.Pixel(x, alpha)
		}

		prev = x
		i = c.Next
	}
}
