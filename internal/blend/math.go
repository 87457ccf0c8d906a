// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package blend composites gradient colors into packed 32-bit ARGB pixels.
//
// Three strategies exist: overwrite for fully covered opaque sources, linear
// per-channel interpolation, and linear interpolation followed by per-channel
// gamma lookup. Alpha always comes from a precomputed AlphaCache.
//
// References:
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255Exact divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula, which gives exact results for all
// products of two bytes.
func div255Exact(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255Exact multiplies two bytes and divides by 255 exactly.
func mulDiv255Exact(a, b byte) byte {
	return byte(div255Exact(uint16(a) * uint16(b)))
}
