// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

// Pixels are packed as 0xAARRGGBB with straight (non-premultiplied) color.
// Red and blue are interpolated together in a single word; the green channel
// is interpolated on its own. All arithmetic is modulo 2^32, which keeps the
// interleaved channels exact after masking.
const (
	maskRB    = 0x00FF00FF
	maskG     = 0x0000FF00
	maskAlpha = 0xFF000000
)

// OpaqueThreshold is the effective coverage at and above which the source
// pixel replaces the destination outright.
const OpaqueThreshold = 254

// AlphaCache maps (dstAlpha<<8)+coverage to the composited alpha.
type AlphaCache [1 << 16]byte

// Blender composites a source pixel onto a destination pixel at the given
// coverage (0-255) and returns the new destination value.
type Blender interface {
	Blend(dst, src, coverage uint32) uint32
}

// Effective scales coverage by the source pixel's alpha.
func Effective(coverage, src uint32) uint32 {
	return (coverage * (src >> 24)) >> 8
}

// lerpG interpolates the green channel, returning it in bits 0-7.
func lerpG(dst, src, coverage uint32) uint32 {
	dstG := (dst >> 8) & 0xFF
	srcG := (src >> 8) & 0xFF
	return ((srcG-dstG)*coverage)>>8 + dstG
}

// lerpRB interpolates red and blue together, returning them in bits 16-23
// and 0-7. Bits outside maskRB are garbage.
func lerpRB(dst, src, coverage uint32) uint32 {
	dstRB := dst & maskRB
	srcRB := src & maskRB
	return ((srcRB-dstRB)*coverage)>>8 + dstRB
}

// Linear blends each channel linearly towards the source.
type Linear struct {
	Alpha *AlphaCache
}

// Blend implements Blender.
func (l Linear) Blend(dst, src, coverage uint32) uint32 {
	a := uint32(l.Alpha[(dst>>24)<<8+coverage]) << 24
	return a |
		(lerpG(dst, src, coverage)<<8)&maskG |
		lerpRB(dst, src, coverage)&maskRB
}

// Gamma blends like Linear and then maps each color channel through its
// lookup table.
type Gamma struct {
	Alpha   *AlphaCache
	R, G, B *[256]byte
}

// Blend implements Blender.
func (g Gamma) Blend(dst, src, coverage uint32) uint32 {
	a := uint32(g.Alpha[(dst>>24)<<8+coverage]) << 24
	green := lerpG(dst, src, coverage) & 0xFF
	rb := lerpRB(dst, src, coverage)
	red := (rb >> 16) & 0xFF
	blue := rb & 0xFF
	return a |
		uint32(g.R[red])<<16 |
		uint32(g.G[green])<<8 |
		uint32(g.B[blue])
}

// Over writes src when the coverage, scaled by the source alpha, reaches
// OpaqueThreshold and blends otherwise.
func Over[B Blender](b B, dst, src, coverage uint32) uint32 {
	eff := Effective(coverage, src)
	if eff >= OpaqueThreshold {
		return src
	}
	return b.Blend(dst, src, eff)
}

// OverOpaque is Over for sources known to be fully opaque: the decision
// between overwrite and blend rests on the coverage alone.
func OverOpaque[B Blender](b B, dst, src, coverage uint32) uint32 {
	if coverage >= OpaqueThreshold {
		return src
	}
	return b.Blend(dst, src, coverage)
}

// NewAlphaCache builds the source-over alpha table:
// out = dst + (255-dst)*coverage/255.
func NewAlphaCache() *AlphaCache {
	var c AlphaCache
	for d := 0; d < 256; d++ {
		for cov := 0; cov < 256; cov++ {
			c[d<<8+cov] = byte(d) + mulDiv255Exact(byte(255-d), byte(cov))
		}
	}
	return &c
}
