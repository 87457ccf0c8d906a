package radial

import (
	"sync"

	"github.com/gogpu/radial/internal/blend"
	icolor "github.com/gogpu/radial/internal/color"
)

// AlphaCache maps (dstAlpha<<8)+coverage to the source-over output alpha
// dstAlpha + (255-dstAlpha)*coverage/255.
type AlphaCache = blend.AlphaCache

// NewAlphaCache builds a source-over alpha table.
func NewAlphaCache() *AlphaCache {
	return blend.NewAlphaCache()
}

// DefaultAlphaCache returns the shared alpha table used when a Filler is
// created without WithAlphaCache. It must not be modified.
var DefaultAlphaCache = sync.OnceValue(NewAlphaCache)

// GammaTables are per-channel lookup tables applied to the red, green and
// blue channels after a partial-coverage blend.
type GammaTables struct {
	R, G, B [256]byte
}

// NewGammaTables returns tables applying out = 255 * (in/255)^(1/gamma) to
// all three channels.
func NewGammaTables(gamma float64) *GammaTables {
	return NewGammaTablesRGB(gamma, gamma, gamma)
}

// NewGammaTablesRGB is like NewGammaTables with a separate exponent per
// channel.
func NewGammaTablesRGB(r, g, b float64) *GammaTables {
	return &GammaTables{
		R: *icolor.GammaLUT(r),
		G: *icolor.GammaLUT(g),
		B: *icolor.GammaLUT(b),
	}
}

// IdentityGammaTables returns tables that leave every channel unchanged.
func IdentityGammaTables() *GammaTables {
	id := icolor.IdentityLUT()
	return &GammaTables{R: *id, G: *id, B: *id}
}

// SRGBGammaTables returns tables that sRGB-encode each channel.
func SRGBGammaTables() *GammaTables {
	lut := icolor.SRGBEncodeLUT()
	return &GammaTables{R: *lut, G: *lut, B: *lut}
}
