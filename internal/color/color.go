// Package color provides the color types, packing and lookup tables used to
// resolve gradient ramps and gamma-correct blended pixels.
package color

// ColorF32 represents a color with float32 components in [0,1].
// RGB components are in the color space indicated by context.
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a color with uint8 components in [0,255].
// Alpha is always linear (never gamma-encoded).
type ColorU8 struct {
	R, G, B, A uint8
}

// PackARGB packs c as a 0xAARRGGBB pixel.
func PackARGB(c ColorU8) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// UnpackARGB splits a 0xAARRGGBB pixel into its components.
func UnpackARGB(p uint32) ColorU8 {
	return ColorU8{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// ScaleAlpha multiplies the alpha of a packed pixel by opacity/255.
func ScaleAlpha(p uint32, opacity uint8) uint32 {
	if opacity == 255 {
		return p
	}
	a := (p >> 24) * uint32(opacity)
	a = (a + 1 + ((a + 1) >> 8)) >> 8
	return a<<24 | p&0x00FFFFFF
}
