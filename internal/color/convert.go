package color

import "math"

// srgbDecode maps an sRGB-encoded component in [0,1] to linear light.
func srgbDecode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// srgbEncode maps a linear-light component in [0,1] to sRGB.
func srgbEncode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// MixLinear interpolates two sRGB colors in linear light and returns the
// sRGB result. Alpha is interpolated directly.
func MixLinear(a, b ColorF32, t float32) ColorF32 {
	mix := func(x, y float32) float32 {
		lx, ly := srgbDecode(float64(x)), srgbDecode(float64(y))
		return float32(srgbEncode(lx + float64(t)*(ly-lx)))
	}
	return ColorF32{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: a.A + t*(b.A-a.A),
	}
}

// F32ToU8 converts each component from [0,1] to [0,255] with rounding.
// Out-of-range components are clamped.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
