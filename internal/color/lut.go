package color

import "math"

// IdentityLUT returns a table mapping every byte to itself.
func IdentityLUT() *[256]byte {
	var lut [256]byte
	for i := range lut {
		lut[i] = byte(i)
	}
	return &lut
}

// GammaLUT returns a table applying out = 255 * (in/255)^(1/gamma).
// A gamma of 1 yields the identity table. Non-positive gamma is treated as 1.
func GammaLUT(gamma float64) *[256]byte {
	if gamma <= 0 || gamma == 1 {
		return IdentityLUT()
	}
	var lut [256]byte
	inv := 1 / gamma
	for i := range lut {
		lut[i] = byte(min(math.Pow(float64(i)/255, inv)*255+0.5, 255))
	}
	return &lut
}

// SRGBEncodeLUT returns a table treating its input as linear light and
// producing the sRGB-encoded byte.
func SRGBEncodeLUT() *[256]byte {
	var lut [256]byte
	for i := range lut {
		lut[i] = byte(min(srgbEncode(float64(i)/255)*255+0.5, 255))
	}
	return &lut
}
