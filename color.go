package radial

import (
	"image/color"

	icolor "github.com/gogpu/radial/internal/color"
)

// RGBA represents a straight (non-premultiplied) color with red, green,
// blue, and alpha components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	u := c.u8()
	return color.NRGBA{R: u.R, G: u.G, B: u.B, A: u.A}
}

// ARGB packs the color as a 0xAARRGGBB buffer pixel.
func (c RGBA) ARGB() uint32 {
	return icolor.PackARGB(c.u8())
}

func (c RGBA) u8() icolor.ColorU8 {
	return icolor.F32ToU8(c.f32())
}

func (c RGBA) f32() icolor.ColorF32 {
	return icolor.ColorF32{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// FromARGB unpacks a 0xAARRGGBB buffer pixel.
func FromARGB(p uint32) RGBA {
	u := icolor.UnpackARGB(p)
	return RGBA{
		R: float64(u.R) / 255,
		G: float64(u.G) / 255,
		B: float64(u.B) / 255,
		A: float64(u.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
	case 4: // RGBA
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
		a = parseHex(hex[3:4]) * 17
	case 6: // RRGGBB
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
	case 8: // RRGGBBAA
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
		a = parseHex(hex[6:8])
	default:
		return Black
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex stops at the first non-hex digit.
func parseHex(s string) uint32 {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return val / 16
		}
	}
	return val
}

// Opaque reports whether the alpha component is 1.
func (c RGBA) Opaque() bool {
	return c.A >= 1
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)
