package radial

import (
	"image"
	"image/color"
)

// Buffer is a rectangular view into packed 0xAARRGGBB pixels.
//
// Pixel (x, y) of the view lives at Data[StartOffset + y*Stride + x].
// Colors are straight (non-premultiplied).
type Buffer struct {
	Data        []uint32
	StartOffset int
	Stride      int
	Width       int
	Height      int
}

// NewBuffer creates a transparent buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Data:   make([]uint32, width*height),
		Stride: width,
		Width:  width,
		Height: height,
	}
}

// Sub returns a view of the rectangle r, clipped to the buffer. The view
// shares pixels with b.
func (b *Buffer) Sub(r image.Rectangle) *Buffer {
	r = r.Intersect(b.Bounds())
	return &Buffer{
		Data:        b.Data,
		StartOffset: b.StartOffset + r.Min.Y*b.Stride + r.Min.X,
		Stride:      b.Stride,
		Width:       r.Dx(),
		Height:      r.Dy(),
	}
}

// Index returns the position of pixel (x, y) in Data.
func (b *Buffer) Index(x, y int) int {
	return b.StartOffset + y*b.Stride + x
}

// Row returns the pixels of row y.
func (b *Buffer) Row(y int) []uint32 {
	i := b.Index(0, y)
	return b.Data[i : i+b.Width]
}

// Pixel returns the packed pixel at (x, y), or 0 outside the buffer.
func (b *Buffer) Pixel(x, y int) uint32 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.Data[b.Index(x, y)]
}

// SetPixel sets the packed pixel at (x, y). Writes outside the buffer are
// ignored.
func (b *Buffer) SetPixel(x, y int, p uint32) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Data[b.Index(x, y)] = p
}

// Clear fills the entire buffer with a color.
func (b *Buffer) Clear(c RGBA) {
	p := c.ARGB()
	for y := 0; y < b.Height; y++ {
		row := b.Row(y)
		for x := range row {
			row[x] = p
		}
	}
}

// ToImage converts the buffer to an image.NRGBA.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		pix := img.Pix[y*img.Stride:]
		for x, p := range b.Row(y) {
			pix[4*x+0] = uint8(p >> 16)
			pix[4*x+1] = uint8(p >> 8)
			pix[4*x+2] = uint8(p)
			pix[4*x+3] = uint8(p >> 24)
		}
	}
	return img
}

// FromImage creates a buffer from an image.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			b.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)).ARGB())
		}
	}
	return b
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	p := b.Pixel(x, y)
	return color.NRGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: uint8(p >> 24)}
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}
