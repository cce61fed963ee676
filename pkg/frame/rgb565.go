package frame

import (
	"image"
	"image/color"
)

// RGB565Color is a 16-bit packed color with 5 bits red, 6 bits green and 5 bits blue.
type RGB565Color uint16

// PackRGB565 drops the low bits of 8-bit channels to fit them in 5-6-5.
func PackRGB565(r, g, b uint8) RGB565Color {
	return RGB565Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB8 expands c back to 8-bit channels by replicating the high bits.
func (c RGB565Color) RGB8() (r, g, b uint8) {
	r5 := uint8(c>>11) & 0x1f
	g6 := uint8(c>>5) & 0x3f
	b5 := uint8(c) & 0x1f
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

func (c RGB565Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB8()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

// RGB565Model quantizes any color to RGB565Color. Alpha is discarded.
var RGB565Model color.Model = color.ModelFunc(rgb565Model)

func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(RGB565Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return PackRGB565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB565 is an in-memory image whose pixels are RGB565Color values.
type RGB565 struct {
	// Pix holds the image's pixels as little-endian uint16 values. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*2].
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewRGB565 returns a new RGB565 image with the given bounds.
func NewRGB565(r image.Rectangle) *RGB565 {
	w, h := r.Dx(), r.Dy()
	return &RGB565{
		Pix:    make([]uint8, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

func (p *RGB565) ColorModel() color.Model {
	return RGB565Model
}

func (p *RGB565) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB565) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

func (p *RGB565) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

func (p *RGB565) RGB565At(x, y int) RGB565Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return 0
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+2 : i+2]
	return RGB565Color(uint16(s[0]) | uint16(s[1])<<8)
}

func (p *RGB565) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	v := RGB565Model.Convert(c).(RGB565Color)
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+2 : i+2]
	s[0] = uint8(v)
	s[1] = uint8(v >> 8)
}

// Opaque reports true; RGB565 has no alpha channel. PNG encoders use this to
// pick an RGB color type.
func (p *RGB565) Opaque() bool {
	return true
}
