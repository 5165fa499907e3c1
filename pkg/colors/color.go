// Package colors provides the 8-bit RGBA color type used by every draw call.
package colors

import "fmt"

// Color is a flat, non-premultiplied RGBA byte quad.
type Color struct {
	R, G, B, A uint8
}

// Palette of the native library's named colors.
var (
	LightGray  = Color{200, 200, 200, 255}
	Gray       = Color{130, 130, 130, 255}
	DarkGray   = Color{80, 80, 80, 255}
	Yellow     = Color{253, 249, 0, 255}
	Gold       = Color{255, 203, 0, 255}
	Orange     = Color{255, 161, 0, 255}
	Pink       = Color{255, 109, 194, 255}
	Red        = Color{230, 41, 55, 255}
	Maroon     = Color{190, 33, 55, 255}
	Green      = Color{0, 228, 48, 255}
	Lime       = Color{0, 158, 47, 255}
	DarkGreen  = Color{0, 117, 44, 255}
	SkyBlue    = Color{102, 191, 255, 255}
	Blue       = Color{0, 121, 241, 255}
	DarkBlue   = Color{0, 82, 172, 255}
	Purple     = Color{200, 122, 255, 255}
	Violet     = Color{135, 60, 190, 255}
	DarkPurple = Color{112, 31, 126, 255}
	Beige      = Color{211, 176, 131, 255}
	Brown      = Color{127, 106, 79, 255}
	DarkBrown  = Color{76, 63, 47, 255}
	White      = Color{255, 255, 255, 255}
	Black      = Color{0, 0, 0, 255}
	Blank      = Color{0, 0, 0, 0}
	Magenta    = Color{255, 0, 255, 255}
	RayWhite   = Color{245, 245, 245, 255}
)

// Hex unpacks a 0xRRGGBBAA literal: bits 31-24 red, 23-16 green,
// 15-8 blue, 7-0 alpha.
func Hex(packed uint32) Color {
	return Color{
		R: uint8(packed >> 24),
		G: uint8(packed >> 16),
		B: uint8(packed >> 8),
		A: uint8(packed),
	}
}

// RGBA creates a color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromBytes creates a color from an [r, g, b, a] array.
func FromBytes(b [4]byte) Color {
	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// FromSlice creates a color from a byte slice that must hold exactly four bytes.
func FromSlice(b []byte) (Color, error) {
	if len(b) != 4 {
		return Color{}, fmt.Errorf("color needs 4 bytes, got %d", len(b))
	}
	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// Uint32 packs the color back into 0xRRGGBBAA.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// RGBA implements image/color.Color. Channels are scaled to 16 bits and
// alpha-premultiplied as that interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return
}

// Normalized returns the channels as floats in [0, 1] for shader input.
func (c Color) Normalized() [4]float32 {
	return [4]float32{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
		float32(c.A) / 255.0,
	}
}

// Fade returns a copy with alpha scaled by factor, clamped to [0, 1].
func (c Color) Fade(factor float32) Color {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	c.A = uint8(255 * factor)
	return c
}

// String formats the color as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", c.Uint32())
}
