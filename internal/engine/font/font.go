// Package font rasterizes the built-in bitmap font into a glyph atlas and
// lays out text as textured quads.
package font

import (
	"image"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstRune    = ' '
	lastRune     = '~'
	fallbackRune = '?'
	atlasColumns = 16
)

// Atlas is an alpha-only texture holding every printable ASCII glyph in a
// fixed grid.
type Atlas struct {
	Image       *image.Alpha
	GlyphWidth  int
	GlyphHeight int
}

// Glyph is one positioned, textured quad of laid-out text.
type Glyph struct {
	X, Y, W, H     float32
	U0, V0, U1, V1 float32
}

// New rasterizes basicfont.Face7x13 into an atlas.
func New() *Atlas {
	face := basicfont.Face7x13
	gw, gh := face.Advance, face.Height

	count := int(lastRune-firstRune) + 1
	rows := (count + atlasColumns - 1) / atlasColumns
	img := image.NewAlpha(image.Rect(0, 0, atlasColumns*gw, rows*gh))

	d := &xfont.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := firstRune; r <= lastRune; r++ {
		i := int(r - firstRune)
		x, y := (i%atlasColumns)*gw, (i/atlasColumns)*gh
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(r))
	}

	return &Atlas{Image: img, GlyphWidth: gw, GlyphHeight: gh}
}

// Size returns the atlas dimensions in pixels.
func (a *Atlas) Size() (int, int) {
	b := a.Image.Bounds()
	return b.Dx(), b.Dy()
}

// RGBA expands the atlas to white texels carrying glyph coverage in alpha.
func (a *Atlas) RGBA() *image.RGBA {
	b := a.Image.Bounds()
	out := image.NewRGBA(b)
	for i, cov := range a.Image.Pix {
		out.Pix[i*4+0] = 255
		out.Pix[i*4+1] = 255
		out.Pix[i*4+2] = 255
		out.Pix[i*4+3] = cov
	}
	return out
}

// UV returns the texture coordinates of r's cell. Runes outside printable
// ASCII map to '?'.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstRune || r > lastRune {
		r = fallbackRune
	}
	i := int(r - firstRune)
	w, h := a.Size()

	x := float32((i % atlasColumns) * a.GlyphWidth)
	y := float32((i / atlasColumns) * a.GlyphHeight)
	return x / float32(w), y / float32(h),
		(x + float32(a.GlyphWidth)) / float32(w), (y + float32(a.GlyphHeight)) / float32(h)
}

// metrics returns the per-glyph advance, the inter-glyph spacing and the
// line height for a font size in pixels.
func (a *Atlas) metrics(size int) (advance, spacing, lineHeight float32) {
	scale := float32(size) / float32(a.GlyphHeight)
	return float32(a.GlyphWidth) * scale, float32(size) / 10, float32(size)
}

// Measure returns the pixel extent of text drawn at size. Lines are split on '\n'.
func (a *Atlas) Measure(text string, size int) (int, int) {
	if text == "" || size <= 0 {
		return 0, 0
	}
	advance, spacing, lineHeight := a.metrics(size)

	var width float32
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		n := float32(len([]rune(line)))
		if n == 0 {
			continue
		}
		if w := n*advance + (n-1)*spacing; w > width {
			width = w
		}
	}
	return int(width), int(lineHeight * float32(len(lines)))
}

// Layout positions text with its top-left corner at (x, y).
func (a *Atlas) Layout(text string, x, y float32, size int) []Glyph {
	if size <= 0 {
		return nil
	}
	advance, spacing, lineHeight := a.metrics(size)

	glyphs := make([]Glyph, 0, len(text))
	curX, curY := x, y
	for _, r := range text {
		if r == '\n' {
			curX = x
			curY += lineHeight
			continue
		}
		if r != ' ' {
			u0, v0, u1, v1 := a.UV(r)
			glyphs = append(glyphs, Glyph{
				X: curX, Y: curY, W: advance, H: lineHeight,
				U0: u0, V0: v0, U1: u1, V1: v1,
			})
		}
		curX += advance + spacing
	}
	return glyphs
}
