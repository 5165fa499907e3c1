package font

import (
	"image"
	"math"
	"testing"
)

func cellCoverage(a *Atlas, r rune) int {
	i := int(r - firstRune)
	x0, y0 := (i%atlasColumns)*a.GlyphWidth, (i/atlasColumns)*a.GlyphHeight
	cell := a.Image.SubImage(image.Rect(x0, y0, x0+a.GlyphWidth, y0+a.GlyphHeight)).(*image.Alpha)

	sum := 0
	for y := cell.Rect.Min.Y; y < cell.Rect.Max.Y; y++ {
		for x := cell.Rect.Min.X; x < cell.Rect.Max.X; x++ {
			if cell.AlphaAt(x, y).A > 0 {
				sum++
			}
		}
	}
	return sum
}

func TestAtlasRasterizesGlyphs(t *testing.T) {
	a := New()

	if a.GlyphWidth != 7 || a.GlyphHeight != 13 {
		t.Fatalf("glyph size = %dx%d, want 7x13", a.GlyphWidth, a.GlyphHeight)
	}
	if w, h := a.Size(); w != 16*7 || h != 6*13 {
		t.Errorf("atlas size = %dx%d", w, h)
	}

	if cellCoverage(a, ' ') != 0 {
		t.Error("space cell should be empty")
	}
	for _, r := range "A#~0" {
		if cellCoverage(a, r) == 0 {
			t.Errorf("glyph %q was not rasterized", r)
		}
	}
}

func TestUV(t *testing.T) {
	a := New()

	u0, v0, u1, v1 := a.UV('A') // index 33: column 1, row 2
	if u0 != 7.0/112 || u1 != 14.0/112 || v0 != 26.0/78 || v1 != 39.0/78 {
		t.Errorf("UV('A') = %v %v %v %v", u0, v0, u1, v1)
	}

	q0, q1, q2, q3 := a.UV('?')
	for _, r := range []rune{'\t', 'é', '世'} {
		if x0, x1, x2, x3 := a.UV(r); x0 != q0 || x1 != q1 || x2 != q2 || x3 != q3 {
			t.Errorf("UV(%q) should fall back to '?'", r)
		}
	}
}

func TestMeasure(t *testing.T) {
	a := New()

	tests := []struct {
		text  string
		size  int
		wantW int
		wantH int
	}{
		{"", 20, 0, 0},
		{"a", 0, 0, 0},
		{"a", 26, 14, 26},
		{"ab", 26, 30, 26},    // 14 + 2.6 + 14
		{"a\nbb", 26, 30, 52}, // widest line wins
		{"hé", 26, 30, 26},    // counts runes, not bytes
	}
	for _, tt := range tests {
		w, h := a.Measure(tt.text, tt.size)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("Measure(%q, %d) = %d,%d, want %d,%d", tt.text, tt.size, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestLayout(t *testing.T) {
	a := New()

	glyphs := a.Layout("a b\nc", 10, 20, 26)
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3 (spaces emit no quad)", len(glyphs))
	}

	if g := glyphs[0]; g.X != 10 || g.Y != 20 || g.W != 14 || g.H != 26 {
		t.Errorf("first glyph = %+v", g)
	}
	// 'b' sits two advances plus two spacings in.
	if want := float32(10 + 2*(14+2.6)); math.Abs(float64(glyphs[1].X-want)) > 1e-4 {
		t.Errorf("second glyph X = %v, want %v", glyphs[1].X, want)
	}
	if g := glyphs[2]; g.X != 10 || g.Y != 46 {
		t.Errorf("glyph after newline = %+v", g)
	}

	if a.Layout("x", 0, 0, 0) != nil {
		t.Error("zero size should produce nothing")
	}
}

func TestRGBA(t *testing.T) {
	a := New()
	rgba := a.RGBA()

	if rgba.Bounds() != a.Image.Bounds() {
		t.Fatalf("bounds = %v, want %v", rgba.Bounds(), a.Image.Bounds())
	}
	for i, cov := range a.Image.Pix {
		px := rgba.Pix[i*4 : i*4+4]
		if px[0] != 255 || px[1] != 255 || px[2] != 255 || px[3] != cov {
			t.Fatalf("texel %d = %v, want white with alpha %d", i, px, cov)
		}
	}
}
