package colors

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		packed uint32
		want   Color
	}{
		{0x181818AA, Color{R: 0x18, G: 0x18, B: 0x18, A: 0xAA}},
		{0xFF0000FF, Color{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}},
		{0x00000000, Blank},
		{0x12345678, Color{R: 0x12, G: 0x34, B: 0x56, A: 0x78}},
	}

	for _, tt := range tests {
		if got := Hex(tt.packed); got != tt.want {
			t.Errorf("Hex(%#08x) = %+v, want %+v", tt.packed, got, tt.want)
		}
		if got := tt.want.Uint32(); got != tt.packed {
			t.Errorf("%+v.Uint32() = %#08x, want %#08x", tt.want, got, tt.packed)
		}
	}
}

func TestConstructorsAgree(t *testing.T) {
	want := Hex(0xE62937FF)
	if want != Red {
		t.Errorf("Hex(0xE62937FF) = %v, want Red %v", want, Red)
	}
	if got := RGBA(230, 41, 55, 255); got != want {
		t.Errorf("RGBA() = %v, want %v", got, want)
	}
	if got := FromBytes([4]byte{230, 41, 55, 255}); got != want {
		t.Errorf("FromBytes() = %v, want %v", got, want)
	}
	got, err := FromSlice([]byte{230, 41, 55, 255})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if got != want {
		t.Errorf("FromSlice() = %v, want %v", got, want)
	}
}

func TestFromSliceWrongLength(t *testing.T) {
	for _, b := range [][]byte{nil, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		if _, err := FromSlice(b); err == nil {
			t.Errorf("FromSlice(%v) should fail", b)
		}
	}
}

func TestImageColorInterface(t *testing.T) {
	var c color.Color = Color{R: 255, G: 0, B: 0, A: 255}
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	if got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("NRGBA conversion = %+v", got)
	}

	half := Color{R: 255, G: 255, B: 255, A: 0}
	r, g, b, a := half.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("transparent RGBA() = %d %d %d %d, want zeros", r, g, b, a)
	}
}

func TestNormalizedAndFade(t *testing.T) {
	n := White.Normalized()
	if n != [4]float32{1, 1, 1, 1} {
		t.Errorf("White.Normalized() = %v", n)
	}
	if got := White.Fade(0).A; got != 0 {
		t.Errorf("Fade(0).A = %d, want 0", got)
	}
	if got := White.Fade(2).A; got != 255 {
		t.Errorf("Fade(2).A = %d, want 255", got)
	}
}

func TestString(t *testing.T) {
	if got := Hex(0x181818AA).String(); got != "#181818AA" {
		t.Errorf("String() = %q", got)
	}
}
