// Package texture decodes TGA files and normalizes decoded images to RGBA
// before they are uploaded to the GPU.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"
)

// TGA image type constants.
const (
	TGATypeUncompressed      = 2  // Uncompressed true-color
	TGATypeGray              = 3  // Uncompressed grayscale
	TGATypeRLE               = 10 // RLE compressed true-color
	TGATypeGrayRLE           = 11 // RLE compressed grayscale
	tgaHeaderSize            = 18
	tgaDescriptorTopToBottom = 0x20
	tgaMaxRun                = 128 // pixels one RLE packet byte can expand to
)

var errTGATruncated = errors.New("TGA pixel data truncated")

// Decode reads a whole TGA stream and decodes it.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading TGA: %w", err)
	}
	img, err := DecodeTGA(data)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DecodeTGA decodes a TGA image.
// Supports true-color (24/32 bpp) and grayscale (8 bpp), raw or RLE.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}

	gray := imageType == TGATypeGray || imageType == TGATypeGrayRLE
	rle := imageType == TGATypeRLE || imageType == TGATypeGrayRLE
	switch {
	case imageType == TGATypeUncompressed || imageType == TGATypeRLE:
		if bpp != 24 && bpp != 32 {
			return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
		}
	case gray:
		if bpp != 8 {
			return nil, fmt.Errorf("unsupported grayscale TGA bit depth %d", bpp)
		}
	default:
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("TGA has empty dimensions %dx%d", width, height)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}

	px := &tgaPixels{
		data:          data[offset:],
		bytesPerPixel: bpp / 8,
		gray:          gray,
	}

	// Size checks come before the allocation; the header dimensions are untrusted.
	count := width * height
	if !rle && len(px.data) < count*px.bytesPerPixel {
		return nil, errTGATruncated
	}
	if rle && count > len(px.data)*tgaMaxRun {
		return nil, errTGATruncated
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	topToBottom := descriptor&tgaDescriptorTopToBottom != 0

	put := func(i int, c color.RGBA) {
		x, y := i%width, i/width
		if !topToBottom {
			y = height - 1 - y
		}
		img.SetRGBA(x, y, c)
	}

	if !rle {
		for i := 0; i < count; i++ {
			c, _ := px.next()
			put(i, c)
		}
		return img, nil
	}

	for i := 0; i < count; {
		packet, ok := px.byte()
		if !ok {
			return nil, errTGATruncated
		}
		run := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := px.next()
			if !ok {
				return nil, errTGATruncated
			}
			for ; run > 0 && i < count; run-- {
				put(i, c)
				i++
			}
			continue
		}

		for ; run > 0 && i < count; run-- {
			c, ok := px.next()
			if !ok {
				return nil, errTGATruncated
			}
			put(i, c)
			i++
		}
	}

	return img, nil
}

// tgaPixels reads BGR(A) or gray pixels from a TGA payload.
type tgaPixels struct {
	data          []byte
	pos           int
	bytesPerPixel int
	gray          bool
}

func (p *tgaPixels) byte() (byte, bool) {
	if p.pos >= len(p.data) {
		return 0, false
	}
	b := p.data[p.pos]
	p.pos++
	return b, true
}

func (p *tgaPixels) next() (color.RGBA, bool) {
	if p.pos+p.bytesPerPixel > len(p.data) {
		return color.RGBA{}, false
	}
	b := p.data[p.pos : p.pos+p.bytesPerPixel]
	p.pos += p.bytesPerPixel

	if p.gray {
		return color.RGBA{R: b[0], G: b[0], B: b[0], A: 255}, true
	}
	c := color.RGBA{R: b[2], G: b[1], B: b[0], A: 255}
	if p.bytesPerPixel == 4 {
		c.A = b[3]
	}
	return c, true
}

// ImageToRGBA converts any image.Image to a tightly packed *image.RGBA with
// its origin at (0, 0). An *image.RGBA that already is one is returned as is.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
