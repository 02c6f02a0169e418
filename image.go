package png

import (
	"image"
	"image/color"
)

// Format classifies the pixel layout of a decoded image.
type Format int

const (
	// FormatIndexed is 8-bit palette-indexed: one byte per pixel, each an
	// index into the 256-entry palette.
	FormatIndexed Format = iota
	// FormatRGBA is 8-bit truecolor with alpha: four bytes per pixel in
	// R, G, B, A order, non-premultiplied.
	FormatRGBA
)

func (f Format) String() string {
	switch f {
	case FormatIndexed:
		return "Indexed"
	case FormatRGBA:
		return "RGBA"
	}
	return "Unknown"
}

// paletteSize is the fixed capacity of the color table. Entries beyond what
// the stream supplies keep their default value, opaque black.
const paletteSize = 256

// Image is the result of a successful decode.
//
// Pix is the flat pixel buffer, exactly Width*Height*BytesPerPixel() bytes,
// rows top to bottom. For FormatIndexed each byte indexes Palette; for
// FormatRGBA the bytes are R, G, B, A quadruplets.
type Image struct {
	Width  int
	Height int
	Format Format

	// Palette is non-nil for indexed images, or whenever the stream
	// carried a PLTE chunk (legal on truecolor images as a suggested
	// palette). All 256 slots are initialized to opaque black; PLTE fills
	// colors in order and tRNS overrides alphas in order.
	Palette *[paletteSize]color.NRGBA

	Pix []byte

	// Text holds tEXt metadata. TextKeys preserves first-insertion order;
	// a duplicate key keeps its position but takes the last value seen.
	Text     map[string]string
	TextKeys []string
}

// BytesPerPixel returns the stride contribution of one pixel in Pix.
func (m *Image) BytesPerPixel() int {
	if m.Format == FormatIndexed {
		return 1
	}
	return 4
}

func (m *Image) setText(key, value string) {
	if m.Text == nil {
		m.Text = make(map[string]string)
	}
	if _, ok := m.Text[key]; !ok {
		m.TextKeys = append(m.TextKeys, key)
	}
	m.Text[key] = value
}

// NRGBA converts the decoded pixels to a stdlib *image.NRGBA, expanding
// indexed pixels through the palette.
func (m *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	if m.Format == FormatRGBA {
		copy(out.Pix, m.Pix)
		return out
	}
	for i, idx := range m.Pix {
		c := m.Palette[idx]
		out.Pix[i*4+0] = c.R
		out.Pix[i*4+1] = c.G
		out.Pix[i*4+2] = c.B
		out.Pix[i*4+3] = c.A
	}
	return out
}

// Paletted converts an indexed image to a stdlib *image.Paletted sharing
// the pixel buffer. It returns nil for non-indexed images.
func (m *Image) Paletted() *image.Paletted {
	if m.Format != FormatIndexed {
		return nil
	}
	pal := make(color.Palette, paletteSize)
	for i, c := range m.Palette {
		pal[i] = c
	}
	return &image.Paletted{
		Pix:     m.Pix,
		Stride:  m.Width,
		Rect:    image.Rect(0, 0, m.Width, m.Height),
		Palette: pal,
	}
}

// ImageData returns the decoded pixels as a stdlib image.Image:
// *image.Paletted for indexed images, *image.NRGBA otherwise.
func (m *Image) ImageData() image.Image {
	if m.Format == FormatIndexed {
		return m.Paletted()
	}
	return m.NRGBA()
}
