package png

import "image/color"

// parsePalette builds the 256-slot color table from a PLTE payload: one
// R, G, B triple per entry, alpha defaulting to fully opaque. A trailing
// partial triple is ignored. Slots beyond the supplied entries keep the
// opaque black default.
func (d *decoder) parsePalette(payload []byte) {
	pal := new([paletteSize]color.NRGBA)
	for i := range pal {
		pal[i] = color.NRGBA{A: 0xFF}
	}

	n := len(payload) / 3
	if n > paletteSize {
		n = paletteSize
	}
	for i := 0; i < n; i++ {
		pal[i] = color.NRGBA{
			R: payload[3*i+0],
			G: payload[3*i+1],
			B: payload[3*i+2],
			A: 0xFF,
		}
	}
	d.img.Palette = pal
}

// parseTransparency applies a tRNS payload: byte i replaces the alpha of
// palette slot i. The payload length is deliberately not checked against
// the number of PLTE-supplied entries, so a long payload reaches into the
// default slots; only the fixed table capacity bounds it. A tRNS chunk on a
// stream with no preceding PLTE is an ordering error.
func (d *decoder) parseTransparency(payload []byte) error {
	if d.img.Palette == nil {
		return ErrTransparencyNoPalette
	}
	for i, alpha := range payload {
		if i >= paletteSize {
			break
		}
		d.img.Palette[i].A = alpha
	}
	return nil
}
