package png

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/klauspost/compress/zlib"
)

// decoder holds the state of one decode call: a cursor over the input
// bytes, the image being built, and the pending concatenation of IDAT
// payloads. Nothing is shared between calls, so independent decodes may run
// in parallel freely.
type decoder struct {
	data []byte
	pos  int

	img  *Image
	idat []byte
}

// Decode reads a PNG stream from r and returns the decoded image. The
// whole stream is consumed in one blocking call; on any failure a nil
// image and one of the package's error kinds is returned, never a partial
// result. r is not closed.
func Decode(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

// DecodeImage decodes a PNG stream into a stdlib image.Image.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return img.ImageData(), nil
}

func decode(data []byte) (*Image, error) {
	if !bytes.HasPrefix(data, []byte(Signature)) {
		return nil, ErrInvalidSignature
	}
	d := &decoder{data: data, pos: len(Signature)}

	// IHDR gates everything else: it must be the very first chunk, and its
	// classification sizes the pixel buffer before any pixel data arrives.
	first, err := d.nextChunk()
	if err != nil {
		return nil, err
	}
	if first.typ != chunkIHDR {
		return nil, ErrMissingHeader
	}
	h, err := parseHeader(first.payload)
	if err != nil {
		return nil, err
	}
	d.img = &Image{
		Width:  h.width,
		Height: h.height,
		Format: h.format,
	}
	d.img.Pix = make([]byte, h.width*h.height*d.img.BytesPerPixel())

	for {
		c, err := d.nextChunk()
		if err != nil {
			return nil, err
		}
		switch c.typ {
		case chunkIHDR:
			return nil, ErrDuplicateHeader
		case chunkPLTE:
			d.parsePalette(c.payload)
		case chunkTRNS:
			if err := d.parseTransparency(c.payload); err != nil {
				return nil, err
			}
		case chunkIDAT:
			d.idat = append(d.idat, c.payload...)
		case chunkTEXT:
			d.parseText(c.payload)
		case chunkIEND:
			if err := d.finish(); err != nil {
				return nil, err
			}
			return d.img, nil
		default:
			// Unknown chunk, skipped.
		}
	}
}

// finish runs once the terminator chunk is seen: deferred palette check,
// then inflate of the accumulated image data and scanline reconstruction
// into the pixel buffer.
func (d *decoder) finish() error {
	if d.img.Format == FormatIndexed && d.img.Palette == nil {
		return ErrPaletteRequired
	}

	raw, err := inflate(d.idat)
	if err != nil {
		return err
	}
	d.idat = nil

	bpp := d.img.BytesPerPixel()
	return reconstruct(raw, d.img.Pix, d.img.Height, d.img.Width*bpp, bpp)
}

// parseText extracts one tEXt chunk: a NUL-terminated key followed
// immediately by the value. A payload with no NUL carries no pair and is
// ignored.
func (d *decoder) parseText(payload []byte) {
	sep := bytes.IndexByte(payload, 0)
	if sep < 0 {
		return
	}
	d.img.setText(string(payload[:sep]), string(payload[sep+1:]))
}

// inflate decompresses a zlib stream in one shot.
func inflate(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("png: inflate: %w", err)
	}
	defer zr.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, zr); err != nil {
		return nil, fmt.Errorf("png: inflate: %w", err)
	}
	return out.Bytes(), nil
}

// DecodeConfig returns the image dimensions and color model without
// decompressing any pixel data. For palette-indexed images it keeps
// scanning chunks until the palette is found so the color model can carry
// the actual colors; if image data shows up first the palette-less model is
// returned as plain NRGBA.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, err
	}
	if !bytes.HasPrefix(data, []byte(Signature)) {
		return image.Config{}, ErrInvalidSignature
	}
	d := &decoder{data: data, pos: len(Signature)}

	first, err := d.nextChunk()
	if err != nil {
		return image.Config{}, err
	}
	if first.typ != chunkIHDR {
		return image.Config{}, ErrMissingHeader
	}
	h, err := parseHeader(first.payload)
	if err != nil {
		return image.Config{}, err
	}

	cfg := image.Config{
		Width:      h.width,
		Height:     h.height,
		ColorModel: color.NRGBAModel,
	}
	if h.format != FormatIndexed {
		return cfg, nil
	}

	d.img = &Image{Width: h.width, Height: h.height, Format: h.format}
	for {
		c, err := d.nextChunk()
		if err != nil {
			return image.Config{}, err
		}
		if c.typ == chunkIDAT || c.typ == chunkIEND {
			return cfg, nil
		}
		if c.typ == chunkPLTE {
			d.parsePalette(c.payload)
			pal := make(color.Palette, paletteSize)
			for i, entry := range d.img.Palette {
				pal[i] = entry
			}
			cfg.ColorModel = pal
			return cfg, nil
		}
	}
}

// Register the decoder with the image package for automatic format
// detection via image.Decode.
func init() {
	image.RegisterFormat("png", Signature, DecodeImage, DecodeConfig)
}
