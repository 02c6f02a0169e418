package png

import (
	"encoding/binary"
	"fmt"
)

// Color type flag bits from the IHDR color type field.
const (
	colorPalette = 1 << 0 // samples index a palette
	colorColor   = 1 << 1 // samples carry color
	colorAlpha   = 1 << 2 // samples carry alpha
)

const headerLength = 13

// maxDimension and maxPixels bound the header dimensions so the pixel
// buffer allocation cannot be driven past sanity by a hostile header.
const (
	maxDimension = 1 << 24
	maxPixels    = 1 << 30
)

// header holds the parsed IHDR fields. It is fully validated before any
// other chunk is dispatched; the format classification drives the sizing of
// the output pixel buffer and every downstream component.
type header struct {
	width     int
	height    int
	bitDepth  byte
	colorType byte
	format    Format
}

// parseHeader parses and validates an IHDR payload. Field order is fixed:
// width, height, bit depth, color type, compression method, filter method,
// interlace method. Only compression 0 and interlace 0 are defined; the
// filter method field is read but carries no information worth checking
// since the per-scanline filter bytes are validated during reconstruction.
func parseHeader(payload []byte) (header, error) {
	if len(payload) < headerLength {
		return header{}, fmt.Errorf("%w: IHDR payload is %d bytes", ErrInvalidHeader, len(payload))
	}

	h := header{
		width:     int(binary.BigEndian.Uint32(payload[0:4])),
		height:    int(binary.BigEndian.Uint32(payload[4:8])),
		bitDepth:  payload[8],
		colorType: payload[9],
	}
	compression := payload[10]
	interlace := payload[12]

	if h.width <= 0 || h.height <= 0 {
		return header{}, fmt.Errorf("%w: %dx%d image", ErrInvalidHeader, h.width, h.height)
	}
	if h.width > maxDimension || h.height > maxDimension || h.width*h.height > maxPixels {
		return header{}, fmt.Errorf("%w: %dx%d image", ErrImageTooLarge, h.width, h.height)
	}
	if compression != 0 {
		return header{}, ErrUnsupportedCompression
	}
	if interlace != 0 {
		return header{}, ErrUnsupportedInterlace
	}

	// Exactly two bit depth / color type combinations are supported; there
	// is no partial handling of the remaining PNG pixel formats.
	switch {
	case h.bitDepth == 8 && h.colorType == colorPalette|colorColor:
		h.format = FormatIndexed
	case h.bitDepth == 8 && h.colorType == colorColor|colorAlpha:
		h.format = FormatRGBA
	default:
		return header{}, fmt.Errorf("%w: bit depth %d, color type %d",
			ErrUnsupportedFormat, h.bitDepth, h.colorType)
	}

	return h, nil
}
