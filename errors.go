package png

import "errors"

var (
	ErrInvalidSignature       = errors.New("png: not a PNG stream")
	ErrTruncated              = errors.New("png: truncated input")
	ErrMissingHeader          = errors.New("png: missing or misordered IHDR")
	ErrDuplicateHeader        = errors.New("png: duplicate IHDR")
	ErrInvalidHeader          = errors.New("png: invalid header")
	ErrImageTooLarge          = errors.New("png: image dimensions exceed limit")
	ErrUnsupportedCompression = errors.New("png: unsupported compression method")
	ErrUnsupportedInterlace   = errors.New("png: unsupported interlacing")
	ErrUnsupportedFormat      = errors.New("png: unsupported pixel format")
	ErrUnsupportedFilter      = errors.New("png: unsupported filter")
	ErrTransparencyNoPalette  = errors.New("png: palette required for transparency")
	ErrPaletteRequired        = errors.New("png: palette required")
)
