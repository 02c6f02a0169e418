// Package png implements a pure Go decoder for a subset of the PNG format.
//
// The decoder handles non-interlaced images with a bit depth of 8 in two
// pixel formats: palette-indexed (color type 3) and truecolor with alpha
// (color type 6). Anything else is rejected with a distinguishable error
// rather than partially decoded. Encoding is not implemented.
//
// Decoding:
//
//	img, err := png.Decode(reader)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decode returns an *Image holding the raw pixel buffer, the palette for
// indexed images, and any tEXt metadata found in the stream. For stdlib
// interoperability the package also registers itself with the image package:
//
//	import _ "github.com/ajroetker/go-png"
//	img, _, err := image.Decode(reader)
//
// Chunk CRC values are read but never verified; a payload that is corrupted
// yet structurally parseable is accepted as-is. Callers that need integrity
// guarantees must layer them on top.
package png
