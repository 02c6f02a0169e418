package png

import (
	"encoding/binary"
	"errors"
	"io"
)

// Signature is the fixed 8-byte prefix every PNG stream starts with.
const Signature = "\x89PNG\r\n\x1a\n"

// Chunk type tags handled by the decoder. Any other tag is skipped.
const (
	chunkIHDR = "IHDR" // image header
	chunkPLTE = "PLTE" // palette
	chunkTRNS = "tRNS" // palette alpha overrides
	chunkIDAT = "IDAT" // compressed image data fragment
	chunkTEXT = "tEXt" // key/value text metadata
	chunkIEND = "IEND" // terminator
)

// chunk is one length-prefixed, type-tagged unit of the stream. The payload
// aliases the decoder's input buffer and must not outlive one dispatch
// iteration. The trailing CRC is consumed but never verified.
type chunk struct {
	typ     string
	payload []byte
}

// HasSignature reports whether the next 8 bytes of r are the PNG signature.
// The read position of r is restored before returning, regardless of the
// outcome, so the check is non-destructive. A stream shorter than 8 bytes is
// simply not a PNG, not an error.
func HasSignature(r io.ReadSeeker) (bool, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, err
	}

	var sig [8]byte
	_, err = io.ReadFull(r, sig[:])
	if _, serr := r.Seek(start, io.SeekStart); serr != nil {
		return false, serr
	}
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}

	return string(sig[:]) == Signature, nil
}

// nextChunk reads one chunk frame from the current cursor position:
// 4-byte big-endian payload length, 4-byte ASCII type, payload, 4-byte CRC.
func (d *decoder) nextChunk() (chunk, error) {
	header, err := d.advance(8)
	if err != nil {
		return chunk{}, err
	}
	length := binary.BigEndian.Uint32(header[:4])
	typ := string(header[4:8])

	payload, err := d.advance(int(length))
	if err != nil {
		return chunk{}, err
	}

	// CRC, read and discarded.
	if _, err := d.advance(4); err != nil {
		return chunk{}, err
	}

	return chunk{typ: typ, payload: payload}, nil
}

// advance returns the next n bytes of input and moves the cursor past them.
func (d *decoder) advance(n int) ([]byte, error) {
	if n < 0 || d.pos+n > len(d.data) || d.pos+n < d.pos {
		return nil, ErrTruncated
	}
	d.pos += n
	return d.data[d.pos-n : d.pos], nil
}
