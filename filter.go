package png

// Scanline filter types, as defined by the PNG spec.
const (
	ftNone    = 0
	ftSub     = 1
	ftUp      = 2
	ftAverage = 3
	ftPaeth   = 4
)

// paeth returns the Paeth predictor for neighbors a (left), b (above) and
// c (above-left). The base p = a+b-c is computed in signed arithmetic; the
// neighbor closest to p wins, with ties resolved a, then b, then c.
func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// reconstructRow reverses the filter ft over one scanline in place. cur
// holds the raw filtered bytes and is overwritten with reconstructed bytes;
// prior is the already-reconstructed previous row, or nil for the first row
// (an all-zero virtual row). bpp is the pixel stride in bytes.
//
// Reconstruction is reconstructed = raw + predictor(a, b, c) with 8-bit
// wraparound, where a is the reconstructed byte bpp positions to the left,
// b the byte directly above, and c the byte above-left; out-of-image
// neighbors are zero.
func reconstructRow(ft byte, cur, prior []byte, bpp int) error {
	switch ft {
	case ftNone:
	case ftSub:
		for i := bpp; i < len(cur); i++ {
			cur[i] += cur[i-bpp]
		}
	case ftUp:
		if prior != nil {
			for i := range cur {
				cur[i] += prior[i]
			}
		}
	case ftAverage:
		for i := range cur {
			var a, b int
			if i >= bpp {
				a = int(cur[i-bpp])
			}
			if prior != nil {
				b = int(prior[i])
			}
			cur[i] += byte((a + b) / 2)
		}
	case ftPaeth:
		for i := range cur {
			var a, b, c byte
			if i >= bpp {
				a = cur[i-bpp]
			}
			if prior != nil {
				b = prior[i]
				if i >= bpp {
					c = prior[i-bpp]
				}
			}
			cur[i] += paeth(a, b, c)
		}
	default:
		return ErrUnsupportedFilter
	}
	return nil
}

// reconstruct defilters the decompressed stream raw into the pixel buffer
// pix, one scanline at a time. Each scanline is one filter type byte
// followed by stride content bytes. Rows are inherently sequential: row n
// reads the reconstructed row n-1 straight out of pix.
func reconstruct(raw, pix []byte, height, stride, bpp int) error {
	if len(raw) < height*(stride+1) {
		return ErrTruncated
	}
	var prior []byte
	for y := 0; y < height; y++ {
		line := raw[y*(stride+1) : (y+1)*(stride+1)]
		row := pix[y*stride : (y+1)*stride]
		copy(row, line[1:])
		if err := reconstructRow(line[0], row, prior, bpp); err != nil {
			return err
		}
		prior = row
	}
	return nil
}
