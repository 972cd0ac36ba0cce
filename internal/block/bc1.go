package block

import "encoding/binary"

// bc1 holds the two raw 16-bit RGB565 endpoints and the 4-byte,
// 2-bit-per-pixel selector stream of a BC1 block. Field layout mirrors
// bc1_block from the reference gpu_texture unpacker.
type bc1 struct {
	low, high uint16
	selectors [4]byte
}

func decodeBC1Fields(payload []byte) bc1 {
	_ = payload[7]
	return bc1{
		low:       binary.LittleEndian.Uint16(payload[0:2]),
		high:      binary.LittleEndian.Uint16(payload[2:4]),
		selectors: [4]byte{payload[4], payload[5], payload[6], payload[7]},
	}
}

// selector returns the 2-bit palette index for pixel (x, y), 0 <= x,y < 4.
func (b bc1) selector(x, y int) uint32 {
	return uint32(b.selectors[y]>>(uint(x)*2)) & 3
}

// unpack565 expands a 16-bit RGB565 value to 8-bit-per-channel RGB via
// left-shift + high-bit replication.
func unpack565(c uint16) (r, g, b uint32) {
	r = uint32(c>>11) & 31
	g = uint32(c>>5) & 63
	b = uint32(c) & 31
	r = (r << 3) | (r >> 2)
	g = (g << 2) | (g >> 4)
	b = (b << 3) | (b >> 2)
	return
}

// DecodeBC1 decodes an 8-byte BC1 payload into dst. When setAlpha is
// true, the alpha channel of every written pixel is set (opaque in
// four-color mode, zero for the punch-through palette entry); when
// false, only R/G/B are written and the destination's existing alpha
// is left untouched (the "set_rgb only" variant, for callers whose
// alpha channel is decoded separately).
//
// The returned bool reports whether the block used the three-color
// punch-through-alpha subcase (low <= high).
func DecodeBC1(payload []byte, dst *Tile, setAlpha bool) bool {
	blk := decodeBC1Fields(payload)

	r0, g0, b0 := unpack565(blk.low)
	r1, g1, b1 := unpack565(blk.high)

	var palette [4]Pixel
	punchThrough := false

	if blk.low > blk.high {
		palette[0] = NewPixel(r0, g0, b0, 255)
		palette[1] = NewPixel(r1, g1, b1, 255)
		palette[2] = NewPixel((2*r0+r1)/3, (2*g0+g1)/3, (2*b0+b1)/3, 255)
		palette[3] = NewPixel((2*r1+r0)/3, (2*g1+g0)/3, (2*b1+b0)/3, 255)
	} else {
		palette[0] = NewPixel(r0, g0, b0, 255)
		palette[1] = NewPixel(r1, g1, b1, 255)
		palette[2] = NewPixel((r0+r1)/2, (g0+g1)/2, (b0+b1)/2, 255)
		palette[3] = Pixel{}
		punchThrough = true
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := palette[blk.selector(x, y)]
			i := y*4 + x
			if setAlpha {
				dst[i] = c
			} else {
				dst[i].R, dst[i].G, dst[i].B = c.R, c.G, c.B
			}
		}
	}

	return punchThrough
}
