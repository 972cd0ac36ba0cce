package block

import "encoding/binary"

// bc7Weights4 is the 4-bit interpolation weight table shared by every
// BC7 mode that uses 4-bit weight indices (only mode 6 is implemented
// here).
var bc7Weights4 = [16]uint32{0, 4, 9, 13, 17, 21, 26, 30, 34, 38, 43, 47, 51, 55, 60, 64}

// bc7Mode6Marker is the 7-bit mode prefix (LSB-first) identifying mode
// 6: a single bit set at position 6, i.e. 1<<6 = 64.
const bc7Mode6Marker = 1 << 6

// DecodeBC7Mode6 decodes a 16-byte BC7 payload, returning false if the
// block is not encoded in mode 6 (the only mode this decoder
// supports). The bit layout is read as two little-endian uint64 words
// covering the 128-bit block, matching bc7_mode_6's m_lo/m_hi fields.
func DecodeBC7Mode6(payload []byte, dst *Tile) bool {
	_ = payload[15]
	lo := binary.LittleEndian.Uint64(payload[0:8])
	hi := binary.LittleEndian.Uint64(payload[8:16])

	if lo&0x7f != bc7Mode6Marker {
		return false
	}

	field := func(v uint64, shift, width uint) uint32 {
		return uint32(v>>shift) & ((1 << width) - 1)
	}

	r0 := field(lo, 7, 7)
	r1 := field(lo, 14, 7)
	g0 := field(lo, 21, 7)
	g1 := field(lo, 28, 7)
	b0 := field(lo, 35, 7)
	b1 := field(lo, 42, 7)
	a0 := field(lo, 49, 7)
	a1 := field(lo, 56, 7)
	p0 := field(lo, 63, 1)
	p1 := field(hi, 0, 1)

	endR0 := r0<<1 | p0
	endG0 := g0<<1 | p0
	endB0 := b0<<1 | p0
	endA0 := a0<<1 | p0
	endR1 := r1<<1 | p1
	endG1 := g1<<1 | p1
	endB1 := b1<<1 | p1
	endA1 := a1<<1 | p1

	var vals [16]Pixel
	for i, w := range bc7Weights4 {
		iw := 64 - w
		vals[i] = NewPixel(
			(endR0*iw+endR1*w+32)>>6,
			(endG0*iw+endG1*w+32)>>6,
			(endB0*iw+endB1*w+32)>>6,
			(endA0*iw+endA1*w+32)>>6,
		)
	}

	// 16 weight-index selectors packed into the high 64-bit word after
	// p1 (bit 0): the anchor pixel (index 0) stores only 3 bits since
	// its MSB is implicitly 0 (BC7's anchor-index convention), every
	// other pixel stores the full 4 bits.
	dst[0] = vals[field(hi, 1, 3)]
	for i := 1; i < 16; i++ {
		dst[i] = vals[field(hi, uint(4*i), 4)]
	}

	return true
}
