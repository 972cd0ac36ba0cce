package block

// bc4SelectorBits is the width of each per-pixel value-table index.
const bc4SelectorBits = 3

// bc4SelectorBits48 packs the 16 three-bit selectors of a BC4 block
// into a single uint64, little-endian across the 6 selector bytes,
// matching bc4_block::get_selector_bits.
func bc4SelectorBits48(selectors [6]byte) uint64 {
	return uint64(selectors[0]) |
		uint64(selectors[1])<<8 |
		uint64(selectors[2])<<16 |
		uint64(selectors[3])<<24 |
		uint64(selectors[4])<<32 |
		uint64(selectors[5])<<40
}

// bc4Selector returns the 3-bit value-table index for pixel (x, y).
func bc4Selector(bits uint64, x, y int) uint32 {
	return uint32(bits>>uint((y*4+x)*bc4SelectorBits)) & 7
}

// bc4ValueTable builds the 8-entry interpolated value table for a BC4
// block from its two endpoints, matching bc4_block::get_block_values.
func bc4ValueTable(lo, hi uint8) (table [8]uint8) {
	l, h := uint32(lo), uint32(hi)
	table[0] = lo
	table[1] = hi
	if lo > hi {
		// 8-value mode.
		table[2] = uint8((6*l + h) / 7)
		table[3] = uint8((5*l + 2*h) / 7)
		table[4] = uint8((4*l + 3*h) / 7)
		table[5] = uint8((3*l + 4*h) / 7)
		table[6] = uint8((2*l + 5*h) / 7)
		table[7] = uint8((l + 6*h) / 7)
	} else {
		// 6-value mode; entries 6 and 7 are fixed black/white sentinels.
		table[2] = uint8((4*l + h) / 5)
		table[3] = uint8((3*l + 2*h) / 5)
		table[4] = uint8((2*l + 3*h) / 5)
		table[5] = uint8((l + 4*h) / 5)
		table[6] = 0
		table[7] = 255
	}
	return
}

// DecodeBC4Channel decodes an 8-byte BC4 payload into 16 row-major
// single-channel values. Callers assign the result into whichever
// channel the format calls for (BC4 itself writes R; BC3 writes A;
// BC5 writes R then G from its two constituent BC4 blocks).
func DecodeBC4Channel(payload []byte) (out [16]uint8) {
	_ = payload[7]
	lo, hi := payload[0], payload[1]
	var selectors [6]byte
	copy(selectors[:], payload[2:8])

	table := bc4ValueTable(lo, hi)
	bits := bc4SelectorBits48(selectors)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			out[y*4+x] = table[bc4Selector(bits, x, y)]
		}
	}
	return
}
