package block

import "encoding/binary"

// etc1ModDiff is the differential/individual-mode intensity modifier
// table: etc1ModDiff[tableIndex][selector] for an opaque (non
// punch-through) block.
var etc1ModDiff = [8][4]int32{
	{2, 8, -2, -8},
	{5, 17, -5, -17},
	{9, 29, -9, -29},
	{13, 42, -13, -42},
	{18, 60, -18, -60},
	{24, 80, -24, -80},
	{33, 106, -33, -106},
	{47, 183, -47, -183},
}

// etc1DiffBias converts a 3-bit two's-complement delta (as stored in a
// differential-mode block) to a signed correction in [-4, 3].
var etc1DiffBias = [8]int32{0, 1, 2, 3, -4, -3, -2, -1}

// extend5 replicates a 5-bit value into the top bits of a byte.
func extend5(v uint32) int32 { return int32((v << 3) | (v >> 2)) }

// extend4 replicates a 4-bit value into the top bits of a byte.
func extend4(v uint32) int32 { return int32((v << 4) | v) }

// DecodeETC1 decodes an 8-byte ETC1 color block into dst, in individual
// or differential mode (the two submodes ETC1 itself defines). Planar
// and T/H modes belong to ETC2 and are not supported here; encountering
// one (a differential-mode base+delta that over/underflows [0, 31])
// reports failure. Alpha is left untouched so ETC2 RGBA can compose
// this with an independently decoded EAC alpha channel.
func DecodeETC1(payload []byte, dst *Tile) bool {
	_ = payload[7]
	v := binary.BigEndian.Uint64(payload)

	flip := (v >> 32) & 1
	diff := (v >> 33) & 1

	var c0, c1 [3]int32
	if diff == 0 {
		for i := uint(0); i < 3; i++ {
			a := (v >> (60 - i*8)) & 15
			b := (v >> (56 - i*8)) & 15
			c0[i] = extend4(uint32(a))
			c1[i] = extend4(uint32(b))
		}
	} else {
		for i := uint(0); i < 3; i++ {
			a := (v >> (59 - i*8)) & 31
			d := (v >> (56 - i*8)) & 7
			b := int32(a) + etc1DiffBias[d]
			if b < 0 || b > 31 {
				return false
			}
			c0[i] = extend5(uint32(a))
			c1[i] = extend5(uint32(b))
		}
	}

	table0 := etc1ModDiff[(v>>37)&7]
	table1 := etc1ModDiff[(v>>34)&7]

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			i := uint(x*4 + y)
			var sub int
			if flip == 0 {
				if x >= 2 {
					sub = 1
				}
			} else if y >= 2 {
				sub = 1
			}

			idx := ((v >> i) & 1) | ((v >> (15 + i)) & 2)

			base := c0
			table := table0
			if sub == 1 {
				base = c1
				table = table1
			}
			mod := table[idx]

			p := y*4 + x
			dst[p].R = Clamp255(base[0] + mod)
			dst[p].G = Clamp255(base[1] + mod)
			dst[p].B = Clamp255(base[2] + mod)
		}
	}

	return true
}
