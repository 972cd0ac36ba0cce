package gputex

// ImageBlocks returns the block grid dimensions for a pixelWidth x
// pixelHeight image: blocksX = ceil(width/4), blocksY = ceil(height/4).
func ImageBlocks(pixelWidth, pixelHeight int) (blocksX, blocksY int) {
	return (pixelWidth + 3) / 4, (pixelHeight + 3) / 4
}

// DecodeImage decodes every block of a tightly packed, row-major block
// array (block index by*blocksX+bx) into a flat tile slice, for
// verification callers (e.g. diffing against a reference decoder via
// ToNRGBA/ToAlpha). payload must hold exactly blocksX*blocksY*
// BytesPerBlock(fmt) bytes, where blocksX/blocksY come from
// ImageBlocks(pixelWidth, pixelHeight).
//
// The returned bool is a sticky success flag: it is false if any
// single block failed to decode (see Decode), but every tile is still
// populated, matching the per-block contract.
func DecodeImage(fmt Format, payload []byte, pixelWidth, pixelHeight int) ([]Tile, bool) {
	blocksX, blocksY := ImageBlocks(pixelWidth, pixelHeight)
	bpb := BytesPerBlock(fmt)
	tiles := make([]Tile, blocksX*blocksY)

	wellFormed := bpb > 0 && len(payload) == blocksX*blocksY*bpb
	ok := wellFormed

	for i := range tiles {
		tiles[i] = NewTile()
		if !wellFormed {
			continue
		}
		off := i * bpb
		if !Decode(fmt, payload[off:off+bpb], &tiles[i]) {
			ok = false
		}
	}
	return tiles, ok
}
