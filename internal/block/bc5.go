package block

// DecodeBC5 decodes a 16-byte BC5 payload (two consecutive BC4 blocks)
// into dst's R and G channels. B and A are left at whatever dst
// already holds (callers normally pre-fill opaque black via NewTile).
func DecodeBC5(payload []byte, dst *Tile) {
	_ = payload[15]

	r := DecodeBC4Channel(payload[:bc4BlockSize])
	g := DecodeBC4Channel(payload[bc4BlockSize:])

	for i := range dst {
		dst[i].R = r[i]
		dst[i].G = g[i]
	}
}
