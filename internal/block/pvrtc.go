package block

// PVRTC1 4bpp decoding is intrinsically image-global: every texel's
// color is a bilinear blend of the endpoint colors stored in
// neighboring blocks, modulated by a 2-bit per-texel factor. A
// PvrtcImage owns the whole block grid and is unpacked as a unit;
// there is no per-block pure-function boundary the way there is for
// BC/ETC.

// pvrtcBlock is the raw 8-byte on-disk representation of one PVRTC1
// 4bpp block: a 32-bit color word (two packed endpoint colors plus a
// hard/punch-through mode bit) and a 32-bit modulation word (sixteen
// 2-bit per-texel weight selectors).
type pvrtcBlock struct {
	modulation uint32
	color      uint32
}

// PvrtcImage holds a PVRTC1 4bpp compressed image: a power-of-two grid
// of blocks in storage (Morton-swizzled) order, which must be
// deswizzled into linear (bx, by) order before unpacking.
type PvrtcImage struct {
	width, height    int
	blocksX, blocksY int
	wrapAddressing   bool

	raw    []pvrtcBlock // storage order, as copied from the payload
	linear []pvrtcBlock // block[by*blocksX+bx] after Deswizzle
}

// NewPvrtcImage allocates a PvrtcImage for a power-of-two image whose
// dimensions are multiples of 4. wrapAddressing selects wraparound
// (true) vs. clamped (false) neighbor-block addressing at the image
// edges.
func NewPvrtcImage(width, height int, wrapAddressing bool) *PvrtcImage {
	bx := width / 4
	by := height / 4
	return &PvrtcImage{
		width: width, height: height,
		blocksX: bx, blocksY: by,
		wrapAddressing: wrapAddressing,
		raw:            make([]pvrtcBlock, bx*by),
	}
}

// TotalBlocks returns the number of 8-byte blocks the image expects.
func (pi *PvrtcImage) TotalBlocks() int { return pi.blocksX * pi.blocksY }

// SetBlocks copies a tightly packed, storage-order block payload into
// the image (the byte-exact "memcpy" pass-through the format calls
// for). len(payload) must equal TotalBlocks()*8.
func (pi *PvrtcImage) SetBlocks(payload []byte) bool {
	if len(payload) != pi.TotalBlocks()*8 {
		return false
	}
	for i := range pi.raw {
		off := i * 8
		pi.raw[i] = pvrtcBlock{
			modulation: uint32(payload[off]) | uint32(payload[off+1])<<8 | uint32(payload[off+2])<<16 | uint32(payload[off+3])<<24,
			color:      uint32(payload[off+4]) | uint32(payload[off+5])<<8 | uint32(payload[off+6])<<16 | uint32(payload[off+7])<<24,
		}
	}
	return true
}

// twiddleUV maps a linear (x, y) block coordinate to its Morton-order
// storage index, handling non-square power-of-two grids by
// interleaving bits only up to the smaller dimension and appending the
// larger dimension's remaining high bits verbatim.
func twiddleUV(xSize, ySize, x, y int) int {
	minDim, maxVal := xSize, y
	if xSize > ySize {
		minDim, maxVal = ySize, x
	}

	var twiddled, srcBit, dstBit uint32
	dstBit = 1
	srcBit = 1
	shift := 0
	xu, yu := uint32(x), uint32(y)
	for int(srcBit) < minDim {
		if yu&srcBit != 0 {
			twiddled |= dstBit
		}
		if xu&srcBit != 0 {
			twiddled |= dstBit << 1
		}
		srcBit <<= 1
		dstBit <<= 2
		shift++
	}
	twiddled |= uint32(maxVal>>uint(shift)) << uint(2*shift)
	return int(twiddled)
}

// Deswizzle reorders the storage-order block array into linear
// (by*blocksX+bx) order.
func (pi *PvrtcImage) Deswizzle() {
	pi.linear = make([]pvrtcBlock, len(pi.raw))
	for by := 0; by < pi.blocksY; by++ {
		for bx := 0; bx < pi.blocksX; bx++ {
			src := twiddleUV(pi.blocksX, pi.blocksY, bx, by)
			pi.linear[by*pi.blocksX+bx] = pi.raw[src]
		}
	}
}

// pvrtcEndpoint is a block's two decoded 8-bit-equivalent (but
// pre-expansion) endpoint colors plus its modulation mode.
type pvrtcEndpoint struct {
	ra, ga, ba, aa int32
	rb, gb, bb, ab int32
	punchThrough   bool
}

// pvrtcUnpackColor splits a 16-bit packed endpoint (the low or high
// half of a block's color word) into RGBA, handling both the opaque
// (RGB555/RGB554) and translucent (ARGB3443/ARGB3444) encodings
// selected by bit 15. Every channel is normalized to a common scale
// (5 bits for R/G/B, 4 bits for A) by bit replication so opaque and
// translucent endpoints can be blended without a scale mismatch.
func pvrtcUnpackColor(c uint32, isColorA bool) (r, g, b, a int32) {
	if c&0x8000 != 0 {
		a = 15
		r = int32((c >> 10) & 0x1f)
		g = int32((c >> 5) & 0x1f)
		if isColorA {
			b4 := int32((c >> 1) & 0xf)
			b = (b4 << 1) | (b4 >> 3)
		} else {
			b = int32(c & 0x1f)
		}
	} else {
		a3 := int32((c >> 12) & 0x7)
		a = (a3 << 1) | (a3 >> 2)
		r4 := int32((c >> 8) & 0xf)
		r = (r4 << 1) | (r4 >> 3)
		g4 := int32((c >> 4) & 0xf)
		g = (g4 << 1) | (g4 >> 3)
		if isColorA {
			b3 := int32((c >> 1) & 0x7)
			b = (b3 << 2) | (b3 >> 1)
		} else {
			b4 := int32(c & 0xf)
			b = (b4 << 1) | (b4 >> 3)
		}
	}
	return
}

func (pi *PvrtcImage) blockCoord(bx, by int) (int, int) {
	if pi.wrapAddressing {
		return ((bx % pi.blocksX) + pi.blocksX) % pi.blocksX, ((by % pi.blocksY) + pi.blocksY) % pi.blocksY
	}
	return clampInt(bx, 0, pi.blocksX-1), clampInt(by, 0, pi.blocksY-1)
}

func (pi *PvrtcImage) endpointAt(bx, by int) pvrtcEndpoint {
	bx, by = pi.blockCoord(bx, by)
	blk := pi.linear[by*pi.blocksX+bx]
	colorA := blk.color & 0xffff
	colorB := (blk.color >> 16) & 0xffff
	ra, ga, ba, aa := pvrtcUnpackColor(colorA, true)
	rb, gb, bb, ab := pvrtcUnpackColor(colorB, false)
	return pvrtcEndpoint{ra, ga, ba, aa, rb, gb, bb, ab, blk.color&1 != 0}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// bilerp4 blends four corner values (top-left, top-right, bottom-left,
// bottom-right) with eighths-resolution weights wx, wy in [0, 8].
func bilerp4(tl, tr, bl, br, wx, wy int32) int32 {
	top := tl*(8-wx) + tr*wx
	bot := bl*(8-wx) + br*wx
	return (top*(8-wy) + bot*wy + 32) >> 6
}

// pvrtcModWeights are the four blend weights (out of 8, colorA vs
// colorB) selected by a texel's 2-bit modulation value in normal mode.
var pvrtcModWeights = [4]int32{0, 3, 5, 8}

// pvrtcPunchWeights are the corresponding weights in punch-through
// mode; index 1 additionally forces the texel fully transparent.
var pvrtcPunchWeights = [4]int32{0, 4, 8, 8}

func expand5to8(v int32) uint32 { return uint32((v << 3) | (v >> 2)) }
func expand4to8(v int32) uint32 { return uint32((v << 4) | v) }

// UnpackAllPixels decodes the full deswizzled image into a row-major
// RGBA pixel buffer. Call Deswizzle first.
func (pi *PvrtcImage) UnpackAllPixels() []Pixel {
	out := make([]Pixel, pi.width*pi.height)

	for by := 0; by < pi.blocksY; by++ {
		for bx := 0; bx < pi.blocksX; bx++ {
			self := pi.endpointAt(bx, by)
			right := pi.endpointAt(bx+1, by)
			down := pi.endpointAt(bx, by+1)
			diag := pi.endpointAt(bx+1, by+1)
			raw := pi.linear[by*pi.blocksX+bx]

			for ly := 0; ly < 4; ly++ {
				wy := int32(ly)*2 + 1
				for lx := 0; lx < 4; lx++ {
					wx := int32(lx)*2 + 1

					ra := bilerp4(self.ra, right.ra, down.ra, diag.ra, wx, wy)
					ga := bilerp4(self.ga, right.ga, down.ga, diag.ga, wx, wy)
					bav := bilerp4(self.ba, right.ba, down.ba, diag.ba, wx, wy)
					aa := bilerp4(self.aa, right.aa, down.aa, diag.aa, wx, wy)

					rb := bilerp4(self.rb, right.rb, down.rb, diag.rb, wx, wy)
					gb := bilerp4(self.gb, right.gb, down.gb, diag.gb, wx, wy)
					bbv := bilerp4(self.bb, right.bb, down.bb, diag.bb, wx, wy)
					ab := bilerp4(self.ab, right.ab, down.ab, diag.ab, wx, wy)

					idx := ly*4 + lx
					mod := (raw.modulation >> uint(idx*2)) & 3

					weights := pvrtcModWeights
					transparent := false
					if self.punchThrough {
						weights = pvrtcPunchWeights
						transparent = mod == 1
					}
					w := weights[mod]

					r := ra + (((rb-ra)*w + 4) >> 3)
					g := ga + (((gb-ga)*w + 4) >> 3)
					b := bav + (((bbv-bav)*w + 4) >> 3)
					a := aa + (((ab-aa)*w + 4) >> 3)

					p := Pixel{
						R: uint8(expand5to8(r)),
						G: uint8(expand5to8(g)),
						B: uint8(expand5to8(b)),
						A: uint8(expand4to8(a)),
					}
					if transparent {
						p.A = 0
					}

					out[(by*4+ly)*pi.width+(bx*4+lx)] = p
				}
			}
		}
	}

	return out
}
