// Package block implements the per-format block-to-tile decoders: BC1,
// BC3, BC4, BC5, BC7 (mode 6), ETC1/ETC1S, ETC2 RGB/RGBA/EAC alpha, and
// PVRTC1 4bpp. Each BC/ETC decoder is a pure function over a fixed-size
// byte payload (PVRTC1 is decoded a whole image at a time through
// PvrtcImage), mirroring the reference basis_universal gpu_texture unpack
// routines (see basisu_gpu_texture.cpp in the project's original
// source tree) but expressed in idiomatic Go rather than C bitfields.
package block

// Pixel is an ordered 4-channel 8-bit color value (R, G, B, A).
type Pixel struct {
	R, G, B, A uint8
}

// OpaqueBlack is the default fill value for a tile awaiting decode.
var OpaqueBlack = Pixel{R: 0, G: 0, B: 0, A: 255}

// Tile is a 4x4 pixel block in row-major order: pixel (x, y) is at
// index y*4 + x.
type Tile [16]Pixel

// NewTile returns a tile with every pixel set to opaque black.
func NewTile() Tile {
	var t Tile
	for i := range t {
		t[i] = OpaqueBlack
	}
	return t
}

// NewPixel builds a Pixel from four channels already known to lie in
// [0, 255]. No clamping is performed, matching color_rgba::set_noclamp_rgba.
func NewPixel(r, g, b, a uint32) Pixel {
	return Pixel{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// Clamp255 saturates a signed 32-bit value to [0, 255].
func Clamp255(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ClampInt saturates a plain int to [0, 255]; a convenience for the
// truncating-division arithmetic used throughout BC1/BC4/EAC, which
// never overflows int on any Go platform but is clearer to clamp
// through a named helper than to repeat the branch inline.
func ClampInt(v int) uint8 {
	return Clamp255(int32(v))
}
