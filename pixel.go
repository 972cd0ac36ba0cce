package gputex

import "github.com/basisgo/gputex/internal/block"

// Pixel is an ordered 4-channel 8-bit color value (R, G, B, A).
type Pixel = block.Pixel

// Tile is a 4x4 pixel block in row-major order: pixel (x, y) is at
// index y*4 + x.
type Tile = block.Tile

// NewTile returns a tile with every pixel set to opaque black, the
// default a single-channel decoder leaves undisturbed in the other
// three channels.
func NewTile() Tile {
	return block.NewTile()
}

// NewPixel builds a Pixel from four channels already known to lie in
// [0, 255] (e.g. an already-clamped interpolation result). No clamping
// is performed; out-of-range input wraps silently, matching
// color_rgba::set_noclamp_rgba.
func NewPixel(r, g, b, a uint32) Pixel {
	return block.NewPixel(r, g, b, a)
}

// NewPixelClamped builds a Pixel from four signed 32-bit channels,
// saturating each to [0, 255].
func NewPixelClamped(r, g, b, a int32) Pixel {
	return Pixel{R: Clamp255(r), G: Clamp255(g), B: Clamp255(b), A: Clamp255(a)}
}

// Clamp255 saturates a signed 32-bit value to the [0, 255] range,
// matching the reference decoder's clamp255 helper used throughout
// BC4/BC5/EAC channel arithmetic.
func Clamp255(v int32) uint8 {
	return block.Clamp255(v)
}
