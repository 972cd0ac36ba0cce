package gputex

import "github.com/basisgo/gputex/internal/block"

// Decode dispatches payload (whose length must equal BytesPerBlock(fmt))
// to the decoder for fmt, writing the result into dst. dst should
// normally start from NewTile() so single-channel formats (BC4,
// ETC2Alpha) leave a sane default (opaque black) in the channels they
// don't touch.
//
// The returned bool reports structural success: false for an
// unrecognized format, a BC7 block not encoded in mode 6, an ETC2
// block in an unsupported planar/T/H submode, or a BC3 block whose
// color half used three-color punch-through alpha. dst is always
// fully populated, even on failure.
//
// PVRTC1 is not reachable through Decode since it is decoded a whole
// image at a time; see PvrtcImage.
func Decode(fmt Format, payload []byte, dst *Tile) bool {
	return block.Decode(fmt, payload, dst)
}

// PvrtcImage decodes a whole PVRTC1 4bpp compressed image at once: its
// blocks are interdependent (each pixel blends its block's endpoints
// with its three neighbors'), so there is no per-block decode
// function the way there is for BC/ETC.
type PvrtcImage = block.PvrtcImage

// NewPvrtcImage allocates a PvrtcImage for a power-of-two image whose
// dimensions are multiples of 4. wrapAddressing selects wraparound
// (true) vs. clamped (false) neighbor-block addressing at the image
// edges.
func NewPvrtcImage(width, height int, wrapAddressing bool) *PvrtcImage {
	return block.NewPvrtcImage(width, height, wrapAddressing)
}
