// Package gputex implements the core of a GPU compressed-texture codec:
// block-level decoders for fixed-size texture formats, an orthonormal
// 1D IDCT family used by HDR transcoding, and a writer that assembles a
// mip chain into the canonical KTX container layout.
//
// The package supports decoding:
//   - BC1, BC3, BC4, BC5, BC7 (mode 6 only)
//   - ETC1, ETC1S, ETC2 RGB, ETC2 RGBA, ETC2 EAC alpha
//   - PVRTC1 4bpp (RGB/RGBA)
//
// Every BC/ETC decoder is a pure function: it reads a fixed-size byte
// payload and writes a 4x4 pixel tile, without allocation or hidden
// state. PVRTC1 is decoded a whole image at a time through PvrtcImage,
// which allocates its block and pixel buffers.
// Encoding, rate-distortion optimization, and GPU upload are out of
// scope; see the package-level Non-goals in the project documentation.
package gputex
