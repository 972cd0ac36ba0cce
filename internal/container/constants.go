// Package container assembles a mip chain (optionally cubemap or array
// slices) of compressed-texture block data into the canonical KTX v1
// container byte layout: a 64-byte fixed header followed by one
// length-prefixed image block per mip level.
package container

import "github.com/basisgo/gputex/internal/block"

// Magic is the 12-byte identifier every container file begins with.
var Magic = [12]byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

// EndiannessMarker, written as the first 32-bit header field, lets a
// reader detect whether the file was produced on a big- or
// little-endian host. All fields in this container are little-endian,
// so a conformant little-endian-native reader sees this value
// unchanged.
const EndiannessMarker uint32 = 0x04030201

// HeaderSize is the fixed byte length of the magic plus the 13 packed
// header fields (12 + 13*4).
const HeaderSize = len(Magic) + 13*4

// glBaseInternalFormat values.
const (
	glRED  uint32 = 0x1903
	glRGB  uint32 = 0x1907
	glRGBA uint32 = 0x1908
	glRG   uint32 = 0x8227
)

// glInternalFormat values for each supported compressed format.
const (
	glCompressedRGBS3TCDXT1     uint32 = 0x83F0 // BC1
	glCompressedRGBAS3TCDXT5    uint32 = 0x83F3 // BC3
	glCompressedRedRGTC1        uint32 = 0x8DBB // BC4
	glCompressedRGRGTC2         uint32 = 0x8DBD // BC5
	glCompressedRGBABPTCUnorm   uint32 = 0x8E8C // BC7
	glCompressedR11EAC          uint32 = 0x9270 // ETC2 EAC alpha, standalone
	glETC1RGB8OES               uint32 = 0x8D64 // ETC1 / ETC1S
	glCompressedRGB8ETC2        uint32 = 0x9274
	glCompressedRGBA8ETC2EAC    uint32 = 0x9278
	glCompressedRGBPVRTC4BPPV1  uint32 = 0x8C00
	glCompressedRGBAPVRTC4BPPV1 uint32 = 0x8C02
)

// glFormatInfo is the (glInternalFormat, glBaseInternalFormat) pair the
// header embeds for a given block format.
type glFormatInfo struct {
	internalFormat     uint32
	baseInternalFormat uint32
}

var formatTable = map[block.Format]glFormatInfo{
	block.FormatBC1:          {glCompressedRGBS3TCDXT1, glRGB},
	block.FormatBC3:          {glCompressedRGBAS3TCDXT5, glRGBA},
	block.FormatBC4:          {glCompressedRedRGTC1, glRED},
	block.FormatBC5:          {glCompressedRGRGTC2, glRG},
	block.FormatBC7:          {glCompressedRGBABPTCUnorm, glRGBA},
	block.FormatETC1:         {glETC1RGB8OES, glRGB},
	block.FormatETC1S:        {glETC1RGB8OES, glRGB},
	block.FormatETC2RGB:      {glCompressedRGB8ETC2, glRGB},
	block.FormatETC2RGBA:     {glCompressedRGBA8ETC2EAC, glRGBA},
	block.FormatETC2Alpha:    {glCompressedR11EAC, glRED},
	block.FormatPVRTC1_4RGB:  {glCompressedRGBPVRTC4BPPV1, glRGB},
	block.FormatPVRTC1_4RGBA: {glCompressedRGBAPVRTC4BPPV1, glRGBA},
}
