package gputex

import (
	"github.com/basisgo/gputex/internal/block"
	"github.com/basisgo/gputex/internal/container"
)

// Format identifies a compressed block layout.
type Format = block.Format

// The set of block formats this package can decode and/or serialize
// into a container.
const (
	FormatBC1          = block.FormatBC1
	FormatBC3          = block.FormatBC3
	FormatBC4          = block.FormatBC4
	FormatBC5          = block.FormatBC5
	FormatBC7          = block.FormatBC7
	FormatETC1         = block.FormatETC1
	FormatETC1S        = block.FormatETC1S
	FormatETC2RGB      = block.FormatETC2RGB
	FormatETC2RGBA     = block.FormatETC2RGBA
	FormatETC2Alpha    = block.FormatETC2Alpha
	FormatPVRTC1_4RGB  = block.FormatPVRTC1_4RGB
	FormatPVRTC1_4RGBA = block.FormatPVRTC1_4RGBA
)

// BytesPerBlock returns the payload length a format expects, or 0 for
// an unrecognized format.
func BytesPerBlock(f Format) int {
	return block.BytesPerBlock(f)
}

// MipLevel holds one mip level's compressed block payload for a
// single array slice or cubemap face. Data must be exactly
// blocksX*blocksY*BytesPerBlock(format) bytes, where blocksX/blocksY
// are derived from that level's pixel dimensions.
type MipLevel struct {
	Data []byte
}

// MipChain is an ordered image pyramid, level 0 (the base image)
// first; level k has dimensions max(1, w0>>k) x max(1, h0>>k).
type MipChain []MipLevel

// BuildOptions controls how Slices are interpreted by WriteContainer.
type BuildOptions struct {
	// Cubemap marks the slices as cubemap faces rather than plain
	// array elements. len(Slices) must then be a multiple of 6; every
	// run of 6 consecutive slices is one cubemap's +X,-X,+Y,-Y,+Z,-Z
	// faces, in that order.
	Cubemap bool
}

// WriteContainer assembles one or more mip chains ("slices" — either
// independent array elements or, with BuildOptions.Cubemap, cubemap
// faces) sharing the given format and base pixel dimensions into the
// canonical KTX-layout byte buffer described in the package
// documentation. It validates the input deterministically: on any
// mismatch (empty chain, non-multiple-of-6 cubemap count, differing
// level counts, wrongly sized level data, or an unsupported format) it
// returns a nil buffer and a descriptive error, and emits no partial
// output.
func WriteContainer(format Format, baseWidth, baseHeight int, slices []MipChain, opts BuildOptions) ([]byte, error) {
	cslices := make([]container.Slice, len(slices))
	for i, chain := range slices {
		levels := make(container.Slice, len(chain))
		for j, lvl := range chain {
			levels[j] = container.Level{Data: lvl.Data}
		}
		cslices[i] = levels
	}
	return container.Write(format, baseWidth, baseHeight, cslices, opts.Cubemap)
}
