package container

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/basisgo/gputex/internal/block"
)

// Sentinel validation errors. The writer fails deterministically and
// emits no partial bytes on any of these.
var (
	ErrNoMipLevels        = errors.New("container: mip chain has no levels")
	ErrNoSlices           = errors.New("container: no array slices")
	ErrCubemapCount       = errors.New("container: cubemap slice count must be a multiple of 6")
	ErrLevelCountMismatch = errors.New("container: slices have differing mip level counts")
	ErrBlockDataSize      = errors.New("container: level data size does not match blocksX*blocksY*bytesPerBlock")
	ErrUnsupportedFormat  = errors.New("container: unsupported format")
	ErrImageSizeAlignment = errors.New("container: imageSize is not a multiple of 4")
)

// Level is one mip level's worth of compressed block payload for a
// single array slice (or cubemap face).
type Level struct {
	Data []byte
}

// Slice is an ordered mip chain (level 0 first) for one array element,
// or one cubemap face.
type Slice []Level

// blocksFor returns the block grid dimensions for a level at the given
// mip index, derived from the base (level 0) pixel dimensions.
func blocksFor(baseW, baseH, level int) (blocksX, blocksY int) {
	w := baseW >> uint(level)
	if w < 1 {
		w = 1
	}
	h := baseH >> uint(level)
	if h < 1 {
		h = 1
	}
	return (w + 3) / 4, (h + 3) / 4
}

// Write serializes slices into the canonical container byte layout for
// the given format and base (level 0) pixel dimensions. When cubemap
// is true, len(slices) must be a multiple of 6 and every consecutive
// run of 6 slices is treated as one cubemap's +X,-X,+Y,-Y,+Z,-Z faces,
// in that order. On any validation failure it returns a nil buffer and
// a non-nil error; no partial output is ever produced.
func Write(format block.Format, baseWidth, baseHeight int, slices []Slice, cubemap bool) ([]byte, error) {
	if len(slices) == 0 {
		return nil, ErrNoSlices
	}
	if cubemap && len(slices)%6 != 0 {
		return nil, fmt.Errorf("%w: got %d slices", ErrCubemapCount, len(slices))
	}

	numLevels := len(slices[0])
	if numLevels == 0 {
		return nil, ErrNoMipLevels
	}

	info, ok := formatTable[format]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	bpb := block.BytesPerBlock(format)
	if bpb == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	for si, slice := range slices {
		if len(slice) != numLevels {
			return nil, fmt.Errorf("%w: slice %d has %d levels, want %d", ErrLevelCountMismatch, si, len(slice), numLevels)
		}
		for lvl, level := range slice {
			bx, by := blocksFor(baseWidth, baseHeight, lvl)
			want := bx * by * bpb
			if len(level.Data) != want {
				return nil, fmt.Errorf("%w: slice %d level %d has %d bytes, want %d", ErrBlockDataSize, si, lvl, len(level.Data), want)
			}
		}
	}

	numFaces := 1
	numArrayElements := len(slices)
	if cubemap {
		numFaces = 6
		numArrayElements = len(slices) / 6
	}
	if numArrayElements == 1 {
		// Per the container spec, a single non-array (or single
		// cubemap) entity encodes numberOfArrayElements as 0.
		numArrayElements = 0
	}

	buf := make([]byte, 0, HeaderSize+estimateBodySize(slices))
	buf = append(buf, Magic[:]...)

	putU32 := func(v uint32) {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], v)
		buf = append(buf, tmp[:]...)
	}

	putU32(EndiannessMarker)
	putU32(0) // glType
	putU32(0) // glTypeSize
	putU32(0) // glFormat
	putU32(info.internalFormat)
	putU32(info.baseInternalFormat)
	putU32(uint32(baseWidth))
	putU32(uint32(baseHeight))
	putU32(0) // pixelDepth
	putU32(uint32(numArrayElements))
	putU32(uint32(numFaces))
	putU32(uint32(numLevels))
	putU32(0) // bytesOfKeyValueData

	arrayElements := len(slices)
	if cubemap {
		arrayElements = len(slices) / 6
	}

	for lvl := 0; lvl < numLevels; lvl++ {
		var imageSize uint32
		for a := 0; a < arrayElements; a++ {
			for f := 0; f < numFaces; f++ {
				imageSize += uint32(len(slices[a*numFaces+f][lvl].Data))
			}
		}
		if imageSize%4 != 0 {
			return nil, fmt.Errorf("%w: level %d size %d", ErrImageSizeAlignment, lvl, imageSize)
		}
		putU32(imageSize)
		for a := 0; a < arrayElements; a++ {
			for f := 0; f < numFaces; f++ {
				buf = append(buf, slices[a*numFaces+f][lvl].Data...)
			}
		}
	}

	return buf, nil
}

func estimateBodySize(slices []Slice) int {
	n := 0
	for _, s := range slices {
		for _, lvl := range s {
			n += len(lvl.Data)
		}
	}
	return n + 4*len(slices[0])
}
