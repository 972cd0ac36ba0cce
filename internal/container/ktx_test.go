package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/basisgo/gputex/internal/block"
)

func oneLevelBC1(payload []byte) []Slice {
	return []Slice{{{Data: payload}}}
}

func TestWriteSingleMipBC1(t *testing.T) {
	payload := []byte{0, 0, 0xFF, 0xFF, 0, 0, 0, 0}
	got, err := Write(block.FormatBC1, 4, 4, oneLevelBC1(payload), false)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	wantLen := HeaderSize + 4 + len(payload)
	if wantLen != 76 {
		t.Fatalf("test setup: expected 76-byte golden length, computed %d", wantLen)
	}
	if len(got) != wantLen {
		t.Fatalf("len(got) = %d, want %d", len(got), wantLen)
	}
	if !bytes.Equal(got[:len(Magic)], Magic[:]) {
		t.Errorf("magic = % x, want % x", got[:len(Magic)], Magic)
	}
	if !bytes.Equal(got[len(got)-len(payload):], payload) {
		t.Errorf("trailing bytes = % x, want payload % x", got[len(got)-len(payload):], payload)
	}

	endian := binary.LittleEndian.Uint32(got[12:16])
	if endian != EndiannessMarker {
		t.Errorf("endianness marker = %#x, want %#x", endian, EndiannessMarker)
	}
	internalFmt := binary.LittleEndian.Uint32(got[12+16 : 12+20])
	if internalFmt != glCompressedRGBS3TCDXT1 {
		t.Errorf("glInternalFormat = %#x, want %#x", internalFmt, glCompressedRGBS3TCDXT1)
	}
	numLevels := binary.LittleEndian.Uint32(got[12+44 : 12+48])
	if numLevels != 1 {
		t.Errorf("numberOfMipmapLevels = %d, want 1", numLevels)
	}
	imageSize := binary.LittleEndian.Uint32(got[HeaderSize : HeaderSize+4])
	if int(imageSize) != len(payload) {
		t.Errorf("imageSize = %d, want %d", imageSize, len(payload))
	}
}

func TestWriteMultiLevelMipChain(t *testing.T) {
	// 8x8 BC1: level 0 is 2x2 blocks (32 bytes), level 1 is 1x1 block (8 bytes).
	lvl0 := make([]byte, 4*8)
	lvl1 := make([]byte, 8)
	slices := []Slice{{{Data: lvl0}, {Data: lvl1}}}

	got, err := Write(block.FormatBC1, 8, 8, slices, false)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	off := HeaderSize
	size0 := binary.LittleEndian.Uint32(got[off : off+4])
	if int(size0) != len(lvl0) {
		t.Fatalf("level 0 imageSize = %d, want %d", size0, len(lvl0))
	}
	off += 4 + len(lvl0)
	size1 := binary.LittleEndian.Uint32(got[off : off+4])
	if int(size1) != len(lvl1) {
		t.Fatalf("level 1 imageSize = %d, want %d", size1, len(lvl1))
	}
}

func TestWriteCubemap(t *testing.T) {
	faces := make([]Slice, 6)
	for i := range faces {
		faces[i] = Slice{{Data: make([]byte, 8)}}
	}
	got, err := Write(block.FormatETC2RGB, 4, 4, faces, true)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	numFaces := binary.LittleEndian.Uint32(got[12+40 : 12+44])
	if numFaces != 6 {
		t.Errorf("numberOfFaces = %d, want 6", numFaces)
	}
	numArray := binary.LittleEndian.Uint32(got[12+36 : 12+40])
	if numArray != 0 {
		t.Errorf("numberOfArrayElements = %d, want 0 for a single cubemap", numArray)
	}
	imageSize := binary.LittleEndian.Uint32(got[HeaderSize : HeaderSize+4])
	if imageSize != 48 {
		t.Errorf("imageSize = %d, want 48 (6 faces * 8 bytes)", imageSize)
	}
}

func TestWriteArrayOfTwo(t *testing.T) {
	slices := []Slice{
		{{Data: make([]byte, 8)}},
		{{Data: make([]byte, 8)}},
	}
	got, err := Write(block.FormatBC1, 4, 4, slices, false)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	numArray := binary.LittleEndian.Uint32(got[12+36 : 12+40])
	if numArray != 2 {
		t.Errorf("numberOfArrayElements = %d, want 2", numArray)
	}
}

func TestWriteValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		format  block.Format
		w, h    int
		slices  []Slice
		cubemap bool
		wantErr error
	}{
		{
			name:    "no slices",
			format:  block.FormatBC1,
			w:       4,
			h:       4,
			slices:  nil,
			wantErr: ErrNoSlices,
		},
		{
			name:    "cubemap count not multiple of 6",
			format:  block.FormatBC1,
			w:       4,
			h:       4,
			slices:  []Slice{{{Data: make([]byte, 8)}}, {{Data: make([]byte, 8)}}},
			cubemap: true,
			wantErr: ErrCubemapCount,
		},
		{
			name:   "mismatched level counts",
			format: block.FormatBC1,
			w:      8,
			h:      8,
			slices: []Slice{
				{{Data: make([]byte, 32)}, {Data: make([]byte, 8)}},
				{{Data: make([]byte, 32)}},
			},
			wantErr: ErrLevelCountMismatch,
		},
		{
			name:    "wrong block data size",
			format:  block.FormatBC1,
			w:       4,
			h:       4,
			slices:  []Slice{{{Data: make([]byte, 7)}}},
			wantErr: ErrBlockDataSize,
		},
		{
			name:    "unsupported format",
			format:  block.Format(999),
			w:       4,
			h:       4,
			slices:  []Slice{{{Data: make([]byte, 8)}}},
			wantErr: ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Write(tt.format, tt.w, tt.h, tt.slices, tt.cubemap)
			if got != nil {
				t.Errorf("expected nil output on failure, got %d bytes", len(got))
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBlocksForMipLevels(t *testing.T) {
	tests := []struct {
		w, h, level  int
		wantX, wantY int
	}{
		{16, 16, 0, 4, 4},
		{16, 16, 1, 2, 2},
		{16, 16, 2, 1, 1},
		{16, 16, 3, 1, 1}, // floors at 1x1, never vanishes
		{9, 5, 0, 3, 2},   // ceil(9/4)=3, ceil(5/4)=2
	}
	for _, tt := range tests {
		gx, gy := blocksFor(tt.w, tt.h, tt.level)
		if gx != tt.wantX || gy != tt.wantY {
			t.Errorf("blocksFor(%d,%d,%d) = (%d,%d), want (%d,%d)", tt.w, tt.h, tt.level, gx, gy, tt.wantX, tt.wantY)
		}
	}
}
