package block

// Format identifies a compressed block layout for the dispatcher.
type Format int

const (
	FormatBC1 Format = iota
	FormatBC3
	FormatBC4
	FormatBC5
	FormatBC7
	FormatETC1
	FormatETC1S
	FormatETC2RGB
	FormatETC2RGBA
	FormatETC2Alpha
	FormatPVRTC1_4RGB
	FormatPVRTC1_4RGBA
)

// BytesPerBlock returns the payload length a format expects, or 0 for
// an unrecognized format.
func BytesPerBlock(fmt Format) int {
	switch fmt {
	case FormatBC1, FormatBC4, FormatETC1, FormatETC1S, FormatETC2RGB, FormatETC2Alpha:
		return 8
	case FormatBC3, FormatBC5, FormatBC7, FormatETC2RGBA:
		return 16
	default:
		return 0
	}
}

// Decode dispatches payload to the decoder for fmt, writing into dst.
// dst should be pre-filled (e.g. via NewTile) so single-channel formats
// leave a sane default in the channels they don't touch. The returned
// bool reports structural success: false for an unrecognized format, a
// BC7 block not in mode 6, an ETC2 block in an unsupported planar/T/H
// submode, or a BC3 block whose color half used punch-through alpha.
// PVRTC1 is not reachable through this per-block dispatcher since it
// decodes a whole image at once; see PvrtcImage.
func Decode(fmt Format, payload []byte, dst *Tile) bool {
	switch fmt {
	case FormatBC1:
		DecodeBC1(payload, dst, true)
		return true
	case FormatBC3:
		return DecodeBC3(payload, dst)
	case FormatBC4:
		out := DecodeBC4Channel(payload)
		for i := range dst {
			dst[i].R = out[i]
		}
		return true
	case FormatBC5:
		DecodeBC5(payload, dst)
		return true
	case FormatBC7:
		return DecodeBC7Mode6(payload, dst)
	case FormatETC1, FormatETC1S, FormatETC2RGB:
		return DecodeETC1(payload, dst)
	case FormatETC2RGBA:
		return DecodeETC2RGBA(payload, dst)
	case FormatETC2Alpha:
		out := DecodeETC2EACAlpha(payload)
		for i := range dst {
			dst[i].A = out[i]
		}
		return true
	default:
		return false
	}
}
