package codec

import (
	"github.com/mewkiz/blackbox/bitstream"
	"github.com/mewkiz/blackbox/errs"
)

// Version identifies the log format version a version-branched codec should
// dispatch on. V1 and V2 currently share the Tagged16 layout, but the
// parameter is kept explicit so a future version can diverge without
// changing the call signature.
type Version int

// Recognized log format versions.
const (
	V1 Version = iota + 1
	V2
)

// tagged16Widths maps a 2-bit field tag to its bit width; width 0 means the
// field is always zero and consumes no bits.
var tagged16Widths = [4]uint{0, 4, 8, 16}

// Tagged16 decodes a tuple of four int16 fields. One byte holds four 2-bit
// tags (tag 0 is the high two bits, corresponding to field 0); each tag
// selects the width (and sign-extension) of the field that follows it in
// the bitstream. V1 and V2 share this layout; version is accepted to route
// future divergent versions by tag rather than by a caller-side branch.
func Tagged16(version Version, r *bitstream.Reader) ([4]int16, error) {
	switch version {
	case V1, V2:
		return tagged16Decode(r)
	default:
		return [4]int16{}, errs.CorruptedErr("codec.Tagged16", "unsupported log format version")
	}
}

func tagged16Decode(r *bitstream.Reader) ([4]int16, error) {
	tagByte, err := r.ReadBits(8)
	if err != nil {
		return [4]int16{}, err
	}
	var out [4]int16
	for i := 0; i < 4; i++ {
		shift := uint(6 - 2*i)
		tag := (tagByte >> shift) & 0x3
		width := tagged16Widths[tag]
		if width == 0 {
			out[i] = 0
			continue
		}
		v, err := r.ReadBits(width)
		if err != nil {
			return [4]int16{}, err
		}
		out[i] = int16(SignExtend(v, width))
	}
	return out, nil
}

// tagged32WidthTable maps the 2-bit width selector used by Tagged32's "11"
// header to the field width in bits.
var tagged32WidthTable = [4]uint{8, 16, 24, 32}

// Tagged32 decodes a tuple of three int32 fields. A 2-bit header selects the
// field count and width strategy; fields beyond the selected count are
// zero.
func Tagged32(r *bitstream.Reader) ([3]int32, error) {
	header, err := r.ReadBits(2)
	if err != nil {
		return [3]int32{}, err
	}
	var out [3]int32
	switch header {
	case 0b00:
		v, err := r.ReadBits(2)
		if err != nil {
			return [3]int32{}, err
		}
		out[0] = SignExtend(v, 2)
	case 0b01:
		for i := 0; i < 2; i++ {
			v, err := r.ReadBits(4)
			if err != nil {
				return [3]int32{}, err
			}
			out[i] = SignExtend(v, 4)
		}
	case 0b10:
		for i := 0; i < 3; i++ {
			v, err := r.ReadBits(6)
			if err != nil {
				return [3]int32{}, err
			}
			out[i] = SignExtend(v, 6)
		}
	case 0b11:
		sel, err := r.ReadBits(2)
		if err != nil {
			return [3]int32{}, err
		}
		width := tagged32WidthTable[sel]
		for i := 0; i < 3; i++ {
			v, err := r.ReadBits(width)
			if err != nil {
				return [3]int32{}, err
			}
			out[i] = SignExtend(v, width)
		}
	}
	return out, nil
}

// TaggedVariable decodes count signed variable-byte values in sequence. The
// count is not encoded in the bitstream itself: the real format derives it
// from the number of active delta-encoded fields in the surrounding
// P-frame's schema, which is schema state the codec layer doesn't have
// access to, so the caller supplies it.
func TaggedVariable(r *bitstream.Reader, count int) ([]int32, error) {
	out := make([]int32, count)
	for i := 0; i < count; i++ {
		v, err := VariableSigned(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Null synthesizes the value 0 and consumes no bits from the reader.
func Null(r *bitstream.Reader) (int32, error) {
	return 0, nil
}
