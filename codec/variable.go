package codec

import (
	"github.com/mewkiz/blackbox/bitstream"
	"github.com/mewkiz/blackbox/errs"
)

// maxVariableGroups is the largest number of 8-bit groups a variable-byte
// integer may span. 5 groups of 7 payload bits cover the full uint32 range
// (35 bits of capacity for 32 bits of value); a 6th group can never be
// needed and signals corruption instead.
const maxVariableGroups = 5

// Variable decodes an unsigned variable-byte integer: successive 8-bit
// groups whose low 7 bits are payload and whose high bit signals "more
// groups follow", accumulated little-endian across groups (the first group
// holds the least significant bits).
func Variable(r *bitstream.Reader) (uint32, error) {
	var v uint32
	for i := 0; i < maxVariableGroups; i++ {
		group, err := r.ReadBits(8)
		if err != nil {
			return 0, err
		}
		v |= (group & 0x7F) << (7 * uint(i))
		if group&0x80 == 0 {
			return v, nil
		}
	}
	return 0, errs.CorruptedErr("codec.Variable", "variable-byte integer exceeds 5 continuation groups")
}

// VariableSigned decodes a signed variable-byte integer: a Variable value,
// ZigZag-decoded.
func VariableSigned(r *bitstream.Reader) (int32, error) {
	u, err := Variable(r)
	if err != nil {
		return 0, err
	}
	return ZigZagDecode(u), nil
}
