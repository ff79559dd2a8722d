package codec

import "github.com/mewkiz/blackbox/bitstream"

// Negative14Bit decodes a variable-byte unsigned integer, truncates it to 14
// significant bits (sign-extending from bit 13, ignoring any higher bits the
// variable-byte encoding happened to carry), widens to int32, and negates
// it. Values with bit 13 clear decode to <= 0; values with bit 13 set decode
// to >= 0, as negation flips their sign.
func Negative14Bit(r *bitstream.Reader) (int32, error) {
	u, err := Variable(r)
	if err != nil {
		return 0, err
	}
	truncated := uint32(uint16(u)) & 0x3FFF
	extended := SignExtend(truncated, 14)
	return -extended, nil
}
