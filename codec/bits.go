// Package codec implements the bit-packed integer decoders used to read a
// single field (or small tagged tuple of fields) from a bitstream.Reader
// positioned at a field boundary. Every decoder here is stateless: its only
// effect is to advance the reader and return a value or an error.
package codec

// ZigZagDecode decodes a ZigZag encoded unsigned integer back to its signed
// value.
//
// Examples of ZigZag encoded values on the left and decoded values on the
// right:
//
//	0 =>  0
//	1 => -1
//	2 =>  1
//	3 => -2
//
// ref: https://developers.google.com/protocol-buffers/docs/encoding
func ZigZagDecode(x uint32) int32 {
	return int32(x>>1) ^ -int32(x&1)
}

// ZigZagEncode encodes a signed integer using ZigZag encoding, interleaving
// sign into the low bit so that small-magnitude values map to small unsigned
// values.
//
// Implemented as the shift-xor form rather than a negate-and-shift, because
// negating math.MinInt32 overflows int32: encode(n) = (n<<1) ^ (n>>31), with
// n>>31 an arithmetic (sign-extending) shift.
func ZigZagEncode(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

// SignExtend64 treats the low width bits of x as a two's complement integer
// of that width and sign-extends it to a full int64. width must be in
// [1, 64].
//
// Examples with width=3: 0b011 -> 3, 0b100 -> -4, 0b111 -> -1.
func SignExtend64(x uint64, width uint) int64 {
	signBit := uint64(1) << (width - 1)
	x &= signBit<<1 - 1
	if x&signBit == 0 {
		return int64(x)
	}
	return int64(x^signBit) - int64(signBit)
}

// SignExtend treats the low width bits of x as a two's complement integer of
// that width and sign-extends it to an int32. width must be in [1, 32].
func SignExtend(x uint32, width uint) int32 {
	return int32(SignExtend64(uint64(x), width))
}
