package codec

import (
	"github.com/mewkiz/blackbox/bitstream"
	"github.com/mewkiz/blackbox/errs"
)

// maxGammaZeros bounds the leading-zero run of an Elias-Gamma code: a
// canonical gamma value N fits in a uint32 only while its bit-length k+1 is
// at most 32, i.e. at most 31 leading zeros.
const maxGammaZeros = 31

// eliasGammaRaw decodes a canonical Elias-Gamma code and returns its value N
// (N >= 1), unshifted by the offset-by-one convention the exported codecs
// apply on top of it.
func eliasGammaRaw(r *bitstream.Reader, op string) (uint32, error) {
	k := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit {
			break
		}
		k++
		if k > maxGammaZeros {
			return 0, errs.CorruptedErr(op, "Elias-Gamma leading-zero run exceeds 31 bits")
		}
	}
	if k == 0 {
		return 1, nil
	}
	payload, err := r.ReadBits(uint(k))
	if err != nil {
		return 0, err
	}
	return uint32(1)<<uint(k) | payload, nil
}

// EliasGamma decodes a single non-negative integer as a canonical
// Elias-Gamma code offset by one, so that the representable range starts at
// 0 instead of 1.
func EliasGamma(r *bitstream.Reader) (uint32, error) {
	n, err := eliasGammaRaw(r, "codec.EliasGamma")
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// EliasGammaSigned decodes an EliasGamma value and ZigZag-decodes it.
func EliasGammaSigned(r *bitstream.Reader) (int32, error) {
	n, err := EliasGamma(r)
	if err != nil {
		return 0, err
	}
	return ZigZagDecode(n), nil
}

// EliasDelta decodes a single non-negative integer using Elias-Delta coding:
// an Elias-Gamma value L (L >= 1, the bit-length of the following value)
// followed by L-1 further bits which, with an implicit leading 1 prepended,
// form an L-bit value N; the result is N-1, offset by one as with
// EliasGamma. L > 32 is corrupted, since N would not fit a uint32.
func EliasDelta(r *bitstream.Reader) (uint32, error) {
	l, err := eliasGammaRaw(r, "codec.EliasDelta")
	if err != nil {
		return 0, err
	}
	if l > 32 {
		return 0, errs.CorruptedErr("codec.EliasDelta", "Elias-Delta length exceeds 32 bits")
	}
	if l == 1 {
		return 0, nil // N == 1, result N-1 == 0.
	}
	payload, err := r.ReadBits(uint(l - 1))
	if err != nil {
		return 0, err
	}
	n := uint32(1)<<uint(l-1) | payload
	return n - 1, nil
}

// EliasDeltaSigned decodes an EliasDelta value and ZigZag-decodes it.
func EliasDeltaSigned(r *bitstream.Reader) (int32, error) {
	n, err := EliasDelta(r)
	if err != nil {
		return 0, err
	}
	return ZigZagDecode(n), nil
}
