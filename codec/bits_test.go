package codec

import (
	"math"
	"testing"
	"testing/quick"
)

func TestZigZagGolden(t *testing.T) {
	golden := []struct {
		x    uint32
		want int32
	}{
		{x: 0, want: 0},
		{x: 1, want: -1},
		{x: 2, want: 1},
		{x: 3, want: -2},
		{x: 4, want: 2},
		{x: 5, want: -3},
		{x: 6, want: 3},
		{x: math.MaxUint32, want: math.MinInt32},
		{x: math.MaxUint32 - 1, want: math.MaxInt32},
	}
	for _, g := range golden {
		if got := ZigZagDecode(g.x); got != g.want {
			t.Errorf("ZigZagDecode(%d) = %d, want %d", g.x, got, g.want)
		}
	}
}

func TestZigZagEncodeGolden(t *testing.T) {
	golden := []struct {
		x    int32
		want uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt32, math.MaxUint32 - 1},
		{math.MinInt32, math.MaxUint32},
	}
	for _, g := range golden {
		if got := ZigZagEncode(g.x); got != g.want {
			t.Errorf("ZigZagEncode(%d) = %d, want %d", g.x, got, g.want)
		}
	}
}

func TestZigZagRoundTrip(t *testing.T) {
	f := func(n int32) bool {
		return ZigZagDecode(ZigZagEncode(n)) == n
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200000}); err != nil {
		t.Error(err)
	}
}

func TestSignExtendTruthTableWidth2(t *testing.T) {
	golden := []struct {
		x    uint32
		want int32
	}{
		{0b00, 0},
		{0b01, 1},
		{0b10, -2},
		{0b11, -1},
	}
	for _, g := range golden {
		if got := SignExtend(g.x, 2); got != g.want {
			t.Errorf("SignExtend(0b%02b, 2) = %d, want %d", g.x, got, g.want)
		}
	}
}

func TestSignExtendIsIdentityOnLowBits(t *testing.T) {
	for width := uint(1); width <= 32; width++ {
		mask := uint32(1)<<width - 1
		if width == 32 {
			mask = math.MaxUint32
		}
		f := func(x uint32) bool {
			x &= mask
			got := SignExtend(x, width)
			return uint32(got)&mask == x
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 2000}); err != nil {
			t.Errorf("width %d: %v", width, err)
		}
	}
}

func TestSignExtendRange(t *testing.T) {
	for width := uint(1); width <= 64; width++ {
		lo := -(int64(1) << (width - 1))
		hi := int64(1)<<(width-1) - 1
		mask := uint64(1)<<width - 1
		if width == 64 {
			mask = math.MaxUint64
		}
		f := func(x uint64) bool {
			x &= mask
			got := SignExtend64(x, width)
			return got >= lo && got <= hi
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 2000}); err != nil {
			t.Errorf("width %d: %v", width, err)
		}
	}
}
