//go:build unit
// +build unit

package rijndael

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// slowMul is shift-and-add multiplication modulo 0x11b.
func slowMul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

func TestDbl(t *testing.T) {
	for x := 0; x < 256; x++ {
		v := byte(x)
		want := v << 1
		if v&0x80 != 0 {
			want ^= 0x1b
		}
		assert.Equalf(t, want, dbl(v), "dbl(%#02x)", v)
	}
}

func TestMultipliers(t *testing.T) {
	multipliers := []struct {
		coef byte
		fn   func(byte) byte
	}{
		{0x02, mul2},
		{0x03, mul3},
		{0x09, mul9},
		{0x0b, mul11},
		{0x0d, mul13},
		{0x0e, mul14},
	}

	for _, m := range multipliers {
		for x := 0; x < 256; x++ {
			v := byte(x)
			want := slowMul(m.coef, v)
			assert.Equalf(t, want, m.fn(v), "%#02x * %#02x", m.coef, v)
			assert.Equalf(t, want, gmul(m.coef, v), "gmul(%#02x, %#02x)", m.coef, v)
		}
	}
}

func TestGmul_KnownProducts(t *testing.T) {
	// FIPS-197 section 4.2: {57} • {83} = {c1}, {57} • {13} = {fe}
	assert.Equal(t, byte(0xc1), slowMul(0x57, 0x83))
	assert.Equal(t, byte(0xfe), slowMul(0x57, 0x13))
	assert.Equal(t, byte(0xae), mul2(0x57))
	assert.Equal(t, byte(0x57), gmul(0x01, 0x57))
}

func TestGmul_UnknownCoefficientPanics(t *testing.T) {
	assert.Panics(t, func() { gmul(0x04, 0x01) })
}
