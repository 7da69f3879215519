package rijndael

import "fmt"

// Arithmetic in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1 (0x11b).
// Addition is XOR; multiplication by small constants is built from dbl.

// dbl multiplies v by x ("xtime"). The reduction mask is derived from the
// high bit without branching.
func dbl(v byte) byte {
	return v<<1 ^ (0x1b & -(v >> 7))
}

func mul2(v byte) byte {
	return dbl(v)
}

func mul3(v byte) byte {
	return dbl(v) ^ v
}

func mul9(v byte) byte {
	v8 := dbl(dbl(dbl(v)))
	return v8 ^ v
}

func mul11(v byte) byte {
	v2 := dbl(v)
	v8 := dbl(dbl(v2))
	return v8 ^ v2 ^ v
}

func mul13(v byte) byte {
	v4 := dbl(dbl(v))
	v8 := dbl(v4)
	return v8 ^ v4 ^ v
}

func mul14(v byte) byte {
	v2 := dbl(v)
	v4 := dbl(v2)
	v8 := dbl(v4)
	return v8 ^ v4 ^ v2
}

// gmul multiplies v by one of the coefficients that appear in the
// (Inv)MixColumns matrices.
func gmul(coef, v byte) byte {
	switch coef {
	case 0x01:
		return v
	case 0x02:
		return mul2(v)
	case 0x03:
		return mul3(v)
	case 0x09:
		return mul9(v)
	case 0x0b:
		return mul11(v)
	case 0x0d:
		return mul13(v)
	case 0x0e:
		return mul14(v)
	default:
		panic(fmt.Sprintf("rijndael: no multiplier for coefficient %#02x", coef))
	}
}
