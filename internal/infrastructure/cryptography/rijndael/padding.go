package rijndael

import (
	"bytes"
	"crypto/subtle"
	"fmt"
)

// Padding selects how Encrypt extends a buffer to a whole number of blocks
// and how Decrypt removes it again.
type Padding int

const (
	// PaddingPKCS7 appends k bytes of value k, k in 1..16. This is the default.
	PaddingPKCS7 Padding = iota
	// PaddingZero appends zero bytes up to the next block boundary. Decrypt
	// strips every trailing zero, including any that belonged to the message.
	PaddingZero
)

func (p Padding) String() string {
	switch p {
	case PaddingPKCS7:
		return "pkcs7"
	case PaddingZero:
		return "zero"
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

func (p Padding) valid() bool {
	return p == PaddingPKCS7 || p == PaddingZero
}

// ParsePadding maps "pkcs7" or "zero" to a Padding.
func ParsePadding(s string) (Padding, error) {
	switch s {
	case "pkcs7":
		return PaddingPKCS7, nil
	case "zero":
		return PaddingZero, nil
	default:
		return 0, fmt.Errorf("rijndael: unknown padding %q", s)
	}
}

func pad(buf []byte, p Padding) []byte {
	switch p {
	case PaddingZero:
		return padZero(buf)
	default:
		return padPKCS7(buf)
	}
}

func unpad(buf []byte, p Padding, strict bool) ([]byte, error) {
	switch {
	case p == PaddingZero:
		return unpadZero(buf), nil
	case strict:
		return unpadPKCS7Strict(buf)
	default:
		return unpadPKCS7(buf)
	}
}

func padPKCS7(buf []byte) []byte {
	k := BlockSize - len(buf)%BlockSize
	return append(buf, bytes.Repeat([]byte{byte(k)}, k)...)
}

// unpadPKCS7 trusts the final byte as the pad length and does not look at
// the bytes before it.
func unpadPKCS7(buf []byte) ([]byte, error) {
	n := len(buf)
	if n == 0 {
		return buf, nil
	}
	p := int(buf[n-1])
	if p > n {
		return buf, ErrInvalidPadding
	}
	return buf[:n-p], nil
}

// unpadPKCS7Strict checks the pad length and every pad byte. All of the
// last BlockSize bytes are inspected regardless of the pad value, and the
// result is folded without early exit.
func unpadPKCS7Strict(buf []byte) ([]byte, error) {
	n := len(buf)
	if n < BlockSize {
		return buf, ErrInvalidPadding
	}
	p := buf[n-1]
	good := subtle.ConstantTimeLessOrEq(1, int(p)) & subtle.ConstantTimeLessOrEq(int(p), BlockSize)

	tail := buf[n-BlockSize:]
	for i, b := range tail {
		inPad := subtle.ConstantTimeLessOrEq(BlockSize-i, int(p))
		match := subtle.ConstantTimeByteEq(b, p)
		good &= subtle.ConstantTimeSelect(inPad, match, 1)
	}

	if good != 1 {
		return buf, ErrInvalidPadding
	}
	return buf[:n-int(p)], nil
}

func padZero(buf []byte) []byte {
	k := (BlockSize - len(buf)%BlockSize) % BlockSize
	return append(buf, make([]byte, k)...)
}

func unpadZero(buf []byte) []byte {
	return bytes.TrimRight(buf, "\x00")
}
