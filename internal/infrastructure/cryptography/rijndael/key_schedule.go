package rijndael

import "fmt"

// Variant selects one of the three AES key sizes.
type Variant int

const (
	AES128 Variant = iota
	AES192
	AES256
)

var variantParams = [...]struct {
	name    string
	keySize int
	rounds  int
}{
	AES128: {"AES-128", 16, 10},
	AES192: {"AES-192", 24, 12},
	AES256: {"AES-256", 32, 14},
}

// VariantForKeySize returns the variant that takes keys of n bytes.
func VariantForKeySize(n int) (Variant, error) {
	for v, p := range variantParams {
		if p.keySize == n {
			return Variant(v), nil
		}
	}
	return 0, KeySizeError(n)
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantParams) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantParams[v].name
}

// KeySize is the key length in bytes.
func (v Variant) KeySize() int { return variantParams[v].keySize }

// Nk is the number of 32-bit words in the key.
func (v Variant) Nk() int { return variantParams[v].keySize / wordSize }

// Rounds is Nr.
func (v Variant) Rounds() int { return variantParams[v].rounds }

// ExpandedKeySize is the length of the round key schedule in bytes, 16·(Nr+1).
func (v Variant) ExpandedKeySize() int { return BlockSize * (v.Rounds() + 1) }

// expandKey writes the FIPS-197 key schedule for key into dst, which must
// hold v.ExpandedKeySize() bytes. Round constants are produced by doubling
// the previous one, so there is no table to index past.
func expandKey(key []byte, v Variant, dst []byte) {
	nk := v.Nk()
	words := len(dst) / wordSize
	copy(dst, key[:nk*wordSize])

	rcon := byte(0x01)
	var t [wordSize]byte
	for i := nk; i < words; i++ {
		copy(t[:], dst[(i-1)*wordSize:i*wordSize])
		switch {
		case i%nk == 0:
			rotWord(&t)
			subWord(&t)
			t[0] ^= rcon
			rcon = dbl(rcon)
		case nk == 8 && i%nk == 4:
			subWord(&t)
		}
		for j := 0; j < wordSize; j++ {
			dst[i*wordSize+j] = dst[(i-nk)*wordSize+j] ^ t[j]
		}
	}
}

func rotWord(w *[wordSize]byte) {
	w[0], w[1], w[2], w[3] = w[1], w[2], w[3], w[0]
}

func subWord(w *[wordSize]byte) {
	for i, b := range w {
		w[i] = sbox[b]
	}
}
