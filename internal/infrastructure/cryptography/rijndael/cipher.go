package rijndael

import (
	"crypto/cipher"
	"fmt"
)

// Options configures a Cipher beyond its key.
type Options struct {
	// Padding used by Encrypt and Decrypt. The zero value is PaddingPKCS7.
	Padding Padding

	// StrictPadding makes Decrypt verify every PKCS#7 pad byte instead of
	// trusting the last one. Ignored for PaddingZero.
	StrictPadding bool

	// Tracer, when set, is called after every step of EncryptBlock and
	// DecryptBlock.
	Tracer Tracer
}

// Cipher is an AES-128, AES-192 or AES-256 handle. The expanded key is
// computed once at construction and only read afterwards, so a Cipher may
// be shared between goroutines as long as each call works on its own buffer.
type Cipher struct {
	variant Variant
	padding Padding
	strict  bool
	tracer  Tracer
	enc     [maxExpandedKeySize]byte
}

// New128 returns an AES-128 handle with PKCS#7 padding.
func New128(key *[16]byte) *Cipher {
	return newCipher(key[:], AES128, Options{})
}

// New192 returns an AES-192 handle with PKCS#7 padding.
func New192(key *[24]byte) *Cipher {
	return newCipher(key[:], AES192, Options{})
}

// New256 returns an AES-256 handle with PKCS#7 padding.
func New256(key *[32]byte) *Cipher {
	return newCipher(key[:], AES256, Options{})
}

// New returns a handle for a 16, 24 or 32 byte key with PKCS#7 padding.
func New(key []byte) (*Cipher, error) {
	return NewWithOptions(key, Options{})
}

// NewWithPadding is New with an explicit padding.
func NewWithPadding(key []byte, padding Padding) (*Cipher, error) {
	return NewWithOptions(key, Options{Padding: padding})
}

// NewWithOptions returns a handle for key configured by opts.
func NewWithOptions(key []byte, opts Options) (*Cipher, error) {
	v, err := VariantForKeySize(len(key))
	if err != nil {
		return nil, err
	}
	if !opts.Padding.valid() {
		return nil, fmt.Errorf("rijndael: unknown padding %d", int(opts.Padding))
	}
	return newCipher(key, v, opts), nil
}

func newCipher(key []byte, v Variant, opts Options) *Cipher {
	c := &Cipher{
		variant: v,
		padding: opts.Padding,
		strict:  opts.StrictPadding,
		tracer:  opts.Tracer,
	}
	expandKey(key, v, c.enc[:v.ExpandedKeySize()])
	return c
}

// Variant reports the key size of the handle.
func (c *Cipher) Variant() Variant { return c.variant }

// Rounds is Nr: 10, 12 or 14.
func (c *Cipher) Rounds() int { return c.variant.Rounds() }

// Padding reports the padding used by Encrypt and Decrypt.
func (c *Cipher) Padding() Padding { return c.padding }

// RoundKey returns a copy of round key i, 0 <= i <= Rounds().
func (c *Cipher) RoundKey(i int) []byte {
	if i < 0 || i > c.Rounds() {
		panic(fmt.Sprintf("rijndael: round key %d out of range [0, %d]", i, c.Rounds()))
	}
	rk := make([]byte, BlockSize)
	copy(rk, c.roundKey(i))
	return rk
}

// ExpandedKey returns a copy of the whole key schedule.
func (c *Cipher) ExpandedKey() []byte {
	ek := make([]byte, c.variant.ExpandedKeySize())
	copy(ek, c.enc[:])
	return ek
}

// Wipe overwrites the expanded key with zeros. The handle must not be used
// afterwards.
func (c *Cipher) Wipe() {
	clear(c.enc[:])
}

func (c *Cipher) roundKey(i int) []byte {
	return c.enc[i*BlockSize : (i+1)*BlockSize]
}

func (c *Cipher) trace(round int, step Step, s *[BlockSize]byte) {
	if c.tracer != nil {
		c.tracer(round, step, s)
	}
}

// EncryptBlock encrypts one block in place.
func (c *Cipher) EncryptBlock(block *[BlockSize]byte) {
	nr := c.Rounds()

	c.trace(0, StepInput, block)
	addRoundKey(block, c.roundKey(0))
	c.trace(0, StepAddRoundKey, block)

	for round := 1; round < nr; round++ {
		c.trace(round, StepStart, block)
		subBytes(block)
		c.trace(round, StepSubBytes, block)
		shiftRows(block)
		c.trace(round, StepShiftRows, block)
		mixColumns(block)
		c.trace(round, StepMixColumns, block)
		addRoundKey(block, c.roundKey(round))
		c.trace(round, StepAddRoundKey, block)
	}

	// The final round has no MixColumns.
	c.trace(nr, StepStart, block)
	subBytes(block)
	c.trace(nr, StepSubBytes, block)
	shiftRows(block)
	c.trace(nr, StepShiftRows, block)
	addRoundKey(block, c.roundKey(nr))
	c.trace(nr, StepOutput, block)
}

// DecryptBlock decrypts one block in place using the straightforward
// inverse cipher.
func (c *Cipher) DecryptBlock(block *[BlockSize]byte) {
	nr := c.Rounds()

	c.trace(0, StepInput, block)
	addRoundKey(block, c.roundKey(nr))
	c.trace(0, StepInvAddRoundKey, block)

	for round := nr - 1; round > 0; round-- {
		c.trace(nr-round, StepStart, block)
		invShiftRows(block)
		c.trace(nr-round, StepInvShiftRows, block)
		invSubBytes(block)
		c.trace(nr-round, StepInvSubBytes, block)
		addRoundKey(block, c.roundKey(round))
		c.trace(nr-round, StepInvAddRoundKey, block)
		invMixColumns(block)
		c.trace(nr-round, StepInvMixColumns, block)
	}

	c.trace(nr, StepStart, block)
	invShiftRows(block)
	c.trace(nr, StepInvShiftRows, block)
	invSubBytes(block)
	c.trace(nr, StepInvSubBytes, block)
	addRoundKey(block, c.roundKey(0))
	c.trace(nr, StepOutput, block)
}

// Encrypt pads buf and encrypts it block by block (ECB). The result may be
// a grown version of buf sharing its backing array.
func (c *Cipher) Encrypt(buf []byte) []byte {
	buf = pad(buf, c.padding)
	for i := 0; i < len(buf); i += BlockSize {
		c.EncryptBlock((*[BlockSize]byte)(buf[i : i+BlockSize]))
	}
	return buf
}

// Decrypt decrypts buf in place block by block (ECB) and removes the
// padding. The returned slice aliases buf. An empty buf is returned as is.
// On ErrInvalidPadding buf still holds the decrypted blocks.
func (c *Cipher) Decrypt(buf []byte) ([]byte, error) {
	if len(buf) == 0 {
		return buf, nil
	}
	if len(buf)%BlockSize != 0 {
		return buf, ErrInvalidCiphertextLength
	}
	for i := 0; i < len(buf); i += BlockSize {
		c.DecryptBlock((*[BlockSize]byte)(buf[i : i+BlockSize]))
	}
	return unpad(buf, c.padding, c.strict)
}

// Block adapts c to the crypto/cipher.Block interface.
func (c *Cipher) Block() cipher.Block {
	return block{c}
}

type block struct {
	c *Cipher
}

func (b block) BlockSize() int { return BlockSize }

func (b block) Encrypt(dst, src []byte) {
	b.c.EncryptBlock(load(dst, src))
}

func (b block) Decrypt(dst, src []byte) {
	b.c.DecryptBlock(load(dst, src))
}

// load moves the first block of src into dst and returns it as a block.
// copy has memmove semantics, so dst and src may overlap.
func load(dst, src []byte) *[BlockSize]byte {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}
	copy(dst[:BlockSize], src[:BlockSize])
	return (*[BlockSize]byte)(dst[:BlockSize])
}
