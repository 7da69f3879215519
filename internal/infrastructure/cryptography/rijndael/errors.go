package rijndael

import (
	"errors"
	"strconv"
)

// KeySizeError reports a key whose length is not 16, 24 or 32 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rijndael: invalid key size " + strconv.Itoa(int(k))
}

var (
	// ErrInvalidCiphertextLength is returned by Decrypt when the buffer is not a multiple of BlockSize.
	ErrInvalidCiphertextLength = errors.New("rijndael: ciphertext is not a multiple of the block size")

	// ErrInvalidPadding is returned by Decrypt when the trailing pad cannot be removed.
	ErrInvalidPadding = errors.New("rijndael: invalid padding")
)
