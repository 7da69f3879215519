package cryptoalg

// BlockCipher is the contract shared by the AES-128, AES-192 and AES-256 handles.
// Block operations work in place on a single 16-byte block; Encrypt and Decrypt
// cover arbitrary-length buffers in ECB mode with padding.
type BlockCipher interface {
	// EncryptBlock encrypts one block in place.
	EncryptBlock(block *[16]byte)

	// DecryptBlock decrypts one block in place.
	DecryptBlock(block *[16]byte)

	// Encrypt pads buf to a whole number of blocks and encrypts it. The returned
	// slice may share buf's backing array.
	Encrypt(buf []byte) []byte

	// Decrypt decrypts buf in place and strips the padding.
	// Returns an error if buf is not a multiple of the block size or the padding cannot be removed.
	Decrypt(buf []byte) ([]byte, error)

	// Rounds returns Nr (10, 12 or 14).
	Rounds() int

	// RoundKey returns a copy of the i-th round key.
	RoundKey(i int) []byte
}

// AESProcessor handles AES symmetric encryption operations.
// AES is used for encrypting/decrypting data with a shared secret key.
// NOTE: ciphertexts are produced in ECB mode; identical plaintext blocks give identical ciphertext blocks.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt encrypts plaintext data using AES with the provided symmetric key.
	// Returns the encrypted ciphertext or an error if encryption fails.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt decrypts AES ciphertext using the provided symmetric key.
	// Returns the original plaintext or an error if decryption fails.
	Decrypt(ciphertext, key []byte) ([]byte, error)

	// EncryptBlock encrypts exactly one 16-byte block without padding.
	EncryptBlock(block, key []byte) ([]byte, error)

	// DecryptBlock decrypts exactly one 16-byte block without padding.
	DecryptBlock(block, key []byte) ([]byte, error)

	// ExpandKey returns the round keys derived from key, one 16-byte slice per round.
	ExpandKey(key []byte) ([][]byte, error)
}
