package cryptography

import (
	"crypto/rand"
	"fmt"

	"github.com/MGTheTrain/aes-core/internal/domain/cryptoalg"
	"github.com/MGTheTrain/aes-core/internal/infrastructure/cryptography/rijndael"
	"github.com/MGTheTrain/aes-core/internal/pkg/config"
	"github.com/MGTheTrain/aes-core/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface on top of the rijndael cipher core
type aesProcessor struct {
	logger  logger.Logger
	options rijndael.Options
}

// NewAESProcessor creates and returns a new instance of aesProcessor.
// A nil settings selects PKCS#7 padding without strict verification.
func NewAESProcessor(logger logger.Logger, settings *config.CipherSettings) (cryptoalg.AESProcessor, error) {
	if settings == nil {
		settings = config.DefaultCipherSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cipher settings: %w", err)
	}

	padding, err := rijndael.ParsePadding(settings.Padding)
	if err != nil {
		return nil, fmt.Errorf("invalid cipher settings: %w", err)
	}

	p := &aesProcessor{
		logger: logger,
		options: rijndael.Options{
			Padding:       padding,
			StrictPadding: settings.StrictPadding,
		},
	}
	if settings.TraceRounds && logger.Enabled(config.LogLevelDebug) {
		p.options.Tracer = p.traceRound
	}

	return p, nil
}

func (p *aesProcessor) traceRound(round int, step rijndael.Step, state *[rijndael.BlockSize]byte) {
	p.logger.Debug(fmt.Sprintf("round[%2d].%-6s %x", round, step, state[:]))
}

func (p *aesProcessor) newCipher(key []byte) (*rijndael.Cipher, error) {
	c, err := rijndael.NewWithOptions(key, p.options)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return c, nil
}

// GenerateKey generates a random AES key of the specified size in bytes
func (p *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	if _, err := rijndael.VariantForKeySize(keySize); err != nil {
		return nil, fmt.Errorf("unsupported key size %d: must be 16, 24 or 32 bytes", keySize)
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	p.logger.Info(fmt.Sprintf("Generated AES-%d key", keySize*8))
	return key, nil
}

// Encrypt pads and encrypts data in ECB mode. data is not modified.
func (p *aesProcessor) Encrypt(data, key []byte) ([]byte, error) {
	c, err := p.newCipher(key)
	if err != nil {
		return nil, err
	}
	defer c.Wipe()

	buf := make([]byte, len(data), len(data)+rijndael.BlockSize)
	copy(buf, data)

	ciphertext := c.Encrypt(buf)
	p.logger.Info(fmt.Sprintf("%s encryption succeeded", c.Variant()))
	return ciphertext, nil
}

// Decrypt decrypts ECB ciphertext and removes the padding. ciphertext is not modified.
func (p *aesProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	c, err := p.newCipher(key)
	if err != nil {
		return nil, err
	}
	defer c.Wipe()

	buf := make([]byte, len(ciphertext))
	copy(buf, ciphertext)

	plaintext, err := c.Decrypt(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt data: %w", err)
	}

	p.logger.Info(fmt.Sprintf("%s decryption succeeded", c.Variant()))
	return plaintext, nil
}

// EncryptBlock encrypts a single 16-byte block without padding
func (p *aesProcessor) EncryptBlock(block, key []byte) ([]byte, error) {
	c, s, err := p.prepareBlock(block, key)
	if err != nil {
		return nil, err
	}
	defer c.Wipe()

	c.EncryptBlock(s)
	return s[:], nil
}

// DecryptBlock decrypts a single 16-byte block without padding
func (p *aesProcessor) DecryptBlock(block, key []byte) ([]byte, error) {
	c, s, err := p.prepareBlock(block, key)
	if err != nil {
		return nil, err
	}
	defer c.Wipe()

	c.DecryptBlock(s)
	return s[:], nil
}

func (p *aesProcessor) prepareBlock(block, key []byte) (*rijndael.Cipher, *[rijndael.BlockSize]byte, error) {
	if len(block) != rijndael.BlockSize {
		return nil, nil, fmt.Errorf("block must be exactly %d bytes, got %d", rijndael.BlockSize, len(block))
	}
	c, err := p.newCipher(key)
	if err != nil {
		return nil, nil, err
	}
	s := new([rijndael.BlockSize]byte)
	copy(s[:], block)
	return c, s, nil
}

// ExpandKey returns the round keys of the schedule derived from key
func (p *aesProcessor) ExpandKey(key []byte) ([][]byte, error) {
	c, err := p.newCipher(key)
	if err != nil {
		return nil, err
	}
	defer c.Wipe()

	roundKeys := make([][]byte, c.Rounds()+1)
	for i := range roundKeys {
		roundKeys[i] = c.RoundKey(i)
	}
	return roundKeys, nil
}
