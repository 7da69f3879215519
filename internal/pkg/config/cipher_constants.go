package config

// Padding scheme names accepted in CipherSettings.Padding
const (
	PaddingPKCS7 = "pkcs7"
	PaddingZero  = "zero"
)

// DefaultKeySize is the AES key size in bits used when none is configured
const DefaultKeySize = 256

// EnvPrefix is the prefix of environment variables that override file settings, e.g. AES_CIPHER_PADDING
const EnvPrefix = "AES"
