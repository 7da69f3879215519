package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Tag names registered by New
const (
	AESKeySizeTag = "aes_key_size"
	AESPaddingTag = "aes_padding"
)

// New returns a validator with the AES-specific tags registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation(AESKeySizeTag, KeySizeValidation); err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", AESKeySizeTag, err)
	}
	if err := validate.RegisterValidation(AESPaddingTag, PaddingValidation); err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", AESPaddingTag, err)
	}

	return validate, nil
}

// KeySizeValidation validates an AES key size given in bits (128, 192 or 256).
func KeySizeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case 128, 192, 256:
		return true
	default:
		return false
	}
}

// PaddingValidation validates a padding scheme name.
func PaddingValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pkcs7", "zero":
		return true
	default:
		return false
	}
}
