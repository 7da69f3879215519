package config

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/aes-core/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// CipherSettings holds the block cipher configuration: key size for generated keys,
// padding scheme and whether padding is verified strictly on decryption
type CipherSettings struct {
	KeySize       int    `mapstructure:"key_size" validate:"required,aes_key_size"`
	Padding       string `mapstructure:"padding" validate:"required,aes_padding"`
	StrictPadding bool   `mapstructure:"strict_padding"`
	TraceRounds   bool   `mapstructure:"trace_rounds"`
}

// DefaultCipherSettings returns AES-256 with lenient PKCS#7 padding
func DefaultCipherSettings() *CipherSettings {
	return &CipherSettings{
		KeySize: DefaultKeySize,
		Padding: PaddingPKCS7,
	}
}

// KeySizeBytes returns the configured key size in bytes
func (s *CipherSettings) KeySizeBytes() int {
	return s.KeySize / 8
}

// Validate checks that all fields in CipherSettings are valid
func (s *CipherSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for CipherSettings: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
