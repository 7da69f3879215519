package v1

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/aes-core/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is returned with every 4xx response
type ErrorResponse struct {
	Message string `json:"message"`
}

// GenerateKeyRequest asks for a random key of KeySize bits
type GenerateKeyRequest struct {
	KeySize int `json:"key_size" validate:"required,aes_key_size"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	return validateStruct(r)
}

// KeyResponse carries a generated key, base64 encoded in JSON
type KeyResponse struct {
	ID      string `json:"id"`
	KeySize int    `json:"key_size"`
	Key     []byte `json:"key"`
}

// EncryptRequest holds a key and an arbitrary-length plaintext, both base64 encoded in JSON
type EncryptRequest struct {
	Key       []byte `json:"key" validate:"required,min=16,max=32"`
	Plaintext []byte `json:"plaintext"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateStruct(r)
}

// EncryptResponse holds the padded ECB ciphertext
type EncryptResponse struct {
	Ciphertext []byte `json:"ciphertext"`
}

// DecryptRequest holds a key and a ciphertext, both base64 encoded in JSON
type DecryptRequest struct {
	Key        []byte `json:"key" validate:"required,min=16,max=32"`
	Ciphertext []byte `json:"ciphertext"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateStruct(r)
}

// DecryptResponse holds the unpadded plaintext
type DecryptResponse struct {
	Plaintext []byte `json:"plaintext"`
}

// BlockRequest holds a hex key and a single hex-encoded 16-byte block
type BlockRequest struct {
	Key   string `json:"key" validate:"required,hexadecimal"`
	Block string `json:"block" validate:"required,hexadecimal,len=32"`
}

// Validate for validating BlockRequest struct
func (r *BlockRequest) Validate() error {
	return validateStruct(r)
}

// BlockResponse holds the transformed block as hex
type BlockResponse struct {
	Block string `json:"block"`
}

// ExpandKeyRequest holds a hex key
type ExpandKeyRequest struct {
	Key string `json:"key" validate:"required,hexadecimal"`
}

// Validate for validating ExpandKeyRequest struct
func (r *ExpandKeyRequest) Validate() error {
	return validateStruct(r)
}

// ExpandKeyResponse lists the round keys as hex, round 0 first
type ExpandKeyResponse struct {
	Rounds    int      `json:"rounds"`
	RoundKeys []string `json:"round_keys"`
}

func validateStruct(s interface{}) error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
