//go:build unit
// +build unit

package v1

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKeyRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   GenerateKeyRequest
		shouldErr bool
	}{
		{"Valid AES 128", GenerateKeyRequest{KeySize: 128}, false},
		{"Valid AES 192", GenerateKeyRequest{KeySize: 192}, false},
		{"Valid AES 256", GenerateKeyRequest{KeySize: 256}, false},
		{"Invalid AES 100", GenerateKeyRequest{KeySize: 100}, true},
		{"Missing key size", GenerateKeyRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestBlockRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   BlockRequest
		shouldErr bool
	}{
		{"Valid block", BlockRequest{Key: "000102030405060708090a0b0c0d0e0f", Block: "00112233445566778899aabbccddeeff"}, false},
		{"Short block", BlockRequest{Key: "000102030405060708090a0b0c0d0e0f", Block: "0011"}, true},
		{"Non-hex block", BlockRequest{Key: "00", Block: "zz112233445566778899aabbccddeeff"}, true},
		{"Missing key", BlockRequest{Block: "00112233445566778899aabbccddeeff"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestEncryptDecryptRequest_Validate(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, 16)

	require.NoError(t, (&EncryptRequest{Key: key}).Validate())
	require.NoError(t, (&EncryptRequest{Key: key, Plaintext: []byte("x")}).Validate())
	require.Error(t, (&EncryptRequest{Key: key[:8]}).Validate())
	require.Error(t, (&EncryptRequest{}).Validate())

	require.NoError(t, (&DecryptRequest{Key: key, Ciphertext: key}).Validate())
	require.NoError(t, (&DecryptRequest{Key: key}).Validate())
	require.Error(t, (&DecryptRequest{Key: bytes.Repeat([]byte{0x01}, 33), Ciphertext: key}).Validate())
}
