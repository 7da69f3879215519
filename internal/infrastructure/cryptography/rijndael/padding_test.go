//go:build unit
// +build unit

package rijndael

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePadding(t *testing.T) {
	p, err := ParsePadding("pkcs7")
	require.NoError(t, err)
	assert.Equal(t, PaddingPKCS7, p)

	p, err = ParsePadding("zero")
	require.NoError(t, err)
	assert.Equal(t, PaddingZero, p)

	_, err = ParsePadding("ansix923")
	assert.Error(t, err)

	assert.Equal(t, "pkcs7", PaddingPKCS7.String())
	assert.Equal(t, "zero", PaddingZero.String())
	assert.Equal(t, "Padding(5)", Padding(5).String())
}

func TestPadPKCS7(t *testing.T) {
	for n := 0; n <= 2*BlockSize; n++ {
		padded := padPKCS7(make([]byte, n))
		k := BlockSize - n%BlockSize

		require.Len(t, padded, n+k)
		require.Zero(t, len(padded)%BlockSize)
		assert.Equal(t, bytes.Repeat([]byte{byte(k)}, k), padded[n:])
	}
}

func TestUnpadPKCS7(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    []byte
		wantErr bool
	}{
		{"empty", []byte{}, []byte{}, false},
		{"one pad byte", append(bytes.Repeat([]byte{'a'}, 15), 0x01), bytes.Repeat([]byte{'a'}, 15), false},
		{"full pad block", bytes.Repeat([]byte{0x10}, 16), []byte{}, false},
		{"zero pad value keeps length", append(bytes.Repeat([]byte{'a'}, 15), 0x00), append(bytes.Repeat([]byte{'a'}, 15), 0x00), false},
		{"pad longer than buffer", bytes.Repeat([]byte{0x20}, 16), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unpadPKCS7(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPadding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnpadPKCS7Strict(t *testing.T) {
	valid := func(n int) []byte {
		return padPKCS7(bytes.Repeat([]byte{'m'}, n))
	}

	for n := 0; n < 2*BlockSize; n++ {
		got, err := unpadPKCS7Strict(valid(n))
		require.NoError(t, err)
		assert.Len(t, got, n)
	}

	tests := []struct {
		name  string
		input []byte
	}{
		{"zero pad value", append(bytes.Repeat([]byte{'a'}, 15), 0x00)},
		{"pad value above block size", append(bytes.Repeat([]byte{0x11}, 31), 0x11)},
		{"mismatched pad byte", append(append(bytes.Repeat([]byte{'a'}, 12), 0x04, 0x04, 0x05), 0x04)},
		{"mismatch at pad start", append(bytes.Repeat([]byte{'a'}, 13), 0x02, 0x03, 0x03)},
		{"shorter than a block", []byte{0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unpadPKCS7Strict(tt.input)
			assert.ErrorIs(t, err, ErrInvalidPadding)
		})
	}
}

func TestZeroPadding(t *testing.T) {
	assert.Empty(t, padZero([]byte{}))
	assert.Len(t, padZero(make([]byte, 1)), BlockSize)
	assert.Len(t, padZero(bytes.Repeat([]byte{'a'}, BlockSize)), BlockSize)
	assert.Len(t, padZero(bytes.Repeat([]byte{'a'}, BlockSize+1)), 2*BlockSize)

	padded := padZero([]byte("abc"))
	assert.Equal(t, append([]byte("abc"), make([]byte, 13)...), padded)
	assert.Equal(t, []byte("abc"), unpadZero(padded))

	// Trailing zeros that belong to the message are lost as well.
	assert.Equal(t, []byte("ab"), unpadZero(padZero([]byte("ab\x00"))))
}

func TestUnpad_Dispatch(t *testing.T) {
	buf := padPKCS7([]byte("dispatch"))

	got, err := unpad(bytes.Clone(buf), PaddingPKCS7, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("dispatch"), got)

	got, err = unpad(bytes.Clone(buf), PaddingPKCS7, true)
	require.NoError(t, err)
	assert.Equal(t, []byte("dispatch"), got)

	got, err = unpad(padZero([]byte("dispatch")), PaddingZero, true)
	require.NoError(t, err)
	assert.Equal(t, []byte("dispatch"), got)
}
