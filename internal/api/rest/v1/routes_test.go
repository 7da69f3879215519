//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/aes-core/internal/infrastructure/cryptography"
	pkgTesting "github.com/MGTheTrain/aes-core/internal/pkg/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockProcessor := new(MockAESProcessor)
	mockProcessor.On("GenerateKey", mock.Anything).Return(nil, nil)

	r := gin.Default()
	SetupRoutes(r, mockProcessor)

	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/aes/keys"},
		{"POST", "/api/v1/aes/keys/expand"},
		{"POST", "/api/v1/aes/encrypt"},
		{"POST", "/api/v1/aes/decrypt"},
		{"POST", "/api/v1/aes/blocks/encrypt"},
		{"POST", "/api/v1/aes/blocks/decrypt"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

func TestSetupRoutes_EndToEnd(t *testing.T) {
	processor, err := cryptography.NewAESProcessor(pkgTesting.NewMockLogger(false), nil)
	require.NoError(t, err)

	r := gin.New()
	SetupRoutes(r, processor)

	post := func(url string, body interface{}) *httptest.ResponseRecorder {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req, _ := http.NewRequest("POST", url, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post("/api/v1/aes/blocks/encrypt", BlockRequest{
		Key:   "000102030405060708090a0b0c0d0e0f1011121314151617",
		Block: "00112233445566778899aabbccddeeff",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dda97ca4864cdfe06eaf70a0ec0d7191")

	key := []byte("TopSecretPasswor")
	message := []byte("This is a super secret text that no one should read!")

	w = post("/api/v1/aes/encrypt", EncryptRequest{Key: key, Plaintext: message})
	require.Equal(t, http.StatusOK, w.Code)
	var encrypted EncryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encrypted))
	assert.Len(t, encrypted.Ciphertext, 64)

	w = post("/api/v1/aes/decrypt", DecryptRequest{Key: key, Ciphertext: encrypted.Ciphertext})
	require.Equal(t, http.StatusOK, w.Code)
	var decrypted DecryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decrypted))
	assert.Equal(t, message, decrypted.Plaintext)

	w = post("/api/v1/aes/decrypt", DecryptRequest{Key: key})
	require.Equal(t, http.StatusOK, w.Code)
	var empty DecryptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &empty))
	assert.Empty(t, empty.Plaintext)

	w = post("/api/v1/aes/decrypt", DecryptRequest{Key: key, Ciphertext: []byte("short")})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
