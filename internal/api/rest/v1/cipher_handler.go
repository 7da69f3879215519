package v1

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/aes-core/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CipherHandler defines the interface for handling AES operations
type CipherHandler interface {
	GenerateKey(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	EncryptBlock(ctx *gin.Context)
	DecryptBlock(ctx *gin.Context)
	ExpandKey(ctx *gin.Context)
}

// cipherHandler struct holds the AES processor
type cipherHandler struct {
	aesProcessor cryptoalg.AESProcessor
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(aesProcessor cryptoalg.AESProcessor) CipherHandler {
	return &cipherHandler{
		aesProcessor: aesProcessor,
	}
}

func badRequest(ctx *gin.Context, format string, args ...interface{}) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf(format, args...)})
}

// GenerateKey handles the POST request to generate a random AES key
// @Summary Generate an AES key
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key size in bits"
// @Success 201 {object} KeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *cipherHandler) GenerateKey(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid key request: %v", err)
		return
	}

	if err := request.Validate(); err != nil {
		badRequest(ctx, "validation failed: %v", err)
		return
	}

	key, err := handler.aesProcessor.GenerateKey(request.KeySize / 8)
	if err != nil {
		badRequest(ctx, "error generating key: %v", err)
		return
	}

	ctx.JSON(http.StatusCreated, KeyResponse{
		ID:      uuid.New().String(),
		KeySize: request.KeySize,
		Key:     key,
	})
}

// Encrypt handles the POST request to pad and encrypt a buffer in ECB mode
// @Summary Encrypt data
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Key and plaintext"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid encrypt request: %v", err)
		return
	}

	if err := request.Validate(); err != nil {
		badRequest(ctx, "validation failed: %v", err)
		return
	}

	ciphertext, err := handler.aesProcessor.Encrypt(request.Plaintext, request.Key)
	if err != nil {
		badRequest(ctx, "error encrypting data: %v", err)
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles the POST request to decrypt an ECB buffer and strip its padding
// @Summary Decrypt data
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Key and ciphertext"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid decrypt request: %v", err)
		return
	}

	if err := request.Validate(); err != nil {
		badRequest(ctx, "validation failed: %v", err)
		return
	}

	plaintext, err := handler.aesProcessor.Decrypt(request.Ciphertext, request.Key)
	if err != nil {
		badRequest(ctx, "error decrypting data: %v", err)
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Plaintext: plaintext})
}

// EncryptBlock handles the POST request to encrypt a single block
// @Summary Encrypt one 16-byte block
// @Tags Block
// @Accept json
// @Produce json
// @Param requestBody body BlockRequest true "Hex key and block"
// @Success 200 {object} BlockResponse
// @Failure 400 {object} ErrorResponse
// @Router /blocks/encrypt [post]
func (handler *cipherHandler) EncryptBlock(ctx *gin.Context) {
	handler.transformBlock(ctx, handler.aesProcessor.EncryptBlock)
}

// DecryptBlock handles the POST request to decrypt a single block
// @Summary Decrypt one 16-byte block
// @Tags Block
// @Accept json
// @Produce json
// @Param requestBody body BlockRequest true "Hex key and block"
// @Success 200 {object} BlockResponse
// @Failure 400 {object} ErrorResponse
// @Router /blocks/decrypt [post]
func (handler *cipherHandler) DecryptBlock(ctx *gin.Context) {
	handler.transformBlock(ctx, handler.aesProcessor.DecryptBlock)
}

func (handler *cipherHandler) transformBlock(ctx *gin.Context, transform func(block, key []byte) ([]byte, error)) {
	var request BlockRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid block request: %v", err)
		return
	}

	if err := request.Validate(); err != nil {
		badRequest(ctx, "validation failed: %v", err)
		return
	}

	key, err := hex.DecodeString(request.Key)
	if err != nil {
		badRequest(ctx, "invalid key: %v", err)
		return
	}

	block, err := hex.DecodeString(request.Block)
	if err != nil {
		badRequest(ctx, "invalid block: %v", err)
		return
	}

	out, err := transform(block, key)
	if err != nil {
		badRequest(ctx, "error transforming block: %v", err)
		return
	}

	ctx.JSON(http.StatusOK, BlockResponse{Block: hex.EncodeToString(out)})
}

// ExpandKey handles the POST request to list the round keys of a key schedule
// @Summary Expand an AES key
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body ExpandKeyRequest true "Hex key"
// @Success 200 {object} ExpandKeyResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys/expand [post]
func (handler *cipherHandler) ExpandKey(ctx *gin.Context) {
	var request ExpandKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid expand request: %v", err)
		return
	}

	if err := request.Validate(); err != nil {
		badRequest(ctx, "validation failed: %v", err)
		return
	}

	key, err := hex.DecodeString(request.Key)
	if err != nil {
		badRequest(ctx, "invalid key: %v", err)
		return
	}

	roundKeys, err := handler.aesProcessor.ExpandKey(key)
	if err != nil {
		badRequest(ctx, "error expanding key: %v", err)
		return
	}

	response := ExpandKeyResponse{Rounds: len(roundKeys) - 1}
	for _, rk := range roundKeys {
		response.RoundKeys = append(response.RoundKeys, hex.EncodeToString(rk))
	}

	ctx.JSON(http.StatusOK, response)
}
