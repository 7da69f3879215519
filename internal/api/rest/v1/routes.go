package v1

import (
	"github.com/MGTheTrain/aes-core/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, aesProcessor cryptoalg.AESProcessor) {
	v1 := r.Group(BasePath) // lookup in version file

	cipherHandler := NewCipherHandler(aesProcessor)

	// Key Routes
	v1.POST("/keys", cipherHandler.GenerateKey)
	v1.POST("/keys/expand", cipherHandler.ExpandKey)

	// Buffer Routes
	v1.POST("/encrypt", cipherHandler.Encrypt)
	v1.POST("/decrypt", cipherHandler.Decrypt)

	// Block Routes
	v1.POST("/blocks/encrypt", cipherHandler.EncryptBlock)
	v1.POST("/blocks/decrypt", cipherHandler.DecryptBlock)
}
