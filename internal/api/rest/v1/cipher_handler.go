package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"github.com/thaikhuong62000/RSA/internal/infrastructure/fileio"
)

// CipherHandler defines the interface for block operations with stored keys
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

type cipherHandler struct {
	cipherService keys.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService keys.CipherService) CipherHandler {
	return &cipherHandler{
		cipherService: cipherService,
	}
}

// Encrypt handles the POST request to encrypt text with a stored key
// @Summary Encrypt text
// @Tags Cipher
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Param requestBody body TextRequest true "Plain text"
// @Success 200 {object} BlocksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	var request TextRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}

	cipher, err := handler.cipherService.Encrypt(ctx, ctx.Param("id"), request.Text)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("encryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, BlocksResponse{Blocks: fileio.IntegerStrings(cipher)})
}

// Decrypt handles the POST request to decrypt blocks with a stored key
// @Summary Decrypt cipher blocks
// @Tags Cipher
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Param requestBody body BlocksRequest true "Cipher blocks as decimal strings"
// @Success 200 {object} TextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	var request BlocksRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	cipher, err := fileio.ParseIntegerStrings(request.Blocks)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid blocks: %v", err.Error())})
		return
	}

	text, err := handler.cipherService.Decrypt(ctx, ctx.Param("id"), cipher)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("decryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, TextResponse{Text: text})
}

// Sign handles the POST request to sign text with a stored key
// @Summary Sign text
// @Tags Cipher
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Param requestBody body TextRequest true "Text to sign"
// @Success 200 {object} BlocksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/sign [post]
func (handler *cipherHandler) Sign(ctx *gin.Context) {
	var request TextRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}

	signature, err := handler.cipherService.Sign(ctx, ctx.Param("id"), request.Text)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("signing failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, BlocksResponse{Blocks: fileio.IntegerStrings(signature)})
}

// Verify handles the POST request to verify a signature with a stored key
// @Summary Verify a signature
// @Tags Cipher
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Param requestBody body VerifyRequest true "Text and signature blocks"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/verify [post]
func (handler *cipherHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	signature, err := fileio.ParseIntegerStrings(request.Signature)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid signature: %v", err.Error())})
		return
	}

	valid, err := handler.cipherService.Verify(ctx, ctx.Param("id"), request.Text, signature)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("verification failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}
