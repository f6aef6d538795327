package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyService keys.KeyService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyService keys.KeyService) KeyHandler {
	return &keyHandler{
		keyService: keyService,
	}
}

// Generate handles the POST request to generate and store an RSA keypair
// @Summary Generate an RSA keypair
// @Description Generate a keypair whose primes have the requested bit length and store it.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key generation parameters"
// @Success 201 {object} KeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	keyMeta, err := handler.keyService.Generate(ctx, request.Bits, request.Label)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error generating key: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, NewKeyMetaResponse(keyMeta))
}

// List handles the GET request to list stored keys with optional query parameters
// @Summary List stored RSA keys
// @Description Fetch stored keys filtered by label, bits and creation date, with pagination and sorting options.
// @Tags Key
// @Produce json
// @Param label query string false "Key label"
// @Param bits query int false "Prime bit length"
// @Param dateTimeCreated query string false "Created at or after (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by id, label, bits or date_time_created"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) List(ctx *gin.Context) {
	query := keys.NewKeyQuery()
	query.Label = ctx.Query("label")
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated: %v", err.Error())})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	for name, target := range map[string]*int{"bits": &query.Bits, "limit": &query.Limit, "offset": &query.Offset} {
		raw := ctx.Query(name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid %s: %q", name, raw)})
			return
		}
		*target = value
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	keyMetas, err := handler.keyService.List(ctx, query)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err.Error())})
		return
	}

	listResponse := []KeyMetaResponse{}
	for _, keyMeta := range keyMetas {
		listResponse = append(listResponse, NewKeyMetaResponse(keyMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a stored key by ID
// @Summary Retrieve a stored RSA key by ID
// @Description Fetch the public part and metadata of a stored key. The private exponent is never returned.
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	keyMeta, err := handler.keyService.GetByID(ctx, keyID)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("key with id %s could not be retrieved: %v", keyID, err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, NewKeyMetaResponse(keyMeta))
}

// DeleteByID handles the DELETE request to delete a stored key by ID
// @Summary Delete a stored RSA key by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keyService.DeleteByID(ctx, keyID); err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("error deleting key with id %s: %v", keyID, err.Error())})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted key with id %s", keyID)})
}
