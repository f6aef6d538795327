//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
	"github.com/thaikhuong62000/RSA/internal/domain/keys"
	"github.com/thaikhuong62000/RSA/internal/pkg/testutil"
)

func newCipherTestContext(t *testing.T, keyID, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys/"+keyID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: keyID}}
	return c, w
}

func TestCipherHandler_Encrypt_Success(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewCipherHandler(mockCipherService)

	mockCipherService.On("Encrypt", mock.Anything, "abc-123", "A").Return(testutil.Ints(2790), nil)

	c, w := newCipherTestContext(t, "abc-123", `{"text": "A"}`)
	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"blocks": ["2790"]}`, w.Body.String())
	mockCipherService.AssertExpectations(t)
}

func TestCipherHandler_Encrypt_KeyNotFound(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewCipherHandler(mockCipherService)

	mockCipherService.On("Encrypt", mock.Anything, "missing", "A").Return(nil, keys.ErrKeyNotFound)

	c, w := newCipherTestContext(t, "missing", `{"text": "A"}`)
	handler.Encrypt(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCipherHandler_Encrypt_CharacterTooLarge(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewCipherHandler(mockCipherService)

	mockCipherService.On("Encrypt", mock.Anything, "tiny", "A").Return(nil, cryptoalg.ErrBlockTooLarge)

	c, w := newCipherTestContext(t, "tiny", `{"text": "A"}`)
	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCipherHandler_Decrypt_Success(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewCipherHandler(mockCipherService)

	mockCipherService.
		On("Decrypt", mock.Anything, "abc-123", mock.MatchedBy(func(blocks []cryptoalg.Block) bool {
			return len(blocks) == 1 && blocks[0].String() == "2790"
		})).
		Return("A", nil)

	c, w := newCipherTestContext(t, "abc-123", `{"blocks": ["2790"]}`)
	handler.Decrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"text": "A"}`, w.Body.String())
	mockCipherService.AssertExpectations(t)
}

func TestCipherHandler_Decrypt_InvalidBlocks(t *testing.T) {
	for _, body := range []string{`{"blocks": []}`, `{"blocks": ["12a"]}`, `{"blocks": ["-1"]}`, `{}`, `not json`} {
		mockCipherService := new(MockCipherService)
		handler := NewCipherHandler(mockCipherService)

		c, w := newCipherTestContext(t, "abc-123", body)
		handler.Decrypt(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		mockCipherService.AssertNotCalled(t, "Decrypt", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestCipherHandler_Decrypt_BlockTooLarge(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewCipherHandler(mockCipherService)

	mockCipherService.On("Decrypt", mock.Anything, "abc-123", mock.Anything).Return("", cryptoalg.ErrBlockTooLarge)

	c, w := newCipherTestContext(t, "abc-123", `{"blocks": ["5000"]}`)
	handler.Decrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCipherHandler_Sign_Success(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewCipherHandler(mockCipherService)

	mockCipherService.On("Sign", mock.Anything, "abc-123", "Hi").Return(testutil.Ints(72, 105), nil)

	c, w := newCipherTestContext(t, "abc-123", `{"text": "Hi"}`)
	handler.Sign(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"blocks": ["72", "105"]}`, w.Body.String())
	mockCipherService.AssertExpectations(t)
}

func TestCipherHandler_Verify(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewCipherHandler(mockCipherService)

	mockCipherService.On("Verify", mock.Anything, "abc-123", "Hi", mock.Anything).Return(true, nil).Once()
	mockCipherService.On("Verify", mock.Anything, "abc-123", "Ho", mock.Anything).Return(false, nil).Once()

	c, w := newCipherTestContext(t, "abc-123", `{"text": "Hi", "signature": ["72", "105"]}`)
	handler.Verify(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid": true}`, w.Body.String())

	c, w = newCipherTestContext(t, "abc-123", `{"text": "Ho", "signature": ["72", "105"]}`)
	handler.Verify(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid": false}`, w.Body.String())

	c, w = newCipherTestContext(t, "abc-123", `{"text": "Hi"}`)
	handler.Verify(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockCipherService.AssertExpectations(t)
}
