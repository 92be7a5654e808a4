package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrRateLimited, "Rate limits exceeded", map[string]int{"retry_after": 30})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"SRV_005","message":"Rate limits exceeded","details":{"retry_after":30}}`, rec.Body.String())
}

func TestWriteError_UnknownCode(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, "XYZ_999", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"XYZ_999"}`, rec.Body.String())
}

func TestWriteMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteMessage(rec, http.StatusPaymentRequired, "Payment required")

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.JSONEq(t, `{"error":"Payment required"}`, rec.Body.String())
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrNotFound).Code)

	apiErr := FromError(errors.New("briefing not found"), ErrNotFound)
	assert.Equal(t, ErrNotFound, apiErr.Code)
	assert.Equal(t, "briefing not found", apiErr.Message)
}
