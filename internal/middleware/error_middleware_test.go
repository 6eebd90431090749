package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozank/academix/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/students", nil)

	HandleAPIError(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleAPIErrorValidation(t *testing.T) {
	status, body := handleError(t, apperrors.ErrEmailExists)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email already exists", body["message"])
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	status, body := handleError(t, apperrors.ErrStudentNotFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Student not found", body["message"])
}

func TestHandleAPIErrorStoreFailureIsOpaque(t *testing.T) {
	cause := errors.New("connection reset by peer")
	status, body := handleError(t, apperrors.NewStoreError(cause, "error querying students"))

	assert.Equal(t, http.StatusInternalServerError, status)
	// The wire message never exposes the underlying failure.
	assert.Equal(t, "Internal server error", body["message"])
}

func TestHandleAPIErrorUnknownError(t *testing.T) {
	status, body := handleError(t, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["message"])
}
