package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trading-platform-backend/internal/common/errors"
)

func newTestRouter(routes map[string]gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	router := gin.New()
	router.Use(RequestID())
	router.Use(ErrorHandler(logger))

	wrap := HandleErrorWrapper(logger)
	for path, h := range routes {
		router.GET(path, wrap(h))
	}
	return router
}

func failWith(err error) gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(err)
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleErrorWrapperStatusMapping(t *testing.T) {
	router := newTestRouter(map[string]gin.HandlerFunc{
		"/validation": failWith(errors.NewValidationError("email", "is required")),
		"/missing":    failWith(errors.NewUserNotFoundError(int64(7))),
		"/conflict":   failWith(errors.NewEmailTakenError("jane@example.com")),
		"/database":   failWith(errors.NewDatabaseError("get user", fmt.Errorf("dial tcp: refused"))),
		"/plain":      failWith(fmt.Errorf("unexpected")),
		"/ok": func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "fine"})
		},
	})

	cases := []struct {
		path   string
		status int
		code   errors.ErrorCode
	}{
		{"/validation", http.StatusBadRequest, errors.ErrCodeValidation},
		{"/missing", http.StatusNotFound, errors.ErrCodeUserNotFound},
		{"/conflict", http.StatusConflict, errors.ErrCodeEmailTaken},
		{"/database", http.StatusInternalServerError, errors.ErrCodeInternal},
		{"/plain", http.StatusInternalServerError, errors.ErrCodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.status, w.Code)
			body := decode(t, w)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.code, body.Error.Code)
			assert.NotEmpty(t, body.RequestID)
			assert.Equal(t, tc.path, body.Path)
		})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInternalErrorsAreSanitized(t *testing.T) {
	router := newTestRouter(map[string]gin.HandlerFunc{
		"/database": failWith(errors.NewDatabaseError("get user", fmt.Errorf("password authentication failed"))),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/database", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password authentication failed")
	assert.NotContains(t, w.Body.String(), "get user")

	body := decode(t, w)
	assert.Equal(t, "Internal server error", body.Error.Message)
}

func TestValidationDetailsAreReturned(t *testing.T) {
	router := newTestRouter(map[string]gin.HandlerFunc{
		"/validation": failWith(errors.NewValidationError("amount", "must be greater than zero")),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/validation", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"amount"`)
	assert.Contains(t, w.Body.String(), "must be greater than zero")
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	router := newTestRouter(map[string]gin.HandlerFunc{
		"/panic": func(c *gin.Context) { panic("boom") },
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, errors.ErrCodeInternal, body.Error.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRequestIDIsPropagated(t *testing.T) {
	router := newTestRouter(map[string]gin.HandlerFunc{
		"/missing": failWith(errors.NewPaymentNotFoundError(3)),
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-123", decode(t, w).RequestID)
}
