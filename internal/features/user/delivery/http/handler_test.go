package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trading-platform-backend/internal/common/middleware"
	"trading-platform-backend/internal/common/validation"
	tiermodels "trading-platform-backend/internal/features/tier/models"
	"trading-platform-backend/internal/features/user/models"
	"trading-platform-backend/internal/features/user/repository/memory"
	"trading-platform-backend/internal/features/user/service"
)

const janeJSON = `{"email":"jane@example.com","firstName":"Jane","lastName":"Doe","phone":"+15550100","country":"US","currency":"USD"}`

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.RegisterBindings(tiermodels.Names())

	logger := zap.NewNop()
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler(logger))

	svc := service.NewUserService(memory.NewUserRepository(), logger)
	NewUserHandler(svc).RegisterRoutes(router.Group("/api"), middleware.HandleErrorWrapper(logger))
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeUser(t *testing.T, w *httptest.ResponseRecorder) models.User {
	t.Helper()
	var u models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	return u
}

func TestCreateUser(t *testing.T) {
	router := newTestRouter()

	w := do(router, http.MethodPost, "/api/users", janeJSON)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	u := decodeUser(t, w)
	assert.Positive(t, u.ID)
	assert.Equal(t, "Bronze", u.AccountTier)
	assert.Equal(t, "0.00", u.Balance)
	assert.Equal(t, "0.00000000", u.BTCEquivalent)
	assert.Contains(t, w.Body.String(), `"depositAddress":null`)

	w = do(router, http.MethodPost, "/api/users", janeJSON)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateUserValidation(t *testing.T) {
	router := newTestRouter()

	w := do(router, http.MethodPost, "/api/users", `{"email":"jane@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"firstName"`)

	w = do(router, http.MethodPost, "/api/users", `{"email":"jane@example.com","firstName":"Jane","lastName":"Doe","phone":"1","country":"US","currency":"USD","accountTier":"Iron"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"accountTier"`)

	w = do(router, http.MethodPost, "/api/users", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUser(t *testing.T) {
	router := newTestRouter()
	created := decodeUser(t, do(router, http.MethodPost, "/api/users", janeJSON))

	w := do(router, http.MethodGet, "/api/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.Email, decodeUser(t, w).Email)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/users/42", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/users/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/users/0", "").Code)
}

func TestGetUserByEmail(t *testing.T) {
	router := newTestRouter()
	do(router, http.MethodPost, "/api/users", janeJSON)

	w := do(router, http.MethodGet, "/api/users/email/jane@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jane", decodeUser(t, w).FirstName)

	w = do(router, http.MethodGet, "/api/users/email/JANE@example.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser(t *testing.T) {
	router := newTestRouter()
	do(router, http.MethodPost, "/api/users", janeJSON)

	w := do(router, http.MethodPut, "/api/users/1", `{"balance":"1500","accountTier":"Silver","depositAddress":"bc1q"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	u := decodeUser(t, w)
	assert.Equal(t, "1500.00", u.Balance)
	assert.Equal(t, "Silver", u.AccountTier)
	assert.Equal(t, "Jane", u.FirstName)

	w = do(router, http.MethodPut, "/api/users/1", `{"depositAddress":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeUser(t, w).DepositAddress)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPut, "/api/users/1", `{"email":null}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPut, "/api/users/1", `{"balance":"lots"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPut, "/api/users/9", `{"firstName":"X"}`).Code)
}

func TestDeleteUser(t *testing.T) {
	router := newTestRouter()
	do(router, http.MethodPost, "/api/users", janeJSON)

	assert.Equal(t, http.StatusNoContent, do(router, http.MethodDelete, "/api/users/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/api/users/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/users/1", "").Code)
}

func TestEmailRulesMatchOnCreateAndUpdate(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/users", janeJSON).Code)

	withEmail := func(email string) string {
		body := map[string]string{
			"email": email, "firstName": "A", "lastName": "B",
			"phone": "1", "country": "US", "currency": "USD",
		}
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		return string(raw)
	}
	emailOnly := func(email string) string {
		raw, err := json.Marshal(map[string]string{"email": email})
		require.NoError(t, err)
		return string(raw)
	}

	for _, email := range []string{"a@b", "a@localhost", "not-an-email"} {
		assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/api/users", withEmail(email)).Code, email)
		assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPut, "/api/users/1", emailOnly(email)).Code, email)
	}

	assert.Equal(t, http.StatusOK, do(router, http.MethodPut, "/api/users/1", emailOnly(`"a b"@x.com`)).Code)
	assert.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/users", withEmail(`"c d"@x.com`)).Code)
}
