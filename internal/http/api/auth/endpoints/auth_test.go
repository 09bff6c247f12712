package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfarizi/ramadhan-companion/internal/db"
	"github.com/alfarizi/ramadhan-companion/internal/http/api"
)

const testSecret = "auth-test-secret"

func newAuthRouter(t *testing.T) (*gin.Engine, *db.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := db.NewMemoryStore()

	router := gin.New()
	api.MountGroup(router, api.GroupConfig{
		Prefix: "/api/auth",
		Auth:   false,
	},
		AuthPublicModule(testSecret, store),
	)
	api.MountGroup(router, api.GroupConfig{
		Prefix:    "/api/auth",
		Auth:      true,
		SecretKey: testSecret,
		Store:     store,
	},
		AuthSessionModule(testSecret, store),
	)
	return router, store
}

func post(t *testing.T, router *gin.Engine, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signupAndToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := post(t, router, "/api/auth/signup", map[string]string{
		"email":    "ahmad@example.com",
		"password": "ramadhan1447",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestSignupThenLogin(t *testing.T) {
	router, _ := newAuthRouter(t)
	signupAndToken(t, router)

	w := post(t, router, "/api/auth/login", map[string]string{
		"email":    "ahmad@example.com",
		"password": "ramadhan1447",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestSignupDuplicateEmail(t *testing.T) {
	router, _ := newAuthRouter(t)
	signupAndToken(t, router)

	w := post(t, router, "/api/auth/signup", map[string]string{
		"email":    "ahmad@example.com",
		"password": "anotherpassword",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := newAuthRouter(t)
	signupAndToken(t, router)

	w := post(t, router, "/api/auth/login", map[string]string{
		"email":    "ahmad@example.com",
		"password": "wrongpassword",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentProfile(t *testing.T) {
	router, _ := newAuthRouter(t)
	token := signupAndToken(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/current_profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID    int    `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "ahmad@example.com", resp.Email)
}

func TestCurrentProfileRequiresToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/current_profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	router, store := newAuthRouter(t)
	token := signupAndToken(t, router)

	raw, err := json.Marshal(map[string]string{"email": "new@example.com"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/auth/current_profile", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	account, err := store.GetAccountByID(1)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", account.Email)
}
