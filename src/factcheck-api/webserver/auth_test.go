package webserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter(apiKey string, secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	a := NewAuth(apiKey, secret)
	r.POST("/v1/auth/token", a.Token)
	r.GET("/v1/secure", JWTMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"client": c.GetString("client")})
	})
	return r
}

func TestTokenIssuedForValidKey(t *testing.T) {
	r := authRouter("secret-key", []byte("jwt-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token",
		bytes.NewBufferString(`{"api_key": "secret-key", "client": "dashboard"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")
}

func TestTokenRejectedForBadKey(t *testing.T) {
	r := authRouter("secret-key", []byte("jwt-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token",
		bytes.NewBufferString(`{"api_key": "wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenRejectedWhenKeyUnconfigured(t *testing.T) {
	r := authRouter("", []byte("jwt-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token",
		bytes.NewBufferString(`{"api_key": ""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/auth/token",
		bytes.NewBufferString(`{"api_key": "anything"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddleware(t *testing.T) {
	secret := []byte("jwt-secret")
	r := authRouter("secret-key", secret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/secure", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := issueJWT("dashboard", secret)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dashboard")

	wrong, err := issueJWT("dashboard", []byte("other-secret"))
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/secure", nil)
	req.Header.Set("Authorization", "Bearer "+wrong)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
