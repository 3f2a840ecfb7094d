package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"appremises/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, rol string, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"email":   "test@remises.test",
		"rol":     rol,
		"exp":     time.Now().Add(dur).Unix(),
		"iat":     time.Now().Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(testSecret))
	r.GET("/protegida", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"rol": claims.Rol, "email": claims.Email})
	})
	r.GET("/solo-admin", RequireRole(model.RolAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/gestion", RequireRole(model.RolAdmin, model.RolDuenio), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_SinToken(t *testing.T) {
	w := doGet(testRouter(), "/protegida", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestJWTAuth_TokenValido(t *testing.T) {
	tok := signToken(t, model.RolCliente, time.Hour)
	w := doGet(testRouter(), "/protegida", tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.RolCliente)
}

func TestJWTAuth_TokenExpirado(t *testing.T) {
	tok := signToken(t, model.RolCliente, -time.Minute)
	w := doGet(testRouter(), "/protegida", tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_FirmaIncorrecta(t *testing.T) {
	claims := jwt.MapClaims{"user_id": uuid.New().String(), "rol": model.RolAdmin,
		"exp": time.Now().Add(time.Hour).Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("otro-secreto"))
	require.NoError(t, err)

	w := doGet(testRouter(), "/protegida", tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_RolIncorrecto(t *testing.T) {
	tok := signToken(t, model.RolCliente, time.Hour)
	w := doGet(testRouter(), "/solo-admin", tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_RolCorrecto(t *testing.T) {
	tok := signToken(t, model.RolAdmin, time.Hour)
	w := doGet(testRouter(), "/solo-admin", tok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_ListaDeRoles(t *testing.T) {
	assert.Equal(t, http.StatusOK, doGet(testRouter(), "/gestion", signToken(t, model.RolDuenio, time.Hour)).Code)
	assert.Equal(t, http.StatusForbidden, doGet(testRouter(), "/gestion", signToken(t, model.RolCoordinador, time.Hour)).Code)
}
