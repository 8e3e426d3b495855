package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/essentia-tours/internal/auth"
	"github.com/BruksfildServices01/essentia-tours/internal/config"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
)

func setupRouter(t *testing.T) (*gin.Engine, *auth.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	jm := auth.NewJWTManager(cfg)

	r := gin.New()
	r.Use(Metrics())

	r.GET("/me", OptionalAuth(jm), func(c *gin.Context) {
		id := CurrentUserID(c)
		if id == nil {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": *id})
	})

	admin := r.Group("/admin", AuthMiddleware(jm), RequireRole(models.RoleAdmin))
	admin.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	return r, jm
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAndRoles(t *testing.T) {
	r, jm := setupRouter(t)

	adminToken, err := jm.GenerateToken(&models.User{ID: "u1", UserType: models.RoleAdmin})
	require.NoError(t, err)
	guiaToken, err := jm.GenerateToken(&models.User{ID: "u2", UserType: models.RoleGuia})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/admin/ping", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/admin/ping", "garbage").Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin/ping", guiaToken).Code)
	assert.Equal(t, http.StatusOK, do(r, "/admin/ping", adminToken).Code)
}

func TestOptionalAuth(t *testing.T) {
	r, jm := setupRouter(t)
	token, err := jm.GenerateToken(&models.User{ID: "u9", UserType: models.RoleCliente})
	require.NoError(t, err)

	assert.JSONEq(t, `{"user":null}`, do(r, "/me", "").Body.String())
	assert.JSONEq(t, `{"user":null}`, do(r, "/me", "bad").Body.String())
	assert.JSONEq(t, `{"user":"u9"}`, do(r, "/me", token).Body.String())
}

func TestCORSPreflight(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.CorsAllowedOrigins = []string{"http://localhost:3000"}

	h := NewCORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/passeios", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEqual(t, http.StatusTeapot, w.Code)
}
