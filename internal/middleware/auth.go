package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/essentia-tours/internal/auth"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserName  = "userName"
	ContextUserRole  = "userRole"
)

func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		// browsers cannot set headers on a websocket handshake
		if authHeader == "" && c.IsWebsocket() && c.Query("token") != "" {
			authHeader = "Bearer " + c.Query("token")
		}

		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		tokenString, ok := bearer(authHeader)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth loads the caller when a valid token is present and never
// rejects the request.
func OptionalAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearer(c.GetHeader("Authorization")); ok {
			if claims, err := jwtManager.ValidateToken(tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// CurrentUserID returns the authenticated user id, or nil.
func CurrentUserID(c *gin.Context) *string {
	id := c.GetString(ContextUserID)
	if id == "" {
		return nil
	}
	return &id
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(ContextUserRole)
}

func bearer(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(ContextUserID, claims.Subject)
	c.Set(ContextUserEmail, claims.Email)
	c.Set(ContextUserName, claims.Nome)
	c.Set(ContextUserRole, claims.Role)
}
