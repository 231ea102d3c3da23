package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "befixed/database/repository/user"
	"befixed/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware rejects requests without a valid bearer token for an
// existing account. On success the user id is stored in the gin context under
// "userID".
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := bearerUserID(c, repo)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No has iniciado sesión. Por favor, inicia sesión para acceder.",
			})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user id when a valid token is present
// and lets the request through either way.
func OptionalAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := bearerUserID(c, repo); ok {
			c.Set("userID", userID)
		}
		c.Next()
	}
}

func bearerUserID(c *gin.Context, repo userRepo.UserRepository) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return "", false
	}

	userID, err := utils.ExtractIDFromToken(tokenString)
	if err != nil || userID == "" {
		return "", false
	}

	// The token must still refer to a live account.
	u, err := repo.GetByID(context.Background(), userID)
	if err != nil || u == nil {
		return "", false
	}
	return userID, true
}
