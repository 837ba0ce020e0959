package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/auth"
)

// TokenHeader carries the session token on private routes.
const TokenHeader = "X-Auth-Token"

// Authenticate verifies the session token and injects the caller's identity
// into the context. It rejects missing tokens before any parsing and never
// touches the store.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(TokenHeader))
		if raw == "" {
			log.Println("[AUTH] [ERROR] missing token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errors": []gin.H{{"msg": "No Token, Authorization Denied"}},
			})
			return
		}

		payload, err := auth.VerifyToken(raw, secret)
		if err != nil {
			log.Println("[AUTH] [ERROR] token validation failed:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errors": []gin.H{{"msg": "Token is not valid"}},
			})
			return
		}

		userID, err := primitive.ObjectIDFromHex(payload.ID)
		if err != nil {
			log.Println("[AUTH] [ERROR] invalid user id claim")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errors": []gin.H{{"msg": "Token is not valid"}},
			})
			return
		}

		c.Set("userId", userID)
		c.Set("userName", payload.Name)
		c.Next()
	}
}
