package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondError writes the shared error envelope {errors: [{msg}]}.
func respondError(c *gin.Context, status int, route, msg string) {
	log.Printf("[%s] returning error %d: %s", route, status, msg)
	c.AbortWithStatusJSON(status, gin.H{"errors": []gin.H{{"msg": msg}}})
}

func respondInternalError(c *gin.Context, route string, err error) {
	respondError(c, http.StatusInternalServerError, route, err.Error())
}

// userIDFromContext reads the identity injected by the auth middleware.
func userIDFromContext(c *gin.Context) (primitive.ObjectID, bool) {
	value, ok := c.Get("userId")
	if !ok {
		return primitive.NilObjectID, false
	}
	userID, ok := value.(primitive.ObjectID)
	return userID, ok
}
