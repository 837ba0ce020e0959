package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenPayload is the user identity embedded in a session token.
type TokenPayload struct {
	ID   string
	Name string
}

// IssueToken signs a session token carrying the user's id and name. The TTL
// is configured process-wide and is effectively non-expiring.
func IssueToken(userID primitive.ObjectID, name, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user": map[string]interface{}{
			"id":   userID.Hex(),
			"name": name,
		},
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken checks signature and expiry, then decodes the user payload.
func VerifyToken(raw, secret string) (*TokenPayload, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, ok := claims["user"].(map[string]interface{})
	if !ok {
		return nil, ErrInvalidToken
	}

	id, _ := user["id"].(string)
	name, _ := user["name"].(string)
	if id == "" {
		return nil, ErrInvalidToken
	}

	return &TokenPayload{ID: id, Name: name}, nil
}
