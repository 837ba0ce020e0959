package handlers

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/auth"
	"backend/internal/models"
	"backend/internal/validate"
)

var RegisterRules = []validate.Rule{
	validate.Required("name", "Name is Required"),
	validate.Required("email", "Email is Required"),
	validate.Required("password", "Password is Required"),
}

var LoginRules = []validate.Rule{
	validate.Required("email", "Email is Required"),
	validate.Required("password", "Password is Required"),
}

var AddressRules = []validate.Rule{
	validate.Required("flat", "Flat is Required"),
	validate.Required("street", "Street is Required"),
	validate.Required("landmark", "Landmark is Required"),
	validate.Required("city", "City is Required"),
	validate.Required("state", "State is Required"),
	validate.Required("country", "Country is Required"),
	validate.Required("pin", "Pin is Required"),
	validate.Required("mobile", "Mobile is Required"),
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addressRequest struct {
	Flat     string `json:"flat"`
	Street   string `json:"street"`
	Landmark string `json:"landmark"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Pin      string `json:"pin"`
	Mobile   string `json:"mobile"`
}

// gravatarURL derives the avatar image deterministically from the email.
func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=300&r=pg&d=mm"
}

// Register creates a new user account. It does not log the user in.
func Register(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/users/register"

		var req registerRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid JSON Body")
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if count > 0 {
			respondError(c, http.StatusConflict, route, "User is Already Exists")
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		now := time.Now()
		user := models.User{
			Name:      strings.TrimSpace(req.Name),
			Email:     email,
			Password:  hash,
			Avatar:    gravatarURL(email),
			Address:   models.BlankAddress(),
			CreatedAt: now,
			UpdatedAt: now,
		}

		if _, err := db.Collection("users").InsertOne(ctx, user); err != nil {
			respondInternalError(c, route, err)
			return
		}

		log.Println("[USER] [INFO] registered:", email)
		c.JSON(http.StatusOK, gin.H{"msg": "Registration is Success"})
	}
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password produce the identical message.
func Login(db *mongo.Database, jwtSecret string, tokenTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/users/login"

		var req loginRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid JSON Body")
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		err := db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusUnauthorized, route, "Invalid Credentials")
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		if err := auth.CheckPassword(req.Password, user.Password); err != nil {
			respondError(c, http.StatusUnauthorized, route, "Invalid Credentials")
			return
		}

		token, err := auth.IssueToken(user.ID, user.Name, jwtSecret, tokenTTL)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		log.Println("[USER] [INFO] login succeeded:", email)
		c.JSON(http.StatusOK, gin.H{
			"msg":   "Login is Success",
			"token": token,
		})
	}
}

// GetMe returns the authenticated user's profile. The password field never
// serializes.
func GetMe(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/users/"

		userID, ok := userIDFromContext(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, route, "Unauthorized")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, route, "User Not Found")
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// UpdateAddress replaces the user's entire address sub-document. All eight
// fields are required, so the write is last-write-wins.
func UpdateAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/users/address"

		userID, ok := userIDFromContext(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, route, "Unauthorized")
			return
		}

		var req addressRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid JSON Body")
			return
		}

		address := models.Address{
			Flat:     req.Flat,
			Street:   req.Street,
			Landmark: req.Landmark,
			City:     req.City,
			State:    req.State,
			Country:  req.Country,
			Pin:      req.Pin,
			Mobile:   req.Mobile,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		updatedAt := time.Now()
		res, err := db.Collection("users").UpdateByID(ctx, userID, bson.M{
			"$set": bson.M{
				"address":   address,
				"updatedAt": updatedAt,
			},
		})
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if res.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, route, "User Not Found")
			return
		}

		var user models.User
		if err := db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			respondInternalError(c, route, err)
			return
		}

		log.Println("[USER] [INFO] address updated:", user.Email)
		c.JSON(http.StatusOK, gin.H{
			"msg":  "Address is Updated",
			"user": user,
		})
	}
}
