package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
	"backend/internal/validate"
)

var CreateOrderRules = []validate.Rule{
	validate.Required("items", "Items Required"),
	validate.Required("tax", "Tax Required"),
	validate.Required("total", "Total Required"),
}

type createOrderRequest struct {
	Items []models.OrderItem `json:"items"`
	Tax   string             `json:"tax"`
	Total string             `json:"total"`
}

// CreateOrder stores a denormalized purchase record. Items, tax and total are
// taken from the request as-is; name, email and mobile are copied from the
// authenticated user's profile at this moment. Resubmission creates a new
// order, there is no idempotency key.
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders/"

		userID, ok := userIDFromContext(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, route, "Unauthorized")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid JSON Body")
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

		order := models.Order{
			Name:      user.Name,
			Email:     user.Email,
			Mobile:    user.Address.Mobile,
			Total:     req.Total,
			Tax:       req.Tax,
			Items:     req.Items,
			CreatedAt: time.Now(),
		}

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}

		log.Println("[ORDER] [INFO] placed for:", user.Email)
		c.JSON(http.StatusOK, gin.H{
			"msg":   "Order is Placed",
			"order": order,
		})
	}
}

// ListMyOrders returns every order whose stored email matches the
// authenticated user's current email. A string match, not a foreign key.
func ListMyOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/orders/all"

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

		findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := db.Collection("orders").Find(ctx, bson.M{"email": user.Email}, findOptions)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
