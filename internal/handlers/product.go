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

	"backend/internal/models"
	"backend/internal/validate"
)

var UploadProductRules = []validate.Rule{
	validate.Required("name", "Name is Required"),
	validate.Required("brand", "Brand is Required"),
	validate.Required("price", "Price is Required"),
	validate.Required("qty", "Qty is Required"),
	validate.Required("image", "Image is Required"),
	validate.Required("category", "Category is Required"),
	validate.Required("description", "Description is Required"),
	validate.Required("usage", "Usage is Required"),
}

type uploadProductRequest struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Usage       string  `json:"usage"`
}

// UploadProduct persists a new catalog item.
func UploadProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products/upload"

		var req uploadProductRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid JSON Body")
			return
		}

		product := models.Product{
			Name:        req.Name,
			Brand:       req.Brand,
			Price:       req.Price,
			Qty:         req.Qty,
			Image:       req.Image,
			Category:    req.Category,
			Description: req.Description,
			Usage:       req.Usage,
			CreatedAt:   time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			product.ID = id
		}

		log.Println("[PRODUCT] [INFO] uploaded:", product.Name)
		c.JSON(http.StatusOK, gin.H{
			"msg":     "Product is Uploaded",
			"product": product,
		})
	}
}

// ListByCategory returns every product whose category exactly matches.
// No pagination or sorting beyond insertion order.
func ListByCategory(db *mongo.Database, category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := "GET /api/products/" + category

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("products").Find(ctx, bson.M{"category": category})
		if err != nil {
			respondInternalError(c, route, err)
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GetProduct returns a single product, or a null product when the id does
// not resolve.
func GetProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/:product_id"

		productID, err := primitive.ObjectIDFromHex(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"product": nil})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusOK, gin.H{"product": nil})
			return
		}
		if err != nil {
			respondInternalError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
