package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a client-supplied snapshot of a cart line, not a reference
// to a Product document.
type OrderItem struct {
	Name  string  `bson:"name" json:"name"`
	Brand string  `bson:"brand" json:"brand"`
	Price float64 `bson:"price" json:"price"`
	Qty   int     `bson:"qty" json:"qty"`
}

// Order is a denormalized purchase record. Name, email and mobile are copied
// from the placing user's profile at creation time and never updated.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Mobile    string             `bson:"mobile" json:"mobile"`
	Total     string             `bson:"total" json:"total"`
	Tax       string             `bson:"tax" json:"tax"`
	Items     []OrderItem        `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
