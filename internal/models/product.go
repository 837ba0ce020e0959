package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Catalog categories. These are the only values queried.
const (
	CategoryMen   = "MEN"
	CategoryWomen = "WOMEN"
	CategoryKids  = "KIDS"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Brand       string             `bson:"brand" json:"brand"`
	Price       float64            `bson:"price" json:"price"`
	Qty         int                `bson:"qty" json:"qty"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Usage       string             `bson:"usage" json:"usage"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
