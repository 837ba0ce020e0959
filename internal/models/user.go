package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is the user's shipping profile. Every field is initialized at
// registration, so the sub-document is never absent.
type Address struct {
	Flat     string `bson:"flat" json:"flat"`
	Street   string `bson:"street" json:"street"`
	Landmark string `bson:"landmark" json:"landmark"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	Country  string `bson:"country" json:"country"`
	Pin      string `bson:"pin" json:"pin"`
	Mobile   string `bson:"mobile" json:"mobile"`
}

// User represents the application user account.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	IsAdmin   bool               `bson:"isAdmin" json:"isAdmin"`
	Address   Address            `bson:"address" json:"address"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BlankAddress returns the placeholder address stored at registration.
func BlankAddress() Address {
	return Address{
		Flat:     " ",
		Street:   " ",
		Landmark: " ",
		City:     " ",
		State:    " ",
		Country:  " ",
		Pin:      " ",
		Mobile:   " ",
	}
}
