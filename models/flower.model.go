package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Flower represents a sellable atomic catalog item owned by exactly one shop
type Flower struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Price      float64            `bson:"price" json:"price"`
	ShopID     primitive.ObjectID `bson:"shopId" json:"shopId"`
	ImageURL   string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsFavorite bool               `bson:"isFavorite" json:"isFavorite"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
