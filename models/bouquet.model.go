package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bouquet represents a catalog item composed of flower references.
// The flowers are referenced, not owned: they exist and are queried
// independently of any bouquet containing them.
type Bouquet struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string               `bson:"name" json:"name"`
	Flowers    []primitive.ObjectID `bson:"flowers" json:"flowers"`
	Price      float64              `bson:"price" json:"price"`
	ShopID     primitive.ObjectID   `bson:"shopId" json:"shopId"`
	ImageURL   string               `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsFavorite bool                 `bson:"isFavorite" json:"isFavorite"`
	CreatedAt  time.Time            `bson:"createdAt" json:"createdAt"`
}

// BouquetResponse is a Bouquet with its flower and shop references resolved
// to full documents for display.
type BouquetResponse struct {
	ID         primitive.ObjectID `json:"_id,omitempty"`
	Name       string             `json:"name"`
	Flowers    []Flower           `json:"flowers"`
	Price      float64            `json:"price"`
	Shop       *Shop              `json:"shopId,omitempty"`
	ImageURL   string             `json:"imageUrl,omitempty"`
	IsFavorite bool               `json:"isFavorite"`
	CreatedAt  time.Time          `json:"createdAt"`
}
