package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product kinds accepted in an order line item
const (
	ProductTypeFlower  = "flower"
	ProductTypeBouquet = "bouquet"
)

// OrderProduct is a single line item inside an order, stored exactly as
// submitted. The referenced product may no longer exist by the time the
// order is read back.
type OrderProduct struct {
	ProductType string             `bson:"productType" json:"productType"`
	ProductID   primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity    int                `bson:"quantity" json:"quantity"`
}

// Order represents a customer's order. Orders are immutable once created.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Address    string             `bson:"address" json:"address"`
	Products   []OrderProduct     `bson:"products" json:"products"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// ExpandedProduct is an order line joined with current catalog data.
// Name, ImageURL and Price are absent when the referenced product has been
// deleted; callers render such lines as a placeholder with zero price.
type ExpandedProduct struct {
	ProductType string             `json:"productType"`
	ProductID   primitive.ObjectID `json:"productId"`
	Quantity    int                `json:"quantity"`
	Name        string             `json:"name,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	Price       *float64           `json:"price,omitempty"`
}

// ExpandedOrder is the read-back view of an order. TotalPrice is the
// persisted snapshot taken at creation time and stays authoritative even
// though line prices are re-resolved against the current catalog.
type ExpandedOrder struct {
	ID         primitive.ObjectID `json:"_id"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone"`
	Address    string             `json:"address"`
	Products   []ExpandedProduct  `json:"products"`
	TotalPrice float64            `json:"totalPrice"`
	CreatedAt  time.Time          `json:"createdAt"`
}
