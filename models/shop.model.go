package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shop represents a physical storefront owning a catalog of flowers and bouquets
type Shop struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
