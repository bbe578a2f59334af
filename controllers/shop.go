package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/YuliiaIvakhnenko/flower-shop/models"
)

// ShopController handles shop-related requests
type ShopController struct {
	Collection *mongo.Collection
	Logger     zerolog.Logger
}

// NewShopController creates a new ShopController
func NewShopController(db *mongo.Database, logger zerolog.Logger) *ShopController {
	return &ShopController{
		Collection: db.Collection("shops"),
		Logger:     logger.With().Str("controller", "shop").Logger(),
	}
}

// GetShops retrieves all shops
func (sc *ShopController) GetShops(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := sc.Collection.Find(ctx, bson.M{})
	if err != nil {
		sc.Logger.Error().Err(err).Msg("failed to query shops")
		writeError(w, http.StatusInternalServerError, "error fetching shops", sc.Logger)
		return
	}
	defer cursor.Close(ctx)

	shops := []models.Shop{}
	if err := cursor.All(ctx, &shops); err != nil {
		sc.Logger.Error().Err(err).Msg("failed to decode shops")
		writeError(w, http.StatusInternalServerError, "error reading shops", sc.Logger)
		return
	}

	writeJSON(w, http.StatusOK, shops)
}

// CreateShop handles adding a new shop (admin action)
func (sc *ShopController) CreateShop(w http.ResponseWriter, r *http.Request) {
	var shop models.Shop
	if err := json.NewDecoder(r.Body).Decode(&shop); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", sc.Logger)
		return
	}
	if shop.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", sc.Logger)
		return
	}
	shop.ID = primitive.NilObjectID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := sc.Collection.InsertOne(ctx, shop)
	if err != nil {
		sc.Logger.Error().Err(err).Msg("failed to insert shop")
		writeError(w, http.StatusBadRequest, "error creating shop", sc.Logger)
		return
	}
	shop.ID = result.InsertedID.(primitive.ObjectID)

	writeJSON(w, http.StatusCreated, shop)
}
