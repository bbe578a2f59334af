package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/YuliiaIvakhnenko/flower-shop/catalog"
	"github.com/YuliiaIvakhnenko/flower-shop/models"
)

// FlowerController handles flower-related requests
type FlowerController struct {
	Collection *mongo.Collection
	Logger     zerolog.Logger
}

// NewFlowerController creates a new FlowerController
func NewFlowerController(db *mongo.Database, logger zerolog.Logger) *FlowerController {
	return &FlowerController{
		Collection: db.Collection("flowers"),
		Logger:     logger.With().Str("controller", "flower").Logger(),
	}
}

// GetFlowers retrieves a shop's flowers, filtered and sorted per the query
// parameters.
func (fc *FlowerController) GetFlowers(w http.ResponseWriter, r *http.Request) {
	query, err := catalog.ParseFlowerQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), fc.Logger)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Find()
	if sort := query.SortSpec(); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := fc.Collection.Find(ctx, query.Selector(), opts)
	if err != nil {
		fc.Logger.Error().Err(err).Msg("failed to query flowers")
		writeError(w, http.StatusInternalServerError, "error fetching flowers", fc.Logger)
		return
	}
	defer cursor.Close(ctx)

	flowers := []models.Flower{}
	if err := cursor.All(ctx, &flowers); err != nil {
		fc.Logger.Error().Err(err).Msg("failed to decode flowers")
		writeError(w, http.StatusInternalServerError, "error reading flowers", fc.Logger)
		return
	}

	writeJSON(w, http.StatusOK, flowers)
}

// CreateFlower handles adding a new flower to a shop's catalog
func (fc *FlowerController) CreateFlower(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string  `json:"name"`
		Price      float64 `json:"price"`
		ShopID     string  `json:"shopId"`
		ImageURL   string  `json:"imageUrl"`
		IsFavorite bool    `json:"isFavorite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", fc.Logger)
		return
	}

	shopID, err := primitive.ObjectIDFromHex(req.ShopID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shopId", fc.Logger)
		return
	}
	if req.Name == "" || req.Price <= 0 {
		writeError(w, http.StatusBadRequest, "name and a positive price are required", fc.Logger)
		return
	}

	flower := models.Flower{
		Name:       req.Name,
		Price:      req.Price,
		ShopID:     shopID,
		ImageURL:   req.ImageURL,
		IsFavorite: req.IsFavorite,
		CreatedAt:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := fc.Collection.InsertOne(ctx, flower)
	if err != nil {
		fc.Logger.Error().Err(err).Msg("failed to insert flower")
		writeError(w, http.StatusBadRequest, "error adding flower", fc.Logger)
		return
	}
	flower.ID = result.InsertedID.(primitive.ObjectID)

	writeJSON(w, http.StatusCreated, flower)
}
