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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/YuliiaIvakhnenko/flower-shop/catalog"
	"github.com/YuliiaIvakhnenko/flower-shop/models"
)

// BouquetController handles bouquet-related requests
type BouquetController struct {
	Collection *mongo.Collection
	Flowers    *mongo.Collection
	Shops      *mongo.Collection
	Logger     zerolog.Logger
}

// NewBouquetController creates a new BouquetController
func NewBouquetController(db *mongo.Database, logger zerolog.Logger) *BouquetController {
	return &BouquetController{
		Collection: db.Collection("bouquets"),
		Flowers:    db.Collection("flowers"),
		Shops:      db.Collection("shops"),
		Logger:     logger.With().Str("controller", "bouquet").Logger(),
	}
}

// GetBouquets retrieves a shop's bouquets with flower and shop references
// resolved to full documents.
func (bc *BouquetController) GetBouquets(w http.ResponseWriter, r *http.Request) {
	query, err := catalog.ParseBouquetQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), bc.Logger)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := options.Find()
	if sort := query.SortSpec(); sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := bc.Collection.Find(ctx, query.Selector(), opts)
	if err != nil {
		bc.Logger.Error().Err(err).Msg("failed to query bouquets")
		writeError(w, http.StatusInternalServerError, "error fetching bouquets", bc.Logger)
		return
	}
	defer cursor.Close(ctx)

	var bouquets []models.Bouquet
	if err := cursor.All(ctx, &bouquets); err != nil {
		bc.Logger.Error().Err(err).Msg("failed to decode bouquets")
		writeError(w, http.StatusInternalServerError, "error reading bouquets", bc.Logger)
		return
	}

	resolved, err := bc.resolveReferences(ctx, bouquets)
	if err != nil {
		bc.Logger.Error().Err(err).Msg("failed to resolve bouquet references")
		writeError(w, http.StatusInternalServerError, "error fetching bouquets", bc.Logger)
		return
	}

	writeJSON(w, http.StatusOK, resolved)
}

// resolveReferences loads every referenced flower and shop in one batch
// query per collection, then rebuilds the bouquets with the documents
// inlined. Dangling references are dropped.
func (bc *BouquetController) resolveReferences(ctx context.Context, bouquets []models.Bouquet) ([]models.BouquetResponse, error) {
	flowerIDs := make([]primitive.ObjectID, 0)
	shopIDs := make([]primitive.ObjectID, 0)
	seenFlower := make(map[primitive.ObjectID]bool)
	seenShop := make(map[primitive.ObjectID]bool)
	for _, b := range bouquets {
		for _, id := range b.Flowers {
			if !seenFlower[id] {
				seenFlower[id] = true
				flowerIDs = append(flowerIDs, id)
			}
		}
		if !seenShop[b.ShopID] {
			seenShop[b.ShopID] = true
			shopIDs = append(shopIDs, b.ShopID)
		}
	}

	flowers := make(map[primitive.ObjectID]models.Flower, len(flowerIDs))
	if len(flowerIDs) > 0 {
		cursor, err := bc.Flowers.Find(ctx, bson.M{"_id": bson.M{"$in": flowerIDs}})
		if err != nil {
			return nil, err
		}
		var docs []models.Flower
		if err := cursor.All(ctx, &docs); err != nil {
			return nil, err
		}
		for _, f := range docs {
			flowers[f.ID] = f
		}
	}

	shops := make(map[primitive.ObjectID]models.Shop, len(shopIDs))
	if len(shopIDs) > 0 {
		cursor, err := bc.Shops.Find(ctx, bson.M{"_id": bson.M{"$in": shopIDs}})
		if err != nil {
			return nil, err
		}
		var docs []models.Shop
		if err := cursor.All(ctx, &docs); err != nil {
			return nil, err
		}
		for _, s := range docs {
			shops[s.ID] = s
		}
	}

	resolved := make([]models.BouquetResponse, 0, len(bouquets))
	for _, b := range bouquets {
		resp := models.BouquetResponse{
			ID:         b.ID,
			Name:       b.Name,
			Flowers:    []models.Flower{},
			Price:      b.Price,
			ImageURL:   b.ImageURL,
			IsFavorite: b.IsFavorite,
			CreatedAt:  b.CreatedAt,
		}
		for _, id := range b.Flowers {
			if f, ok := flowers[id]; ok {
				resp.Flowers = append(resp.Flowers, f)
			}
		}
		if s, ok := shops[b.ShopID]; ok {
			shop := s
			resp.Shop = &shop
		}
		resolved = append(resolved, resp)
	}
	return resolved, nil
}

// CreateBouquet handles adding a new bouquet to a shop's catalog
func (bc *BouquetController) CreateBouquet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string   `json:"name"`
		Flowers    []string `json:"flowers"`
		Price      float64  `json:"price"`
		ShopID     string   `json:"shopId"`
		ImageURL   string   `json:"imageUrl"`
		IsFavorite bool     `json:"isFavorite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", bc.Logger)
		return
	}

	shopID, err := primitive.ObjectIDFromHex(req.ShopID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid shopId", bc.Logger)
		return
	}
	if req.Name == "" || req.Price <= 0 {
		writeError(w, http.StatusBadRequest, "name and a positive price are required", bc.Logger)
		return
	}

	flowerIDs := make([]primitive.ObjectID, 0, len(req.Flowers))
	for _, raw := range req.Flowers {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "flowers must be a list of valid ids", bc.Logger)
			return
		}
		flowerIDs = append(flowerIDs, id)
	}

	bouquet := models.Bouquet{
		Name:       req.Name,
		Flowers:    flowerIDs,
		Price:      req.Price,
		ShopID:     shopID,
		ImageURL:   req.ImageURL,
		IsFavorite: req.IsFavorite,
		CreatedAt:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := bc.Collection.InsertOne(ctx, bouquet)
	if err != nil {
		bc.Logger.Error().Err(err).Msg("failed to insert bouquet")
		writeError(w, http.StatusBadRequest, "error adding bouquet", bc.Logger)
		return
	}
	bouquet.ID = result.InsertedID.(primitive.ObjectID)

	writeJSON(w, http.StatusCreated, bouquet)
}
