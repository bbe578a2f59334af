// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/YuliiaIvakhnenko/flower-shop/metrics"
	"github.com/YuliiaIvakhnenko/flower-shop/models"
	"github.com/YuliiaIvakhnenko/flower-shop/orders"
	"github.com/YuliiaIvakhnenko/flower-shop/utils"
)

// OrderController handles order-related requests
type OrderController struct {
	Collection   *mongo.Collection
	Resolver     orders.Resolver
	EmailService *utils.EmailService
	Metrics      *metrics.AppMetrics
	Logger       zerolog.Logger
}

// NewOrderController creates a new OrderController
func NewOrderController(db *mongo.Database, emailService *utils.EmailService, appMetrics *metrics.AppMetrics, logger zerolog.Logger) *OrderController {
	return &OrderController{
		Collection: db.Collection("orders"),
		Resolver: &orders.MongoResolver{
			Flowers:  db.Collection("flowers"),
			Bouquets: db.Collection("bouquets"),
		},
		EmailService: emailService,
		Metrics:      appMetrics,
		Logger:       logger.With().Str("controller", "order").Logger(),
	}
}

type createOrderRequest struct {
	Email    string                `json:"email"`
	Phone    string                `json:"phone"`
	Address  string                `json:"address"`
	Products []orderProductRequest `json:"products"`
}

type orderProductRequest struct {
	ProductType string `json:"productType"`
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
}

// CreateOrder creates a new order, snapshotting the total from current
// catalog prices. Line items whose product no longer exists contribute zero
// but are still stored.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", oc.Logger)
		return
	}

	if req.Email == "" || req.Phone == "" || req.Address == "" {
		writeError(w, http.StatusBadRequest, "email, phone and address are required", oc.Logger)
		return
	}
	if len(req.Products) == 0 {
		writeError(w, http.StatusBadRequest, "order must contain at least one product", oc.Logger)
		return
	}

	items := make([]models.OrderProduct, 0, len(req.Products))
	for _, p := range req.Products {
		if p.ProductType != models.ProductTypeFlower && p.ProductType != models.ProductTypeBouquet {
			writeError(w, http.StatusBadRequest, "productType must be flower or bouquet", oc.Logger)
			return
		}
		id, err := primitive.ObjectIDFromHex(p.ProductID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid productId", oc.Logger)
			return
		}
		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 1 {
			writeError(w, http.StatusBadRequest, "quantity must be at least 1", oc.Logger)
			return
		}
		items = append(items, models.OrderProduct{
			ProductType: p.ProductType,
			ProductID:   id,
			Quantity:    quantity,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := orders.Total(ctx, oc.Resolver, items)
	if err != nil {
		oc.Logger.Error().Err(err).Msg("failed to resolve order prices")
		writeError(w, http.StatusBadRequest, "error creating order", oc.Logger)
		return
	}

	order := models.Order{
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Products:   items,
		TotalPrice: total,
		CreatedAt:  time.Now(),
	}

	result, err := oc.Collection.InsertOne(ctx, order)
	if err != nil {
		oc.Logger.Error().Err(err).Msg("failed to insert order")
		writeError(w, http.StatusBadRequest, "error creating order", oc.Logger)
		return
	}
	order.ID = result.InsertedID.(primitive.ObjectID)

	oc.Metrics.RecordOrder(ctx, total)
	oc.Logger.Info().
		Str("order_id", order.ID.Hex()).
		Float64("total", total).
		Int("line_count", len(items)).
		Msg("order created")

	go func(order models.Order) {
		if err := oc.EmailService.SendOrderConfirmationEmail(order); err != nil {
			oc.Logger.Warn().Err(err).Str("email", order.Email).Msg("failed to send confirmation email")
		}
	}(order)

	writeJSON(w, http.StatusCreated, order)
}

// GetOrderByID retrieves an order with every line item joined against the
// current catalog.
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id", oc.Logger)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	err = oc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		writeError(w, http.StatusNotFound, "order not found", oc.Logger)
		return
	}
	if err != nil {
		oc.Logger.Error().Err(err).Str("order_id", id.Hex()).Msg("failed to load order")
		writeError(w, http.StatusInternalServerError, "error fetching order", oc.Logger)
		return
	}

	expanded, err := orders.Expand(ctx, oc.Resolver, order)
	if err != nil {
		oc.Logger.Error().Err(err).Str("order_id", id.Hex()).Msg("failed to expand order")
		writeError(w, http.StatusInternalServerError, "error fetching order", oc.Logger)
		return
	}

	writeJSON(w, http.StatusOK, expanded)
}
