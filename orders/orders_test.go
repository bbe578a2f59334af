package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/YuliiaIvakhnenko/flower-shop/models"
)

// fakeResolver serves a fixed catalog and records which ids were requested.
type fakeResolver struct {
	flowers  map[primitive.ObjectID]models.Flower
	bouquets map[primitive.ObjectID]models.Bouquet
	err      error

	flowerCalls  int
	bouquetCalls int
}

func (r *fakeResolver) FlowersByID(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Flower, error) {
	r.flowerCalls++
	if r.err != nil {
		return nil, r.err
	}
	found := make(map[primitive.ObjectID]models.Flower)
	for _, id := range ids {
		if f, ok := r.flowers[id]; ok {
			found[id] = f
		}
	}
	return found, nil
}

func (r *fakeResolver) BouquetsByID(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Bouquet, error) {
	r.bouquetCalls++
	if r.err != nil {
		return nil, r.err
	}
	found := make(map[primitive.ObjectID]models.Bouquet)
	for _, id := range ids {
		if b, ok := r.bouquets[id]; ok {
			found[id] = b
		}
	}
	return found, nil
}

func TestTotal(t *testing.T) {
	f1 := primitive.NewObjectID()
	b1 := primitive.NewObjectID()
	resolver := &fakeResolver{
		flowers: map[primitive.ObjectID]models.Flower{
			f1: {ID: f1, Name: "Rose", Price: 10},
		},
		bouquets: map[primitive.ObjectID]models.Bouquet{
			b1: {ID: b1, Name: "Spring Mix", Price: 45.5},
		},
	}

	t.Run("flower times quantity", func(t *testing.T) {
		total, err := Total(context.Background(), resolver, []models.OrderProduct{
			{ProductType: models.ProductTypeFlower, ProductID: f1, Quantity: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, 20.0, total)
	})

	t.Run("mixed product types", func(t *testing.T) {
		total, err := Total(context.Background(), resolver, []models.OrderProduct{
			{ProductType: models.ProductTypeFlower, ProductID: f1, Quantity: 1},
			{ProductType: models.ProductTypeBouquet, ProductID: b1, Quantity: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, 10+2*45.5, total)
	})

	t.Run("unresolved line contributes zero", func(t *testing.T) {
		total, err := Total(context.Background(), resolver, []models.OrderProduct{
			{ProductType: models.ProductTypeFlower, ProductID: f1, Quantity: 2},
			{ProductType: models.ProductTypeFlower, ProductID: primitive.NewObjectID(), Quantity: 3},
			{ProductType: models.ProductTypeBouquet, ProductID: primitive.NewObjectID(), Quantity: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, 20.0, total)
	})

	t.Run("empty items", func(t *testing.T) {
		total, err := Total(context.Background(), resolver, nil)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("resolver error propagates", func(t *testing.T) {
		broken := &fakeResolver{err: errors.New("connection reset")}
		_, err := Total(context.Background(), broken, []models.OrderProduct{
			{ProductType: models.ProductTypeFlower, ProductID: f1, Quantity: 1},
		})
		assert.Error(t, err)
	})
}

func TestTotalBatchesReads(t *testing.T) {
	f1 := primitive.NewObjectID()
	f2 := primitive.NewObjectID()
	resolver := &fakeResolver{
		flowers: map[primitive.ObjectID]models.Flower{
			f1: {ID: f1, Price: 1},
			f2: {ID: f2, Price: 2},
		},
	}

	_, err := Total(context.Background(), resolver, []models.OrderProduct{
		{ProductType: models.ProductTypeFlower, ProductID: f1, Quantity: 1},
		{ProductType: models.ProductTypeFlower, ProductID: f2, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resolver.flowerCalls)
	assert.Equal(t, 0, resolver.bouquetCalls)
}

func TestExpand(t *testing.T) {
	f1 := primitive.NewObjectID()
	b1 := primitive.NewObjectID()
	gone := primitive.NewObjectID()
	resolver := &fakeResolver{
		flowers: map[primitive.ObjectID]models.Flower{
			f1: {ID: f1, Name: "Rose", Price: 10, ImageURL: "rose.jpg"},
		},
		bouquets: map[primitive.ObjectID]models.Bouquet{
			b1: {ID: b1, Name: "Spring Mix", Price: 45.5},
		},
	}

	order := models.Order{
		ID:      primitive.NewObjectID(),
		Email:   "a@b.cd",
		Phone:   "+380501234567",
		Address: "Khreshchatyk 1, Kyiv",
		Products: []models.OrderProduct{
			{ProductType: models.ProductTypeBouquet, ProductID: b1, Quantity: 1},
			{ProductType: models.ProductTypeFlower, ProductID: gone, Quantity: 3},
			{ProductType: models.ProductTypeFlower, ProductID: f1, Quantity: 2},
		},
		TotalPrice: 65.5,
		CreatedAt:  time.Now(),
	}

	expanded, err := Expand(context.Background(), resolver, order)
	require.NoError(t, err)

	assert.Equal(t, order.ID, expanded.ID)
	assert.Equal(t, order.Email, expanded.Email)
	assert.Equal(t, order.TotalPrice, expanded.TotalPrice)
	require.Len(t, expanded.Products, len(order.Products))

	// Line order and quantities match the stored order exactly.
	for i, item := range order.Products {
		assert.Equal(t, item.ProductType, expanded.Products[i].ProductType)
		assert.Equal(t, item.ProductID, expanded.Products[i].ProductID)
		assert.Equal(t, item.Quantity, expanded.Products[i].Quantity)
	}

	assert.Equal(t, "Spring Mix", expanded.Products[0].Name)
	require.NotNil(t, expanded.Products[0].Price)
	assert.Equal(t, 45.5, *expanded.Products[0].Price)

	// Deleted product keeps the reference but carries no catalog data.
	assert.Empty(t, expanded.Products[1].Name)
	assert.Empty(t, expanded.Products[1].ImageURL)
	assert.Nil(t, expanded.Products[1].Price)

	assert.Equal(t, "Rose", expanded.Products[2].Name)
	assert.Equal(t, "rose.jpg", expanded.Products[2].ImageURL)
	require.NotNil(t, expanded.Products[2].Price)
	assert.Equal(t, 10.0, *expanded.Products[2].Price)
}

func TestExpandEmptyOrder(t *testing.T) {
	resolver := &fakeResolver{}
	expanded, err := Expand(context.Background(), resolver, models.Order{TotalPrice: 0})
	require.NoError(t, err)
	assert.Empty(t, expanded.Products)
	assert.Equal(t, 0, resolver.flowerCalls)
	assert.Equal(t, 0, resolver.bouquetCalls)
}
