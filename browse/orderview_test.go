package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/YuliiaIvakhnenko/flower-shop/models"
)

func price(v float64) *float64 { return &v }

func TestLineName(t *testing.T) {
	assert.Equal(t, "Rose", LineName(models.ExpandedProduct{Name: "Rose"}))

	// Deleted products render as a placeholder.
	assert.Equal(t, "Item", LineName(models.ExpandedProduct{}))
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 20.0, LineTotal(models.ExpandedProduct{Price: price(10), Quantity: 2}))
	assert.Zero(t, LineTotal(models.ExpandedProduct{Quantity: 3}), "deleted product totals zero")
}

func TestGrandTotal(t *testing.T) {
	lines := []models.ExpandedProduct{
		{ProductType: models.ProductTypeFlower, ProductID: primitive.NewObjectID(), Price: price(10), Quantity: 2},
		{ProductType: models.ProductTypeBouquet, ProductID: primitive.NewObjectID(), Price: price(45.5), Quantity: 1},
		{ProductType: models.ProductTypeFlower, ProductID: primitive.NewObjectID(), Quantity: 3},
	}

	t.Run("persisted snapshot wins", func(t *testing.T) {
		o := models.ExpandedOrder{Products: lines, TotalPrice: 70}
		assert.Equal(t, 70.0, GrandTotal(o), "snapshot is authoritative even when lines resum differently")
	})

	t.Run("zero snapshot resums the lines", func(t *testing.T) {
		o := models.ExpandedOrder{Products: lines}
		assert.Equal(t, 2*10+45.5, GrandTotal(o), "deleted line contributes zero")
	})

	t.Run("empty order", func(t *testing.T) {
		assert.Zero(t, GrandTotal(models.ExpandedOrder{}))
	})
}
