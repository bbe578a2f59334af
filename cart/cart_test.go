package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rose() Item {
	return Item{ProductType: KindFlower, ProductID: "f1", Name: "Rose", Price: 10}
}

func bouquet() Item {
	return Item{ProductType: KindBouquet, ProductID: "b1", Name: "Spring Mix", Price: 45.5}
}

func TestAddMergesByKey(t *testing.T) {
	c := New()
	c.Add(rose(), 1)
	c.Add(rose(), 2)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddSameIDDifferentKind(t *testing.T) {
	c := New()
	c.Add(Item{ProductType: KindFlower, ProductID: "x", Price: 1}, 1)
	c.Add(Item{ProductType: KindBouquet, ProductID: "x", Price: 2}, 1)

	assert.Equal(t, 2, c.Len())
}

func TestAddDefaultsQuantity(t *testing.T) {
	c := New()
	c.Add(rose(), 0)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestIncrementDecrement(t *testing.T) {
	c := New()
	c.Add(rose(), 1)

	c.Increment("f1", KindFlower)
	assert.Equal(t, 2, c.Items()[0].Quantity)

	c.Decrement("f1", KindFlower)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	// Decrement floors at 1, it never removes the line.
	c.Decrement("f1", KindFlower)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestIncrementUnknownLineIsNoop(t *testing.T) {
	c := New()
	c.Add(rose(), 1)
	c.Increment("missing", KindFlower)
	c.Decrement("missing", KindFlower)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	c.Add(rose(), 1)
	c.Add(bouquet(), 1)

	c.Remove("f1", KindFlower)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "b1", c.Items()[0].ProductID)

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Items())
}

func TestTotalIsDerived(t *testing.T) {
	c := New()
	assert.Zero(t, c.Total())

	c.Add(rose(), 2)
	c.Add(bouquet(), 1)
	assert.Equal(t, 2*10+45.5, c.Total())

	c.Increment("b1", KindBouquet)
	assert.Equal(t, 2*10+2*45.5, c.Total())

	c.Remove("f1", KindFlower)
	assert.Equal(t, 2*45.5, c.Total())
}

func TestInvariantsAfterMixedOperations(t *testing.T) {
	c := New()
	c.Add(rose(), 1)
	c.Add(bouquet(), 3)
	c.Add(rose(), 1)
	c.Decrement("b1", KindBouquet)
	c.Decrement("b1", KindBouquet)
	c.Decrement("b1", KindBouquet)
	c.Increment("f1", KindFlower)
	c.Add(Item{ProductType: KindFlower, ProductID: "f2", Price: 5}, 2)
	c.Remove("f2", KindFlower)

	seen := make(map[string]bool)
	for _, item := range c.Items() {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		key := string(item.ProductType) + "/" + item.ProductID
		assert.False(t, seen[key], "duplicate line for %s", key)
		seen[key] = true
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(rose(), 1)

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}
