// Package cart holds the client-side shopping cart: an injectable state
// container with no server-side persistence.
package cart

// Kind distinguishes the two sellable product types.
type Kind string

const (
	KindFlower  Kind = "flower"
	KindBouquet Kind = "bouquet"
)

// Item is one cart line. Lines are unique per (ProductID, ProductType).
type Item struct {
	ProductType Kind
	ProductID   string
	Name        string
	Price       float64
	ImageURL    string
	Quantity    int
}

// Cart is an ordered collection of line items. The zero value is not
// usable; construct with New.
type Cart struct {
	items []Item
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add merges the item into an existing line with the same
// (ProductID, ProductType) key, summing quantities, or appends a new line.
// A qty below 1 counts as 1.
func (c *Cart) Add(item Item, qty int) {
	if qty < 1 {
		qty = 1
	}
	if i := c.index(item.ProductID, item.ProductType); i >= 0 {
		c.items[i].Quantity += qty
		return
	}
	item.Quantity = qty
	c.items = append(c.items, item)
}

// Increment raises the quantity of the matching line by one.
func (c *Cart) Increment(id string, kind Kind) {
	if i := c.index(id, kind); i >= 0 {
		c.items[i].Quantity++
	}
}

// Decrement lowers the quantity of the matching line by one, flooring at 1.
// Lines are never removed by decrementing; use Remove.
func (c *Cart) Decrement(id string, kind Kind) {
	if i := c.index(id, kind); i >= 0 && c.items[i].Quantity > 1 {
		c.items[i].Quantity--
	}
}

// Remove deletes the matching line.
func (c *Cart) Remove(id string, kind Kind) {
	if i := c.index(id, kind); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// Total is derived from line state on every call so it cannot
// desynchronize.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) index(id string, kind Kind) int {
	for i, item := range c.items {
		if item.ProductID == id && item.ProductType == kind {
			return i
		}
	}
	return -1
}
