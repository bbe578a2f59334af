package browse

import "github.com/YuliiaIvakhnenko/flower-shop/models"

// LineName returns the display name for an order line, falling back to a
// placeholder when the referenced product no longer exists.
func LineName(p models.ExpandedProduct) string {
	if p.Name == "" {
		return "Item"
	}
	return p.Name
}

// LineTotal returns price times quantity for one order line. Lines whose
// product has been deleted carry no price and total zero.
func LineTotal(p models.ExpandedProduct) float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price * float64(p.Quantity)
}

// GrandTotal returns the persisted order total when present; a zero or
// absent snapshot falls back to resumming the expanded lines.
func GrandTotal(o models.ExpandedOrder) float64 {
	if o.TotalPrice != 0 {
		return o.TotalPrice
	}
	var total float64
	for _, p := range o.Products {
		total += LineTotal(p)
	}
	return total
}
