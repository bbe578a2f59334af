package storage

import "strings"

// lastOrderKey stores the display number of the most recently created order.
const lastOrderKey = "lastOrderPretty"

// PrettyOrderRef derives a human-friendly order number from a store id:
// "ORD-" plus the last six characters, uppercased.
func PrettyOrderRef(orderID string) string {
	tail := orderID
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	return "ORD-" + strings.ToUpper(tail)
}

// SaveLastOrderRef stores the display number for the given order id.
func SaveLastOrderRef(s Store, orderID string) {
	s.Set(lastOrderKey, PrettyOrderRef(orderID))
}

// LoadLastOrderRef returns the stored display number, or derives one from
// the given order id when nothing is stored.
func LoadLastOrderRef(s Store, orderID string) string {
	if ref, ok := s.Get(lastOrderKey); ok && ref != "" {
		return ref
	}
	return PrettyOrderRef(orderID)
}
