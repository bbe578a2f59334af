// Package browse holds the client-side catalog view logic: merging local
// favorite overrides into server results, favorites-first ordering, and
// sequencing of in-flight catalog requests so stale responses are dropped.
package browse

import (
	"sort"
	"time"

	"github.com/YuliiaIvakhnenko/flower-shop/storage"
)

// Sort keys mirroring the listing endpoints
const (
	SortPrice = "price"
	SortDate  = "date"
)

// Product is the view model for one catalog card, flower or bouquet.
type Product struct {
	ID         string
	Name       string
	Price      float64
	ImageURL   string
	IsFavorite bool
	CreatedAt  time.Time
}

// MergeFavorites applies the local override map on top of the server-side
// favorite flags. Ids without an override keep the server value.
func MergeFavorites(products []Product, overrides storage.FavMap) []Product {
	merged := make([]Product, len(products))
	copy(merged, products)
	for i := range merged {
		if fav, ok := overrides[merged[i].ID]; ok {
			merged[i].IsFavorite = fav
		}
	}
	return merged
}

// FavoritesOnly filters to products whose merged favorite flag is set.
func FavoritesOnly(products []Product) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.IsFavorite {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortFavoritesFirst orders favorites before the rest, then by the active
// sort key: price ascending or creation date descending. The sort is
// stable so equal keys keep their server order.
func SortFavoritesFirst(products []Product, sortKey string) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if a.IsFavorite != b.IsFavorite {
			return a.IsFavorite
		}
		switch sortKey {
		case SortPrice:
			return a.Price < b.Price
		case SortDate:
			return a.CreatedAt.After(b.CreatedAt)
		}
		return false
	})
}
