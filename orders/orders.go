// Package orders implements the order workflow: total computation at
// submission time and read-back expansion against the current catalog.
package orders

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/YuliiaIvakhnenko/flower-shop/models"
)

// Resolver batch-resolves product references against the catalog store.
// Ids that no longer exist are simply absent from the returned maps.
type Resolver interface {
	FlowersByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Flower, error)
	BouquetsByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Bouquet, error)
}

// resolved is a product reference reduced to the fields an order needs.
type resolved struct {
	name     string
	imageURL string
	price    float64
}

// Total computes an order total by resolving every line item against the
// catalog at submission time. Unresolved references contribute zero but do
// not fail the order.
func Total(ctx context.Context, r Resolver, items []models.OrderProduct) (float64, error) {
	products, err := resolveAll(ctx, r, items)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		if p, ok := products[key(item)]; ok {
			total += p.price * float64(item.Quantity)
		}
	}
	return total, nil
}

// Expand joins every stored line item with current catalog data, preserving
// the stored line order. Lines whose product has been deleted keep their
// reference and quantity but carry no name, image or price. The order's
// persisted TotalPrice is passed through untouched; it remains the
// authoritative total.
func Expand(ctx context.Context, r Resolver, order models.Order) (models.ExpandedOrder, error) {
	products, err := resolveAll(ctx, r, order.Products)
	if err != nil {
		return models.ExpandedOrder{}, err
	}

	expanded := make([]models.ExpandedProduct, 0, len(order.Products))
	for _, item := range order.Products {
		line := models.ExpandedProduct{
			ProductType: item.ProductType,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
		}
		if p, ok := products[key(item)]; ok {
			price := p.price
			line.Name = p.name
			line.ImageURL = p.imageURL
			line.Price = &price
		}
		expanded = append(expanded, line)
	}

	return models.ExpandedOrder{
		ID:         order.ID,
		Email:      order.Email,
		Phone:      order.Phone,
		Address:    order.Address,
		Products:   expanded,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	}, nil
}

type productKey struct {
	kind string
	id   primitive.ObjectID
}

func key(item models.OrderProduct) productKey {
	return productKey{kind: item.ProductType, id: item.ProductID}
}

// resolveAll fetches every referenced product in two batch reads, one per
// collection, and indexes the results by (type, id).
func resolveAll(ctx context.Context, r Resolver, items []models.OrderProduct) (map[productKey]resolved, error) {
	var flowerIDs, bouquetIDs []primitive.ObjectID
	for _, item := range items {
		switch item.ProductType {
		case models.ProductTypeFlower:
			flowerIDs = append(flowerIDs, item.ProductID)
		case models.ProductTypeBouquet:
			bouquetIDs = append(bouquetIDs, item.ProductID)
		}
	}

	products := make(map[productKey]resolved, len(items))

	if len(flowerIDs) > 0 {
		flowers, err := r.FlowersByID(ctx, flowerIDs)
		if err != nil {
			return nil, fmt.Errorf("resolving flowers: %w", err)
		}
		for id, f := range flowers {
			products[productKey{models.ProductTypeFlower, id}] = resolved{f.Name, f.ImageURL, f.Price}
		}
	}

	if len(bouquetIDs) > 0 {
		bouquets, err := r.BouquetsByID(ctx, bouquetIDs)
		if err != nil {
			return nil, fmt.Errorf("resolving bouquets: %w", err)
		}
		for id, b := range bouquets {
			products[productKey{models.ProductTypeBouquet, id}] = resolved{b.Name, b.ImageURL, b.Price}
		}
	}

	return products, nil
}
