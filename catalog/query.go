// Package catalog builds the filtered, sorted MongoDB queries behind the
// flower and bouquet listing endpoints.
package catalog

import (
	"errors"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sort keys accepted by the listing endpoints. Anything else falls back to
// store-default ordering.
const (
	SortPrice = "price"
	SortDate  = "date"
)

// Flower-membership match modes for bouquet queries
const (
	MatchAll = "all"
	MatchAny = "any"
)

var (
	ErrInvalidShopID   = errors.New("invalid shopId")
	ErrInvalidFlowerID = errors.New("invalid flowerId")
)

// FlowerQuery is a validated flower listing query. Browsing always requires
// a shop, so ShopID is mandatory.
type FlowerQuery struct {
	ShopID        primitive.ObjectID
	Sort          string
	FavoritesOnly bool
}

// ParseFlowerQuery validates raw query parameters into a FlowerQuery.
// A missing or malformed shopId is a validation error, never a query for
// all shops' data.
func ParseFlowerQuery(values url.Values) (FlowerQuery, error) {
	shopID, err := primitive.ObjectIDFromHex(values.Get("shopId"))
	if err != nil {
		return FlowerQuery{}, ErrInvalidShopID
	}
	return FlowerQuery{
		ShopID:        shopID,
		Sort:          values.Get("sort"),
		FavoritesOnly: values.Get("favorites") == "true",
	}, nil
}

// Selector returns the Mongo filter document for the query.
func (q FlowerQuery) Selector() bson.M {
	sel := bson.M{"shopId": q.ShopID}
	if q.FavoritesOnly {
		sel["isFavorite"] = true
	}
	return sel
}

// SortSpec returns the Mongo sort document, or nil for store-default order.
func (q FlowerQuery) SortSpec() bson.D {
	return sortSpec(q.Sort)
}

// BouquetQuery is a validated bouquet listing query. FlowerIDs, when
// non-empty, restrict results by flower membership according to Match.
type BouquetQuery struct {
	FlowerQuery
	FlowerIDs []primitive.ObjectID
	Match     string
}

// ParseBouquetQuery validates raw query parameters into a BouquetQuery.
// Every identifier in the flowerId list must be well formed; a single bad
// token fails the whole query rather than being dropped.
func ParseBouquetQuery(values url.Values) (BouquetQuery, error) {
	base, err := ParseFlowerQuery(values)
	if err != nil {
		return BouquetQuery{}, err
	}

	q := BouquetQuery{FlowerQuery: base, Match: values.Get("match")}

	if raw := values.Get("flowerId"); raw != "" {
		for _, tok := range strings.Split(raw, ",") {
			id, err := primitive.ObjectIDFromHex(tok)
			if err != nil {
				return BouquetQuery{}, ErrInvalidFlowerID
			}
			q.FlowerIDs = append(q.FlowerIDs, id)
		}
	}
	return q, nil
}

// Selector returns the Mongo filter document for the query. match=all
// selects bouquets whose flower set is a superset of the filter set;
// anything else intersects.
func (q BouquetQuery) Selector() bson.M {
	sel := q.FlowerQuery.Selector()
	if len(q.FlowerIDs) > 0 {
		if q.Match == MatchAll {
			sel["flowers"] = bson.M{"$all": q.FlowerIDs}
		} else {
			sel["flowers"] = bson.M{"$in": q.FlowerIDs}
		}
	}
	return sel
}

func sortSpec(sort string) bson.D {
	switch sort {
	case SortPrice:
		return bson.D{{Key: "price", Value: 1}}
	case SortDate:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	return nil
}
