package orders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/YuliiaIvakhnenko/flower-shop/models"
)

// MongoResolver resolves product references with one $in query per
// collection.
type MongoResolver struct {
	Flowers  *mongo.Collection
	Bouquets *mongo.Collection
}

func (r *MongoResolver) FlowersByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Flower, error) {
	cursor, err := r.Flowers.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	flowers := make(map[primitive.ObjectID]models.Flower, len(ids))
	for cursor.Next(ctx) {
		var flower models.Flower
		if err := cursor.Decode(&flower); err != nil {
			return nil, err
		}
		flowers[flower.ID] = flower
	}
	return flowers, cursor.Err()
}

func (r *MongoResolver) BouquetsByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Bouquet, error) {
	cursor, err := r.Bouquets.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bouquets := make(map[primitive.ObjectID]models.Bouquet, len(ids))
	for cursor.Next(ctx) {
		var bouquet models.Bouquet
		if err := cursor.Decode(&bouquet); err != nil {
			return nil, err
		}
		bouquets[bouquet.ID] = bouquet
	}
	return bouquets, cursor.Err()
}
