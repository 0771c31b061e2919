package repository

import (
	"context"
	"time"

	"github.com/cardapio/cardapio/backend/food-service/internal/food"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores foods in a MongoDB collection. The generated UUID is used
// as the document _id so uniqueness is enforced by the server.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// listing sorts on createdAt; keep it indexed
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}}
	_, _ = col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Save(ctx context.Context, f *food.Food) (*food.Food, error) {
	prepare(f)
	// mongo keeps millisecond precision
	f.CreatedAt = f.CreatedAt.Truncate(time.Millisecond)
	if _, err := m.col.InsertOne(ctx, f); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, storageError("mongo save", ErrDuplicateID)
		}
		return nil, storageError("mongo save", err)
	}
	out := *f
	return &out, nil
}

func (m *MongoRepo) FindAll(ctx context.Context) ([]*food.Food, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storageError("mongo find", err)
	}
	defer cur.Close(ctx)
	out := []*food.Food{}
	for cur.Next(ctx) {
		var f food.Food
		if err := cur.Decode(&f); err != nil {
			return nil, storageError("mongo decode", err)
		}
		out = append(out, &f)
	}
	if err := cur.Err(); err != nil {
		return nil, storageError("mongo cursor", err)
	}
	return out, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}
