package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"geotransect-api/internal/common/metrics"
)

// MongoStore implements Store on top of a MongoDB database handle.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("insert", collection, "error").Inc()
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	metrics.StoreOperationsTotal.WithLabelValues("insert", collection, "success").Inc()

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoStore) FindAll(ctx context.Context, collection string) ([]Document, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("findAll", collection, "error").Inc()
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		metrics.StoreOperationsTotal.WithLabelValues("findAll", collection, "error").Inc()
		return nil, fmt.Errorf("read cursor for %s: %w", collection, err)
	}
	metrics.StoreOperationsTotal.WithLabelValues("findAll", collection, "success").Inc()

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		doc := make(Document, len(m))
		for k, v := range m {
			doc[k] = normalizeBSONValue(v)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// normalizeBSONValue converts driver-specific types into the closed value set
// Document promises: ObjectIDs become hex strings, bson arrays and maps become
// plain slices and maps.
func normalizeBSONValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.A:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = normalizeBSONValue(e)
		}
		return out
	case bson.M:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = normalizeBSONValue(e)
		}
		return out
	case bson.D:
		out := make(map[string]interface{}, len(t))
		for _, e := range t {
			out[e.Key] = normalizeBSONValue(e.Value)
		}
		return out
	default:
		return v
	}
}
