package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepository[E Entity[E]] struct {
	coll *mongo.Collection
}

// NewMongoRepository returns a Repository backed by one MongoDB collection.
// New documents get an ObjectID hex string as their _id.
func NewMongoRepository[E Entity[E]](db *mongo.Database, collection string) Repository[E] {
	return &mongoRepository[E]{
		coll: db.Collection(collection),
	}
}

func (r *mongoRepository[E]) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.coll.Name(), err)
	}
	return n, nil
}

func (r *mongoRepository[E]) FindAll(ctx context.Context) ([]E, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}

	out := make([]E, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return out, nil
}

func (r *mongoRepository[E]) FindByID(ctx context.Context, id string) (E, error) {
	var doc E
	err := r.coll.FindOne(ctx, byID(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, fmt.Errorf("find %s %s: %w", r.coll.Name(), id, err)
	}
	return doc, nil
}

func (r *mongoRepository[E]) Save(ctx context.Context, e E) (E, error) {
	if e.DocumentID() == "" {
		e = e.WithDocumentID(primitive.NewObjectID().Hex())
		if _, err := r.coll.InsertOne(ctx, e); err != nil {
			return e, fmt.Errorf("insert %s: %w", r.coll.Name(), err)
		}
		return e, nil
	}

	_, err := r.coll.ReplaceOne(ctx, byID(e.DocumentID()), e, options.Replace().SetUpsert(true))
	if err != nil {
		return e, fmt.Errorf("replace %s %s: %w", r.coll.Name(), e.DocumentID(), err)
	}
	return e, nil
}

func (r *mongoRepository[E]) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, byID(id)); err != nil {
		return fmt.Errorf("delete %s %s: %w", r.coll.Name(), id, err)
	}
	return nil
}

func (r *mongoRepository[E]) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete all %s: %w", r.coll.Name(), err)
	}
	return nil
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}
