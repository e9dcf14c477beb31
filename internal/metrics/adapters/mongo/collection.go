package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Cursor is the slice of mongo.Cursor the repository consumes.
type Cursor interface {
	Next(ctx context.Context) bool
	Decode(val any) error
	Err() error
	Close(ctx context.Context) error
}

// Collection is the aggregation capability the repository needs from
// the lists collection. Name is exposed because the cohort pipeline
// $lookups the collection into itself.
type Collection interface {
	Name() string
	Aggregate(ctx context.Context, pipeline any) (Cursor, error)
}

type mongoCollection struct {
	coll *mongo.Collection
}

func NewCollection(coll *mongo.Collection) Collection {
	return &mongoCollection{coll: coll}
}

func (c *mongoCollection) Name() string {
	return c.coll.Name()
}

func (c *mongoCollection) Aggregate(ctx context.Context, pipeline any) (Cursor, error) {
	cur, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return cur, nil
}
