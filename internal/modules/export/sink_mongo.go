package export

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCollection holds saved plan rows, one document per day.
const MongoCollection = "plan_rows"

type MongoSink struct {
	coll *mongo.Collection
}

func NewMongoSink(db *mongo.Database) *MongoSink {
	return &MongoSink{coll: db.Collection(MongoCollection)}
}

func (s *MongoSink) Append(ctx context.Context, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	docs := make([]any, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, r)
	}
	if _, err := s.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("mongo sink: insert: %w", err)
	}
	return nil
}
