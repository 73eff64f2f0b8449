package repository

import (
	"context"

	"interviewflow/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const boardID = "board"

// TrackerRepo handles MongoDB operations for the application tracker
// board. The board is a single document.
type TrackerRepo interface {
	Get(ctx context.Context) (*model.TrackerData, error)
	Replace(ctx context.Context, data *model.TrackerData) error
}

type trackerRepo struct {
	coll *mongo.Collection
}

type boardDoc struct {
	ID   string            `bson:"_id"`
	Data model.TrackerData `bson:"data"`
}

// NewTrackerRepo creates a new tracker repository
func NewTrackerRepo(db *mongo.Database) TrackerRepo {
	return &trackerRepo{
		coll: db.Collection("tracker"),
	}
}

func (r *trackerRepo) Get(ctx context.Context) (*model.TrackerData, error) {
	var doc boardDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": boardID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Data, nil
}

func (r *trackerRepo) Replace(ctx context.Context, data *model.TrackerData) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": boardID}, boardDoc{ID: boardID, Data: *data}, opts)
	return err
}
