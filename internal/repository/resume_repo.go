package repository

import (
	"context"

	"interviewflow/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResumeRepo handles MongoDB operations for resume metadata
type ResumeRepo interface {
	Insert(ctx context.Context, resume *model.Resume) error
	List(ctx context.Context) ([]model.Resume, error)
	Count(ctx context.Context) (int64, error)
}

type resumeRepo struct {
	coll *mongo.Collection
}

// NewResumeRepo creates a new resume repository
func NewResumeRepo(db *mongo.Database) ResumeRepo {
	return &resumeRepo{
		coll: db.Collection("resumes"),
	}
}

func (r *resumeRepo) Insert(ctx context.Context, resume *model.Resume) error {
	_, err := r.coll.InsertOne(ctx, resume)
	return err
}

func (r *resumeRepo) List(ctx context.Context) ([]model.Resume, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	resumes := []model.Resume{}
	if err := cursor.All(ctx, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *resumeRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
