package repository

import (
	"context"
	"errors"

	"github.com/tieubaoca/answer-engine/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PromptRepo interface {
	Insert(ctx context.Context, prompt *types.SystemPrompt) error
	// Latest returns the most recently created persona, or nil when none
	// has ever been persisted.
	Latest(ctx context.Context) (*types.SystemPrompt, error)
}

type promptRepo struct {
	collection *mongo.Collection
}

func NewPromptRepo(collection *mongo.Collection) PromptRepo {
	return &promptRepo{
		collection: collection,
	}
}

func (r *promptRepo) Insert(ctx context.Context, prompt *types.SystemPrompt) error {
	_, err := r.collection.InsertOne(ctx, prompt)
	return err
}

func (r *promptRepo) Latest(ctx context.Context) (*types.SystemPrompt, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var prompt types.SystemPrompt
	err := r.collection.FindOne(ctx, bson.D{}, opts).Decode(&prompt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prompt, nil
}
