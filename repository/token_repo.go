package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tieubaoca/answer-engine/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// TokenRepo persists the commerce API OAuth pair. A separate refresh job
// rotates the tokens; this process only reads the latest pair and seeds the
// document when it is missing.
type TokenRepo interface {
	Get(ctx context.Context) (*types.CommerceTokens, error)
	Save(ctx context.Context, tokens *types.CommerceTokens) error
}

type tokenRepo struct {
	collection *mongo.Collection
}

func NewTokenRepo(collection *mongo.Collection) TokenRepo {
	return &tokenRepo{
		collection: collection,
	}
}

func (r *tokenRepo) Get(ctx context.Context) (*types.CommerceTokens, error) {
	var tokens types.CommerceTokens
	err := r.collection.FindOne(ctx, bson.D{}).Decode(&tokens)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (r *tokenRepo) Save(ctx context.Context, tokens *types.CommerceTokens) error {
	update := bson.M{"$set": bson.M{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"updatedAt":    time.Now().Unix(),
	}}
	_, err := r.collection.UpdateOne(ctx, bson.D{}, update, options.UpdateOne().SetUpsert(true))
	return err
}
