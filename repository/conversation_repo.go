package repository

import (
	"context"

	"github.com/tieubaoca/answer-engine/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ConversationRepo is the write-mostly transcript sink: one document per
// (member, day), turns pushed in order. The answer pipeline only appends;
// reads exist for the export surface.
type ConversationRepo interface {
	Append(ctx context.Context, memberID, date string, turn types.ConversationTurn) error
	All(ctx context.Context) ([]types.ConversationLog, error)
}

type conversationRepo struct {
	collection *mongo.Collection
}

func NewConversationRepo(collection *mongo.Collection) ConversationRepo {
	return &conversationRepo{
		collection: collection,
	}
}

func (r *conversationRepo) Append(ctx context.Context, memberID, date string, turn types.ConversationTurn) error {
	filter := bson.M{"memberId": memberID, "date": date}
	update := bson.M{"$push": bson.M{"conversation": turn}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}

func (r *conversationRepo) All(ctx context.Context) ([]types.ConversationLog, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []types.ConversationLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
