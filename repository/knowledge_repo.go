package repository

import (
	"context"

	"github.com/tieubaoca/answer-engine/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type KnowledgeRepo interface {
	All(ctx context.Context) ([]types.KnowledgeNote, error)
	Get(ctx context.Context, id string) (*types.KnowledgeNote, error)
	Insert(ctx context.Context, note *types.KnowledgeNote) error
	InsertMany(ctx context.Context, notes []types.KnowledgeNote) error
	Update(ctx context.Context, id string, note *types.KnowledgeNote) error
	Delete(ctx context.Context, id string) error
	Paginate(ctx context.Context, page, limit int64, category string) ([]types.KnowledgeNote, int64, error)
}

type knowledgeRepo struct {
	collection *mongo.Collection
}

func NewKnowledgeRepo(collection *mongo.Collection) KnowledgeRepo {
	return &knowledgeRepo{
		collection: collection,
	}
}

func (r *knowledgeRepo) All(ctx context.Context) ([]types.KnowledgeNote, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []types.KnowledgeNote
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *knowledgeRepo) Get(ctx context.Context, id string) (*types.KnowledgeNote, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var note types.KnowledgeNote
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *knowledgeRepo) Insert(ctx context.Context, note *types.KnowledgeNote) error {
	_, err := r.collection.InsertOne(ctx, note)
	return err
}

func (r *knowledgeRepo) InsertMany(ctx context.Context, notes []types.KnowledgeNote) error {
	if len(notes) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(notes))
	for i := range notes {
		docs = append(docs, notes[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *knowledgeRepo) Update(ctx context.Context, id string, note *types.KnowledgeNote) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"question":   note.Question,
		"answer":     note.Answer,
		"category":   note.Category,
		"updated_at": note.UpdatedAt,
	}})
	return err
}

func (r *knowledgeRepo) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *knowledgeRepo) Paginate(ctx context.Context, page, limit int64, category string) ([]types.KnowledgeNote, int64, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var notes []types.KnowledgeNote
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}
