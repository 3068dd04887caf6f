// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package contact

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/constants"
	"github.com/nilupul/lexora/internal/platform/dberr"
)

// MongoRepository implements Repository backed by MongoDB.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a contact repository on the given database.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.CollectionContacts)}
}

func (r *MongoRepository) List(ctx context.Context, unreadOnly bool, limit, offset int) ([]*Submission, int, error) {
	filter := bson.M{}
	if unreadOnly {
		filter["is_read"] = false
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, dberr.Wrap(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, dberr.Wrap(err)
	}
	defer cursor.Close(ctx)

	submissions := []*Submission{}
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, 0, dberr.Wrap(err)
	}

	return submissions, int(total), nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*Submission, error) {
	var submission Submission
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&submission); err != nil {
		return nil, dberr.Wrap(err)
	}
	return &submission, nil
}

func (r *MongoRepository) Create(ctx context.Context, submission *Submission) error {
	if _, err := r.collection.InsertOne(ctx, submission); err != nil {
		return dberr.Wrap(err)
	}
	return nil
}

func (r *MongoRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return dberr.Wrap(err)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("Contact submission")
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dberr.Wrap(err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("Contact submission")
	}
	return nil
}
