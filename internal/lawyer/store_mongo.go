// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package lawyer

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

// NewMongoRepository creates a lawyer repository on the given database.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.CollectionLawyers)}
}

func (r *MongoRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*Lawyer, int, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, dberr.Wrap(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, dberr.Wrap(err)
	}
	defer cursor.Close(ctx)

	lawyers := []*Lawyer{}
	if err := cursor.All(ctx, &lawyers); err != nil {
		return nil, 0, dberr.Wrap(err)
	}

	return lawyers, int(total), nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*Lawyer, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) FindBySlug(ctx context.Context, slug string) (*Lawyer, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*Lawyer, error) {
	var lawyer Lawyer
	if err := r.collection.FindOne(ctx, filter).Decode(&lawyer); err != nil {
		return nil, dberr.Wrap(err)
	}
	return &lawyer, nil
}

func (r *MongoRepository) Create(ctx context.Context, lawyer *Lawyer) error {
	if _, err := r.collection.InsertOne(ctx, lawyer); err != nil {
		return dberr.Wrap(err)
	}
	return nil
}

func (r *MongoRepository) Replace(ctx context.Context, lawyer *Lawyer) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": lawyer.ID}, lawyer)
	if err != nil {
		return dberr.Wrap(err)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("Lawyer")
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dberr.Wrap(err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("Lawyer")
	}
	return nil
}
