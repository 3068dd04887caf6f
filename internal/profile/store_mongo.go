// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package profile

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nilupul/lexora/internal/platform/constants"
	"github.com/nilupul/lexora/internal/platform/dberr"
)

// MongoRepository implements Repository backed by MongoDB.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a profile repository on the given database.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.CollectionProfile)}
}

func (r *MongoRepository) Get(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := r.collection.FindOne(ctx, bson.M{"_id": DocumentID}).Decode(&profile); err != nil {
		return nil, dberr.Wrap(err)
	}
	return &profile, nil
}

func (r *MongoRepository) Upsert(ctx context.Context, profile *Profile) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": DocumentID}, profile, opts); err != nil {
		return dberr.Wrap(err)
	}
	return nil
}
