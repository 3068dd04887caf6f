// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package admin

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/constants"
	"github.com/nilupul/lexora/internal/platform/dberr"
)

// MongoRepository implements Repository backed by MongoDB.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates an admin repository on the given database.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.CollectionAdmins)}
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, dberr.Wrap(err)
	}
	return &user, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*User, error) {
	var user User
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, dberr.Wrap(err)
	}
	return &user, nil
}

func (r *MongoRepository) Create(ctx context.Context, user *User) error {
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return dberr.Wrap(err)
	}
	return nil
}

func (r *MongoRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		}})
	if err != nil {
		return dberr.Wrap(err)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("Admin user")
	}
	return nil
}
