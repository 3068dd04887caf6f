// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package blog

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

// NewMongoRepository creates a blog repository on the given database.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.CollectionBlogPosts)}
}

func (r *MongoRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*Post, int, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
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

	posts := []*Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, dberr.Wrap(err)
	}

	return posts, int(total), nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*Post, error) {
	var post Post
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, dberr.Wrap(err)
	}
	return &post, nil
}

func (r *MongoRepository) Create(ctx context.Context, post *Post) error {
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return dberr.Wrap(err)
	}
	return nil
}

func (r *MongoRepository) Replace(ctx context.Context, post *Post) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return dberr.Wrap(err)
	}
	if result.MatchedCount == 0 {
		return apperr.NotFound("Blog post")
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dberr.Wrap(err)
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("Blog post")
	}
	return nil
}
