// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

/*
Package blog manages the firm's news and insight articles.

Each article is one document holding every language variant of its text
(English mandatory, Tamil/Sinhala optional) plus language-invariant
attributes like category, cover image, and the published flag.
*/
package blog

import (
	"time"

	"github.com/nilupul/lexora/internal/content"
)

// # Core Entities

// Translation is the per-language text bundle of an article.
type Translation struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// Post is one blog article persisted as a single document.
type Post struct {
	ID           string                                `bson:"_id" json:"id"` // UUIDv7
	Category     string                                `bson:"category" json:"category"`
	ImageURL     string                                `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Published    bool                                  `bson:"published" json:"published"`
	Translations map[content.Language]Translation      `bson:"translations" json:"translations"`
	CreatedAt    time.Time                             `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time                             `bson:"updated_at" json:"updated_at"`
}

// # Projection

// View is the language-projected, flat shape served to clients.
// It carries no language tags.
type View struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Project flattens the article for the requested language.
//
// An article with zero translations projects to empty text fields, never an
// error, so half-written drafts still render in the admin list.
func (post *Post) Project(language content.Language) View {
	translation, _ := content.Pick(post.Translations, language)

	return View{
		ID:          post.ID,
		Title:       translation.Title,
		Description: translation.Description,
		Category:    post.Category,
		ImageURL:    post.ImageURL,
		Published:   post.Published,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPublished   = "published"
)
