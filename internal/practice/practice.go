// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

/*
Package practice manages the firm's practice area listings (litigation,
conveyancing, notarial work, and so on).

Each practice area is one document with translated title and description,
an icon image, a display order, and an active flag.
*/
package practice

import (
	"time"

	"github.com/nilupul/lexora/internal/content"
)

// # Core Entities

// Translation is the per-language text bundle of a practice area.
type Translation struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// Practice is one practice area persisted as a single document.
type Practice struct {
	ID           string                           `bson:"_id" json:"id"` // UUIDv7
	ImageURL     string                           `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Order        int                              `bson:"order" json:"order"`
	Active       bool                             `bson:"active" json:"active"`
	Translations map[content.Language]Translation `bson:"translations" json:"translations"`
	CreatedAt    time.Time                        `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time                        `bson:"updated_at" json:"updated_at"`
}

// # Projection

// View is the language-projected, flat shape served to clients.
type View struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Project flattens the practice area for the requested language.
func (practice *Practice) Project(language content.Language) View {
	translation, _ := content.Pick(practice.Translations, language)

	return View{
		ID:          practice.ID,
		Title:       translation.Title,
		Description: translation.Description,
		ImageURL:    practice.ImageURL,
		Order:       practice.Order,
		Active:      practice.Active,
		CreatedAt:   practice.CreatedAt,
		UpdatedAt:   practice.UpdatedAt,
	}
}

// # Field Identifiers

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldOrder       = "order"
	FieldActive      = "active"
)
