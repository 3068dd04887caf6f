// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

/*
Package lawyer manages attorney profiles for the firm's team pages.

An attorney is one document carrying translated text (name, title,
description), translated ordered lists (office locations, practice areas,
education history), and language-invariant attributes: a frozen URL slug,
display order, visibility flags, and contact details.

# Slug

The slug is derived from the English name and title at creation time and
never changes afterwards, so published profile URLs stay stable across
renames.
A millisecond-timestamp suffix keeps slugs unique without a retry loop.
*/
package lawyer

import (
	"time"

	"github.com/nilupul/lexora/internal/content"
)

// # Core Entities

// Translation is the per-language text bundle of an attorney profile.
type Translation struct {
	Name        string `bson:"name" json:"name"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// Lawyer is one attorney profile persisted as a single document.
type Lawyer struct {
	ID            string                           `bson:"_id" json:"id"` // UUIDv7
	Slug          string                           `bson:"slug" json:"slug"`
	ImageURL      string                           `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Order         int                              `bson:"order" json:"order"`
	Active        bool                             `bson:"active" json:"active"`
	Featured      bool                             `bson:"featured" json:"featured"`
	Phone         string                           `bson:"phone,omitempty" json:"phone,omitempty"`
	Email         string                           `bson:"email,omitempty" json:"email,omitempty"`
	Translations  map[content.Language]Translation `bson:"translations" json:"translations"`
	Locations     content.Lists                    `bson:"locations,omitempty" json:"locations,omitempty"`
	PracticeAreas content.Lists                    `bson:"practice_areas,omitempty" json:"practice_areas,omitempty"`
	Education     content.Lists                    `bson:"education,omitempty" json:"education,omitempty"`
	CreatedAt     time.Time                        `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time                        `bson:"updated_at" json:"updated_at"`
}

// # Projection

// View is the language-projected, flat shape served to clients.
type View struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Locations     []string  `json:"locations"`
	PracticeAreas []string  `json:"practice_areas"`
	Education     []string  `json:"education"`
	ImageURL      string    `json:"image_url,omitempty"`
	Order         int       `json:"order"`
	Active        bool      `json:"active"`
	Featured      bool      `json:"featured"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Project flattens the profile for the requested language.
//
// Text fields fall back to English when the requested translation is
// missing; list fields never do, so a missing translation shows empty
// lists rather than English place names.
func (lawyer *Lawyer) Project(language content.Language) View {
	translation, _ := content.Pick(lawyer.Translations, language)

	return View{
		ID:            lawyer.ID,
		Slug:          lawyer.Slug,
		Name:          translation.Name,
		Title:         translation.Title,
		Description:   translation.Description,
		Locations:     lawyer.Locations.Values(language),
		PracticeAreas: lawyer.PracticeAreas.Values(language),
		Education:     lawyer.Education.Values(language),
		ImageURL:      lawyer.ImageURL,
		Order:         lawyer.Order,
		Active:        lawyer.Active,
		Featured:      lawyer.Featured,
		Phone:         lawyer.Phone,
		Email:         lawyer.Email,
		CreatedAt:     lawyer.CreatedAt,
		UpdatedAt:     lawyer.UpdatedAt,
	}
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldOrder       = "order"
	FieldActive      = "active"
	FieldFeatured    = "featured"
	FieldPhone       = "phone"
	FieldEmail       = "email"

	ListLocations     = "locations"
	ListPracticeAreas = "practiceAreas"
	ListEducation     = "education"
)
