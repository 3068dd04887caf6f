// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

/*
Package profile manages the firm profile: the single document behind the
"About" page and the site-wide contact block.

Unlike the other content collections this one holds exactly one document
with a fixed identifier. Admin writes upsert it, so the first save creates
it and every later save replaces it.
*/
package profile

import (
	"time"

	"github.com/nilupul/lexora/internal/content"
)

// DocumentID is the fixed identifier of the singleton profile document.
const DocumentID = "firm_profile"

// # Core Entities

// Translation is the per-language text bundle of the firm profile.
// Every sub-field is required for a language to be saved.
type Translation struct {
	FullName string `bson:"full_name" json:"full_name"`
	Title    string `bson:"title" json:"title"`
	Tagline  string `bson:"tagline" json:"tagline"`
	About    string `bson:"about" json:"about"`
	Address  string `bson:"address" json:"address"`
}

// Profile is the firm profile singleton document.
type Profile struct {
	ID           string                           `bson:"_id" json:"id"`
	ImageURL     string                           `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Phone        string                           `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string                           `bson:"email,omitempty" json:"email,omitempty"`
	Facebook     string                           `bson:"facebook,omitempty" json:"facebook,omitempty"`
	LinkedIn     string                           `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter      string                           `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Translations map[content.Language]Translation `bson:"translations" json:"translations"`
	CreatedAt    time.Time                        `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time                        `bson:"updated_at" json:"updated_at"`
}

// # Projection

// View is the language-projected, flat shape served to clients.
type View struct {
	FullName  string    `json:"full_name"`
	Title     string    `json:"title"`
	Tagline   string    `json:"tagline"`
	About     string    `json:"about"`
	Address   string    `json:"address"`
	ImageURL  string    `json:"image_url,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Facebook  string    `json:"facebook,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	Twitter   string    `json:"twitter,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Project flattens the profile for the requested language.
func (profile *Profile) Project(language content.Language) View {
	translation, _ := content.Pick(profile.Translations, language)

	return View{
		FullName:  translation.FullName,
		Title:     translation.Title,
		Tagline:   translation.Tagline,
		About:     translation.About,
		Address:   translation.Address,
		ImageURL:  profile.ImageURL,
		Phone:     profile.Phone,
		Email:     profile.Email,
		Facebook:  profile.Facebook,
		LinkedIn:  profile.LinkedIn,
		Twitter:   profile.Twitter,
		UpdatedAt: profile.UpdatedAt,
	}
}

// # Field Identifiers

const (
	FieldFullName = "fullName"
	FieldTitle    = "title"
	FieldTagline  = "tagline"
	FieldAbout    = "about"
	FieldAddress  = "address"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldFacebook = "facebook"
	FieldLinkedIn = "linkedin"
	FieldTwitter  = "twitter"
)
