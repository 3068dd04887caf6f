// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package profile

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nilupul/lexora/internal/content"
	"github.com/nilupul/lexora/internal/platform/assets"
	"github.com/nilupul/lexora/internal/platform/dberr"
	"github.com/nilupul/lexora/internal/platform/validate"
)

// assetFolder is the asset-store prefix for the firm profile photo.
const assetFolder = "profile"

// Service implements the business logic for the firm profile singleton.
type Service struct {
	repo   Repository
	assets assets.Store
	logger *slog.Logger
}

// NewService creates a profile service.
func NewService(repo Repository, store assets.Store, logger *slog.Logger) *Service {
	return &Service{repo: repo, assets: store, logger: logger}
}

// # Read Path

// Get returns the profile projected into the requested language.
func (s *Service) Get(ctx context.Context, language content.Language) (View, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		return View{}, err
	}
	return profile.Project(language), nil
}

// GetRaw returns the full multilingual document for the admin edit form.
func (s *Service) GetRaw(ctx context.Context) (*Profile, error) {
	return s.repo.Get(ctx)
}

// # Write Path

/*
Save applies a flat admin form to the profile singleton, creating it on
first save.

Merge semantics follow the other translated entities: complete submitted
language bundles replace stored ones, absent languages keep their stored
data, invariant fields change only when the form carries the key. English
must always be submitted complete, with every sub-field populated. A
replaced photo's old object is removed best-effort only after the upsert
succeeds.
*/
func (s *Service) Save(ctx context.Context, form content.Form, image *assets.File) (View, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, dberr.ErrNotFound) {
			return View{}, err
		}
		profile = &Profile{
			ID:           DocumentID,
			Translations: map[content.Language]Translation{},
			CreatedAt:    nowUTC(),
		}
	}

	submitted, err := assembleTranslations(form)
	if err != nil {
		return View{}, err
	}
	for language, bundle := range submitted {
		profile.Translations[language] = bundle
	}

	if err := s.applyInvariants(profile, form); err != nil {
		return View{}, err
	}

	var previousImage string
	if image != nil {
		url, err := s.assets.Upload(ctx, assetFolder, image)
		if err != nil {
			return View{}, err
		}
		previousImage = profile.ImageURL
		profile.ImageURL = url
	}

	profile.UpdatedAt = nowUTC()

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return View{}, err
	}
	if previousImage != "" {
		s.removeImage(ctx, previousImage)
	}

	s.logger.InfoContext(ctx, "firm profile saved")
	return profile.Project(content.Default), nil
}

// applyInvariants copies submitted language-independent fields onto the
// profile, validating contact details and social links.
func (s *Service) applyInvariants(profile *Profile, form content.Form) error {
	v := &validate.Validator{}

	if form.Has(FieldEmail) {
		email := form.Invariant(FieldEmail)
		if email != "" {
			v.Email(FieldEmail, email)
		}
		profile.Email = email
	}
	for _, field := range []struct {
		name   string
		target *string
	}{
		{FieldFacebook, &profile.Facebook},
		{FieldLinkedIn, &profile.LinkedIn},
		{FieldTwitter, &profile.Twitter},
	} {
		if !form.Has(field.name) {
			continue
		}
		link := form.Invariant(field.name)
		if link != "" {
			v.URL(field.name, link)
		}
		*field.target = link
	}
	if form.Has(FieldPhone) {
		profile.Phone = form.Invariant(FieldPhone)
	}

	return v.Err()
}

// removeImage deletes a stored photo, logging failures without
// propagating them.
func (s *Service) removeImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.assets.Delete(ctx, url); err != nil {
		s.logger.WarnContext(ctx, "profile image cleanup failed",
			slog.String("image_url", url),
			slog.Any("error", err))
	}
}

// nowUTC truncates to milliseconds so timestamps survive a BSON round trip
// unchanged.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// assembleTranslations reassembles the five-field profile bundles from the
// flat form. English must be complete; other languages join only when
// every sub-field is populated.
func assembleTranslations(form content.Form) (map[content.Language]Translation, error) {
	v := &validate.Validator{}
	v.Required("fullName_en", form.Value(FieldFullName, content.English)).
		Required("title_en", form.Value(FieldTitle, content.English)).
		Required("tagline_en", form.Value(FieldTagline, content.English)).
		Required("about_en", form.Value(FieldAbout, content.English)).
		Required("address_en", form.Value(FieldAddress, content.English))
	if err := v.Err(); err != nil {
		return nil, err
	}

	translations := map[content.Language]Translation{}
	for _, language := range content.All {
		bundle := Translation{
			FullName: form.Value(FieldFullName, language),
			Title:    form.Value(FieldTitle, language),
			Tagline:  form.Value(FieldTagline, language),
			About:    form.Value(FieldAbout, language),
			Address:  form.Value(FieldAddress, language),
		}
		if bundle.FullName == "" || bundle.Title == "" || bundle.Tagline == "" ||
			bundle.About == "" || bundle.Address == "" {
			continue
		}
		translations[language] = bundle
	}
	return translations, nil
}
