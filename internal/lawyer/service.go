// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package lawyer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nilupul/lexora/internal/content"
	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/assets"
	"github.com/nilupul/lexora/internal/platform/validate"
	"github.com/nilupul/lexora/pkg/convert"
	"github.com/nilupul/lexora/pkg/pagination"
	"github.com/nilupul/lexora/pkg/slice"
	"github.com/nilupul/lexora/pkg/slug"
	"github.com/nilupul/lexora/pkg/uuidv7"
)

// assetFolder is the asset-store prefix for attorney portraits.
const assetFolder = "lawyers"

// Service implements the business logic for attorney profiles.
type Service struct {
	repo   Repository
	assets assets.Store
	logger *slog.Logger
}

// NewService creates a lawyer service.
func NewService(repo Repository, store assets.Store, logger *slog.Logger) *Service {
	return &Service{repo: repo, assets: store, logger: logger}
}

// # Read Path

// List returns a page of profiles projected into the requested language,
// sorted by display order. Public callers pass activeOnly=true.
func (s *Service) List(ctx context.Context, language content.Language, activeOnly bool, params pagination.Params) ([]View, pagination.Meta, error) {
	lawyers, total, err := s.repo.List(ctx, activeOnly, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	views := slice.Map(lawyers, func(lawyer *Lawyer) View {
		return lawyer.Project(language)
	})

	return views, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Get resolves a profile by UUID or slug and projects it into the
// requested language. With activeOnly set, deactivated profiles are
// reported as not found so they stay invisible on the public surface.
func (s *Service) Get(ctx context.Context, identifier string, language content.Language, activeOnly bool) (View, error) {
	lawyer, err := s.find(ctx, identifier)
	if err != nil {
		return View{}, err
	}
	if activeOnly && !lawyer.Active {
		return View{}, apperr.NotFound("Lawyer")
	}
	return lawyer.Project(language), nil
}

// GetRaw returns the full multilingual document for the admin edit form.
func (s *Service) GetRaw(ctx context.Context, identifier string) (*Lawyer, error) {
	return s.find(ctx, identifier)
}

// find dispatches on the identifier shape. A slug can collide with a UUID
// on length alone, so anything that does not parse as a UUID is a slug.
func (s *Service) find(ctx context.Context, identifier string) (*Lawyer, error) {
	if _, err := uuid.Parse(identifier); err == nil {
		return s.repo.FindByID(ctx, identifier)
	}
	return s.repo.FindBySlug(ctx, identifier)
}

// # Write Path

/*
Create assembles a new attorney profile from a flat admin form.

The slug is derived from the English name and title once, here, and never
rewritten: renaming an attorney later must not break published profile URLs.
*/
func (s *Service) Create(ctx context.Context, form content.Form, image *assets.File) (View, error) {
	translations, err := assembleTranslations(form)
	if err != nil {
		return View{}, err
	}
	if err := validateContact(form.Invariant(FieldEmail)); err != nil {
		return View{}, err
	}

	english := translations[content.English]

	lawyer := &Lawyer{
		ID:            uuidv7.New(),
		Slug:          slug.Unique(english.Name, english.Title),
		Order:         convert.ToIntD(form.Invariant(FieldOrder), 0),
		Active:        form.Flag(FieldActive),
		Featured:      form.Flag(FieldFeatured),
		Phone:         form.Invariant(FieldPhone),
		Email:         form.Invariant(FieldEmail),
		Translations:  translations,
		Locations:     form.CollectList(ListLocations),
		PracticeAreas: form.CollectList(ListPracticeAreas),
		Education:     form.CollectList(ListEducation),
		CreatedAt:     nowUTC(),
	}
	lawyer.UpdatedAt = lawyer.CreatedAt

	if image != nil {
		url, err := s.assets.Upload(ctx, assetFolder, image)
		if err != nil {
			return View{}, err
		}
		lawyer.ImageURL = url
	}

	if err := s.repo.Create(ctx, lawyer); err != nil {
		return View{}, err
	}

	s.logger.InfoContext(ctx, "lawyer created",
		slog.String("lawyer_id", lawyer.ID),
		slog.String("slug", lawyer.Slug))
	return lawyer.Project(content.Default), nil
}

/*
Update applies a flat admin form to an existing profile.

Merge semantics:
  - Translations: complete submitted bundles replace stored ones; absent
    languages keep their stored data. English must be submitted complete.
  - List fields: presence of ANY language key for a list field replaces
    that field's stored lists wholesale across all languages. Absent list
    fields are untouched.
  - Invariant fields (order, active, featured, phone, email): updated only
    when the form carries the key.
  - Slug: frozen. The form cannot change it.
  - Image: a new upload replaces the portrait; the old object is removed
    best-effort only after the document replace succeeds.
*/
func (s *Service) Update(ctx context.Context, id string, form content.Form, image *assets.File) (View, error) {
	lawyer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return View{}, err
	}

	submitted, err := assembleTranslations(form)
	if err != nil {
		return View{}, err
	}
	for language, bundle := range submitted {
		lawyer.Translations[language] = bundle
	}

	if form.HasListField(ListLocations) {
		lawyer.Locations = form.CollectList(ListLocations)
	}
	if form.HasListField(ListPracticeAreas) {
		lawyer.PracticeAreas = form.CollectList(ListPracticeAreas)
	}
	if form.HasListField(ListEducation) {
		lawyer.Education = form.CollectList(ListEducation)
	}

	if form.Has(FieldOrder) {
		lawyer.Order = convert.ToIntD(form.Invariant(FieldOrder), lawyer.Order)
	}
	if form.Has(FieldActive) {
		lawyer.Active = form.Flag(FieldActive)
	}
	if form.Has(FieldFeatured) {
		lawyer.Featured = form.Flag(FieldFeatured)
	}
	if form.Has(FieldPhone) {
		lawyer.Phone = form.Invariant(FieldPhone)
	}
	if form.Has(FieldEmail) {
		if err := validateContact(form.Invariant(FieldEmail)); err != nil {
			return View{}, err
		}
		lawyer.Email = form.Invariant(FieldEmail)
	}

	var previousImage string
	if image != nil {
		url, err := s.assets.Upload(ctx, assetFolder, image)
		if err != nil {
			return View{}, err
		}
		previousImage = lawyer.ImageURL
		lawyer.ImageURL = url
	}

	lawyer.UpdatedAt = nowUTC()

	if err := s.repo.Replace(ctx, lawyer); err != nil {
		return View{}, err
	}
	if previousImage != "" {
		s.removeImage(ctx, previousImage)
	}

	s.logger.InfoContext(ctx, "lawyer updated", slog.String("lawyer_id", lawyer.ID))
	return lawyer.Project(content.Default), nil
}

// Delete removes the profile and, best-effort, its portrait.
func (s *Service) Delete(ctx context.Context, id string) error {
	lawyer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeImage(ctx, lawyer.ImageURL)
	s.logger.InfoContext(ctx, "lawyer deleted", slog.String("lawyer_id", id))
	return nil
}

// removeImage deletes a stored portrait, logging failures without
// propagating them.
func (s *Service) removeImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.assets.Delete(ctx, url); err != nil {
		s.logger.WarnContext(ctx, "lawyer image cleanup failed",
			slog.String("image_url", url),
			slog.Any("error", err))
	}
}

// nowUTC truncates to milliseconds so timestamps survive a BSON round trip
// unchanged.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// assembleTranslations reassembles name/title/description bundles from the
// flat form. Name and title carry a bundle; the description is optional
// prose. English must be submitted complete; other languages join only when
// both required sub-fields are populated.
func assembleTranslations(form content.Form) (map[content.Language]Translation, error) {
	v := &validate.Validator{}
	v.Required("name_en", form.Value(FieldName, content.English)).
		Required("title_en", form.Value(FieldTitle, content.English))
	if err := v.Err(); err != nil {
		return nil, err
	}

	translations := map[content.Language]Translation{}
	for _, language := range content.All {
		name := form.Value(FieldName, language)
		title := form.Value(FieldTitle, language)
		if name == "" || title == "" {
			continue
		}
		translations[language] = Translation{
			Name:        name,
			Title:       title,
			Description: form.Value(FieldDescription, language),
		}
	}
	return translations, nil
}

// validateContact checks the optional contact email when present.
func validateContact(email string) error {
	if email == "" {
		return nil
	}
	v := &validate.Validator{}
	return v.Email(FieldEmail, email).Err()
}
