// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package practice

import (
	"context"
	"log/slog"
	"time"

	"github.com/nilupul/lexora/internal/content"
	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/assets"
	"github.com/nilupul/lexora/internal/platform/validate"
	"github.com/nilupul/lexora/pkg/convert"
	"github.com/nilupul/lexora/pkg/pagination"
	"github.com/nilupul/lexora/pkg/slice"
	"github.com/nilupul/lexora/pkg/uuidv7"
)

// assetFolder is the asset-store prefix for practice area icons.
const assetFolder = "practices"

// Service implements the business logic for practice areas.
type Service struct {
	repo   Repository
	assets assets.Store
	logger *slog.Logger
}

// NewService creates a practice service.
func NewService(repo Repository, store assets.Store, logger *slog.Logger) *Service {
	return &Service{repo: repo, assets: store, logger: logger}
}

// # Read Path

// List returns a page of practice areas projected into the requested
// language, sorted by display order. Public callers pass activeOnly=true.
func (s *Service) List(ctx context.Context, language content.Language, activeOnly bool, params pagination.Params) ([]View, pagination.Meta, error) {
	practices, total, err := s.repo.List(ctx, activeOnly, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	views := slice.Map(practices, func(practice *Practice) View {
		return practice.Project(language)
	})

	return views, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Get returns one practice area projected into the requested language.
// With activeOnly set, deactivated areas are reported as not found so
// they stay invisible on the public surface.
func (s *Service) Get(ctx context.Context, id string, language content.Language, activeOnly bool) (View, error) {
	practice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	if activeOnly && !practice.Active {
		return View{}, apperr.NotFound("Practice area")
	}
	return practice.Project(language), nil
}

// GetRaw returns the full multilingual document for the admin edit form.
func (s *Service) GetRaw(ctx context.Context, id string) (*Practice, error) {
	return s.repo.FindByID(ctx, id)
}

// # Write Path

// Create assembles a new practice area from a flat admin form.
func (s *Service) Create(ctx context.Context, form content.Form, image *assets.File) (View, error) {
	translations, err := assembleTranslations(form)
	if err != nil {
		return View{}, err
	}

	practice := &Practice{
		ID:           uuidv7.New(),
		Order:        convert.ToIntD(form.Invariant(FieldOrder), 0),
		Active:       form.Flag(FieldActive),
		Translations: translations,
		CreatedAt:    nowUTC(),
	}
	practice.UpdatedAt = practice.CreatedAt

	if image != nil {
		url, err := s.assets.Upload(ctx, assetFolder, image)
		if err != nil {
			return View{}, err
		}
		practice.ImageURL = url
	}

	if err := s.repo.Create(ctx, practice); err != nil {
		return View{}, err
	}

	s.logger.InfoContext(ctx, "practice area created", slog.String("practice_id", practice.ID))
	return practice.Project(content.Default), nil
}

// Update applies a flat admin form to an existing practice area with the
// same merge semantics as the other translated entities: complete
// submitted bundles replace stored ones, absent languages are preserved,
// invariant fields change only when the form carries the key. A replaced
// icon's old object is removed best-effort only after the document
// replace succeeds.
func (s *Service) Update(ctx context.Context, id string, form content.Form, image *assets.File) (View, error) {
	practice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return View{}, err
	}

	submitted, err := assembleTranslations(form)
	if err != nil {
		return View{}, err
	}
	for language, bundle := range submitted {
		practice.Translations[language] = bundle
	}

	if form.Has(FieldOrder) {
		practice.Order = convert.ToIntD(form.Invariant(FieldOrder), practice.Order)
	}
	if form.Has(FieldActive) {
		practice.Active = form.Flag(FieldActive)
	}

	var previousImage string
	if image != nil {
		url, err := s.assets.Upload(ctx, assetFolder, image)
		if err != nil {
			return View{}, err
		}
		previousImage = practice.ImageURL
		practice.ImageURL = url
	}

	practice.UpdatedAt = nowUTC()

	if err := s.repo.Replace(ctx, practice); err != nil {
		return View{}, err
	}
	if previousImage != "" {
		s.removeImage(ctx, previousImage)
	}

	s.logger.InfoContext(ctx, "practice area updated", slog.String("practice_id", practice.ID))
	return practice.Project(content.Default), nil
}

// Delete removes the practice area and, best-effort, its icon.
func (s *Service) Delete(ctx context.Context, id string) error {
	practice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeImage(ctx, practice.ImageURL)
	s.logger.InfoContext(ctx, "practice area deleted", slog.String("practice_id", id))
	return nil
}

// removeImage deletes a stored icon, logging failures without propagating
// them.
func (s *Service) removeImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.assets.Delete(ctx, url); err != nil {
		s.logger.WarnContext(ctx, "practice image cleanup failed",
			slog.String("image_url", url),
			slog.Any("error", err))
	}
}

// nowUTC truncates to milliseconds so timestamps survive a BSON round trip
// unchanged.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// assembleTranslations reassembles title/description bundles from the flat
// form. English must be complete; other languages join only when fully
// populated.
func assembleTranslations(form content.Form) (map[content.Language]Translation, error) {
	v := &validate.Validator{}
	v.Required("title_en", form.Value(FieldTitle, content.English)).
		Required("description_en", form.Value(FieldDescription, content.English))
	if err := v.Err(); err != nil {
		return nil, err
	}

	translations := map[content.Language]Translation{}
	for _, language := range content.All {
		title := form.Value(FieldTitle, language)
		description := form.Value(FieldDescription, language)
		if title == "" || description == "" {
			continue
		}
		translations[language] = Translation{Title: title, Description: description}
	}
	return translations, nil
}
