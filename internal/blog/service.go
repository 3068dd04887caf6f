// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package blog

import (
	"context"
	"log/slog"
	"time"

	"github.com/nilupul/lexora/internal/content"
	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/assets"
	"github.com/nilupul/lexora/internal/platform/validate"
	"github.com/nilupul/lexora/pkg/pagination"
	"github.com/nilupul/lexora/pkg/slice"
	"github.com/nilupul/lexora/pkg/uuidv7"
)

// assetFolder is the asset-store prefix for blog cover images.
const assetFolder = "blog"

// Service implements the business logic for blog articles.
type Service struct {
	repo   Repository
	assets assets.Store
	logger *slog.Logger
}

// NewService creates a blog service.
func NewService(repo Repository, store assets.Store, logger *slog.Logger) *Service {
	return &Service{repo: repo, assets: store, logger: logger}
}

// # Read Path

// List returns a page of articles projected into the requested language.
// Public callers pass publishedOnly=true; the admin panel lists drafts too.
func (s *Service) List(ctx context.Context, language content.Language, publishedOnly bool, params pagination.Params) ([]View, pagination.Meta, error) {
	posts, total, err := s.repo.List(ctx, publishedOnly, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	views := slice.Map(posts, func(post *Post) View {
		return post.Project(language)
	})

	return views, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Get returns one article projected into the requested language. With
// publishedOnly set, drafts are reported as not found so they stay
// invisible on the public surface.
func (s *Service) Get(ctx context.Context, id string, language content.Language, publishedOnly bool) (View, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	if publishedOnly && !post.Published {
		return View{}, apperr.NotFound("Blog post")
	}
	return post.Project(language), nil
}

// GetRaw returns the full multilingual document for the admin edit form.
func (s *Service) GetRaw(ctx context.Context, id string) (*Post, error) {
	return s.repo.FindByID(ctx, id)
}

// # Write Path

/*
Create assembles a new article from a flat admin form and persists it.

Flow:
 1. Reassemble language-suffixed fields into translation bundles.
    English title and description are mandatory; other languages are
    included only when fully populated.
 2. Upload the cover image, if one was attached. An upload failure aborts
    the whole operation.
 3. Persist the document.

Returns the created article projected into English.
*/
func (s *Service) Create(ctx context.Context, form content.Form, image *assets.File) (View, error) {
	translations, err := assembleTranslations(form)
	if err != nil {
		return View{}, err
	}

	post := &Post{
		ID:           uuidv7.New(),
		Category:     form.Invariant(FieldCategory),
		Published:    form.Flag(FieldPublished),
		Translations: translations,
		CreatedAt:    nowUTC(),
	}
	post.UpdatedAt = post.CreatedAt

	if image != nil {
		url, err := s.assets.Upload(ctx, assetFolder, image)
		if err != nil {
			return View{}, err
		}
		post.ImageURL = url
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return View{}, err
	}

	s.logger.InfoContext(ctx, "blog post created", slog.String("post_id", post.ID))
	return post.Project(content.Default), nil
}

/*
Update applies a flat admin form to an existing article.

Merge semantics:
  - Translations: languages with a complete bundle in the form replace the
    stored bundle; incomplete non-English bundles are dropped from the
    update; languages absent from the form keep their stored data.
    English must always be submitted complete.
  - Category and published: updated only when the form carries the key.
  - Image: a new upload replaces the stored one; no upload keeps the
    existing image. The old object is removed best-effort only after the
    document replace succeeds, so a failed write never strands the stored
    document on a deleted asset.

The modified document is then replaced atomically.
*/
func (s *Service) Update(ctx context.Context, id string, form content.Form, image *assets.File) (View, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return View{}, err
	}

	submitted, err := assembleTranslations(form)
	if err != nil {
		return View{}, err
	}
	for language, bundle := range submitted {
		post.Translations[language] = bundle
	}

	if form.Has(FieldCategory) {
		post.Category = form.Invariant(FieldCategory)
	}
	if form.Has(FieldPublished) {
		post.Published = form.Flag(FieldPublished)
	}

	var previousImage string
	if image != nil {
		url, err := s.assets.Upload(ctx, assetFolder, image)
		if err != nil {
			return View{}, err
		}
		previousImage = post.ImageURL
		post.ImageURL = url
	}

	post.UpdatedAt = nowUTC()

	if err := s.repo.Replace(ctx, post); err != nil {
		return View{}, err
	}
	if previousImage != "" {
		s.removeImage(ctx, previousImage)
	}

	s.logger.InfoContext(ctx, "blog post updated", slog.String("post_id", post.ID))
	return post.Project(content.Default), nil
}

// Delete removes the article and, best-effort, its cover image.
// The database delete decides the outcome; a failing asset removal is
// logged and swallowed.
func (s *Service) Delete(ctx context.Context, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeImage(ctx, post.ImageURL)
	s.logger.InfoContext(ctx, "blog post deleted", slog.String("post_id", id))
	return nil
}

// removeImage deletes a stored cover image, logging failures without
// propagating them.
func (s *Service) removeImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.assets.Delete(ctx, url); err != nil {
		s.logger.WarnContext(ctx, "blog image cleanup failed",
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
// form. English must be complete; other languages join only when every
// sub-field is populated (all-or-nothing per language).
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
