// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package practice_test

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilupul/lexora/internal/content"
	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/assets"
	"github.com/nilupul/lexora/internal/practice"
	"github.com/nilupul/lexora/pkg/pagination"
)

// # Test Doubles

// memoryRepository is an in-memory practice.Repository.
type memoryRepository struct {
	practices map[string]*practice.Practice
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{practices: map[string]*practice.Practice{}}
}

func (r *memoryRepository) List(_ context.Context, activeOnly bool, limit, offset int) ([]*practice.Practice, int, error) {
	matches := []*practice.Practice{}
	for _, entry := range r.practices {
		if activeOnly && !entry.Active {
			continue
		}
		matches = append(matches, entry)
	}
	return matches, len(matches), nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*practice.Practice, error) {
	entry, ok := r.practices[id]
	if !ok {
		return nil, apperr.NotFound("Practice area")
	}
	return entry, nil
}

func (r *memoryRepository) Create(_ context.Context, entry *practice.Practice) error {
	r.practices[entry.ID] = entry
	return nil
}

func (r *memoryRepository) Replace(_ context.Context, entry *practice.Practice) error {
	if _, ok := r.practices[entry.ID]; !ok {
		return apperr.NotFound("Practice area")
	}
	r.practices[entry.ID] = entry
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.practices[id]; !ok {
		return apperr.NotFound("Practice area")
	}
	delete(r.practices, id)
	return nil
}

// nopAssetStore satisfies assets.Store for tests without uploads.
type nopAssetStore struct{}

func (nopAssetStore) Upload(_ context.Context, folder string, file *assets.File) (string, error) {
	return "https://cdn.lexora.lk/" + folder + "/" + file.Name, nil
}

func (nopAssetStore) Delete(context.Context, string) error { return nil }

func newService(repo *memoryRepository) *practice.Service {
	return practice.NewService(repo, nopAssetStore{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// # Tests

/*
TestPractice_Get_PublicHidesInactive verifies that a deactivated practice
area is not retrievable through the active-only read path even at its
known ID, while the unfiltered read still sees it.
*/
func TestPractice_Get_PublicHidesInactive(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	created, err := service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Family Law"},
		"description_en": {"Divorce, custody, maintenance."},
	}), nil)
	require.NoError(t, err)

	_, err = service.Get(context.Background(), created.ID, content.English, true)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	unfiltered, err := service.Get(context.Background(), created.ID, content.English, false)
	require.NoError(t, err)
	assert.Equal(t, "Family Law", unfiltered.Title)
}

/*
TestPractice_List_FiltersInactive verifies that the public listing excludes
deactivated areas while the admin listing includes them.
*/
func TestPractice_List_FiltersInactive(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	_, err := service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Family Law"},
		"description_en": {"Divorce, custody, maintenance."},
		"active":         {"true"},
	}), nil)
	require.NoError(t, err)

	_, err = service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Maritime Law"},
		"description_en": {"Retired practice."},
	}), nil)
	require.NoError(t, err)

	params := pagination.Params{Page: 1, Limit: 20}

	public, meta, err := service.List(context.Background(), content.English, true, params)
	require.NoError(t, err)
	assert.Len(t, public, 1)
	assert.Equal(t, 1, meta.Total)

	all, meta, err := service.List(context.Background(), content.English, false, params)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 2, meta.Total)
}
