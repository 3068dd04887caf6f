// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package lawyer_test

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilupul/lexora/internal/content"
	"github.com/nilupul/lexora/internal/lawyer"
	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/assets"
	"github.com/nilupul/lexora/pkg/uuidv7"
)

// # Test Doubles

// memoryRepository is an in-memory lawyer.Repository.
type memoryRepository struct {
	lawyers map[string]*lawyer.Lawyer
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{lawyers: map[string]*lawyer.Lawyer{}}
}

func (r *memoryRepository) List(_ context.Context, activeOnly bool, limit, offset int) ([]*lawyer.Lawyer, int, error) {
	matches := []*lawyer.Lawyer{}
	for _, entry := range r.lawyers {
		if activeOnly && !entry.Active {
			continue
		}
		matches = append(matches, entry)
	}
	return matches, len(matches), nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*lawyer.Lawyer, error) {
	entry, ok := r.lawyers[id]
	if !ok {
		return nil, apperr.NotFound("Lawyer")
	}
	return entry, nil
}

func (r *memoryRepository) FindBySlug(_ context.Context, slug string) (*lawyer.Lawyer, error) {
	for _, entry := range r.lawyers {
		if entry.Slug == slug {
			return entry, nil
		}
	}
	return nil, apperr.NotFound("Lawyer")
}

func (r *memoryRepository) Create(_ context.Context, entry *lawyer.Lawyer) error {
	r.lawyers[entry.ID] = entry
	return nil
}

func (r *memoryRepository) Replace(_ context.Context, entry *lawyer.Lawyer) error {
	if _, ok := r.lawyers[entry.ID]; !ok {
		return apperr.NotFound("Lawyer")
	}
	r.lawyers[entry.ID] = entry
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.lawyers[id]; !ok {
		return apperr.NotFound("Lawyer")
	}
	delete(r.lawyers, id)
	return nil
}

// nopAssetStore satisfies assets.Store for tests without uploads.
type nopAssetStore struct{}

func (nopAssetStore) Upload(_ context.Context, folder string, file *assets.File) (string, error) {
	return "https://cdn.lexora.lk/" + folder + "/" + file.Name, nil
}

func (nopAssetStore) Delete(context.Context, string) error { return nil }

func newService(repo *memoryRepository) *lawyer.Service {
	return lawyer.NewService(repo, nopAssetStore{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// englishForm returns the minimum valid creation form.
func englishForm(extra url.Values) url.Values {
	values := url.Values{
		"name_en":        {"Nadesan Kumar"},
		"title_en":       {"Senior Partner"},
		"description_en": {"Commercial litigation specialist."},
	}
	for key, entries := range extra {
		values[key] = entries
	}
	return values
}

// # Tests

/*
TestLawyer_Create_GeneratesSlug verifies that the slug derives from the
English name and that the profile resolves by both UUID and slug.
*/
func TestLawyer_Create_GeneratesSlug(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	created, err := service.Create(context.Background(), content.NewForm(englishForm(nil)), nil)
	require.NoError(t, err)
	assert.Contains(t, created.Slug, "nadesan-kumar")

	byID, err := service.Get(context.Background(), created.ID, content.English, false)
	require.NoError(t, err)
	assert.Equal(t, created.Slug, byID.Slug)

	bySlug, err := service.Get(context.Background(), created.Slug, content.English, false)
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

/*
TestLawyer_Update_SlugFrozen verifies that renaming an attorney never
rewrites the slug, so published profile URLs stay valid.
*/
func TestLawyer_Update_SlugFrozen(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	created, err := service.Create(context.Background(), content.NewForm(englishForm(nil)), nil)
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, content.NewForm(url.Values{
		"name_en":        {"Completely Different Name"},
		"title_en":       {"Senior Partner"},
		"description_en": {"Commercial litigation specialist."},
	}), nil)
	require.NoError(t, err)

	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, "Completely Different Name", updated.Name)
}

/*
TestLawyer_Lists_NoLanguageFallback verifies that list fields project
exactly the requested language: Tamil locations read back in Tamil, and a
language without stored values reads back empty rather than English.
*/
func TestLawyer_Lists_NoLanguageFallback(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	created, err := service.Create(context.Background(), content.NewForm(englishForm(url.Values{
		"locations_en": {"Colombo", "Jaffna"},
		"locations_ta": {"Kolumbu", "Yazhpanam"},
	})), nil)
	require.NoError(t, err)

	english, err := service.Get(context.Background(), created.ID, content.English, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Colombo", "Jaffna"}, english.Locations)

	tamil, err := service.Get(context.Background(), created.ID, content.Tamil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kolumbu", "Yazhpanam"}, tamil.Locations)

	// Text fields fall back to English, list fields do not.
	sinhala, err := service.Get(context.Background(), created.ID, content.Sinhala, false)
	require.NoError(t, err)
	assert.Equal(t, "Nadesan Kumar", sinhala.Name)
	assert.Equal(t, []string{}, sinhala.Locations)
}

/*
TestLawyer_Update_ListReplaceIsDestructive verifies that submitting a list
field for one language replaces the stored lists for ALL languages, while
omitting the field entirely preserves them.
*/
func TestLawyer_Update_ListReplaceIsDestructive(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	created, err := service.Create(context.Background(), content.NewForm(englishForm(url.Values{
		"practiceAreas_en": {"Litigation", "Conveyancing"},
		"practiceAreas_ta": {"Vazhakku"},
		"education_en":     {"LLB, University of Colombo"},
	})), nil)
	require.NoError(t, err)

	// English-only resubmission wipes the Tamil practice areas.
	_, err = service.Update(context.Background(), created.ID, content.NewForm(englishForm(url.Values{
		"practiceAreas_en": {"Litigation"},
	})), nil)
	require.NoError(t, err)

	raw, err := service.GetRaw(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Litigation"}, raw.PracticeAreas.Values(content.English))
	assert.Equal(t, []string{}, raw.PracticeAreas.Values(content.Tamil))

	// Education was absent from the form: preserved untouched.
	assert.Equal(t, []string{"LLB, University of Colombo"}, raw.Education.Values(content.English))
}

/*
TestLawyer_Update_InvariantsNeedPresence verifies that order, flags, and
contact fields change only when their keys are submitted.
*/
func TestLawyer_Update_InvariantsNeedPresence(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	created, err := service.Create(context.Background(), content.NewForm(englishForm(url.Values{
		"order":  {"5"},
		"active": {"true"},
		"phone":  {"+94 11 234 5678"},
	})), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, created.Order)
	assert.True(t, created.Active)

	updated, err := service.Update(context.Background(), created.ID, content.NewForm(englishForm(url.Values{
		"order": {"2"},
	})), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Order)
	assert.True(t, updated.Active)
	assert.Equal(t, "+94 11 234 5678", updated.Phone)
}

/*
TestLawyer_Get_PublicHidesInactive verifies that a deactivated profile is
not retrievable through the active-only read path, by ID or by slug, while
the unfiltered read still sees it.
*/
func TestLawyer_Get_PublicHidesInactive(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	created, err := service.Create(context.Background(), content.NewForm(englishForm(nil)), nil)
	require.NoError(t, err)

	_, err = service.Get(context.Background(), created.ID, content.English, true)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, err = service.Get(context.Background(), created.Slug, content.English, true)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	unfiltered, err := service.Get(context.Background(), created.ID, content.English, false)
	require.NoError(t, err)
	assert.Equal(t, "Nadesan Kumar", unfiltered.Name)
}

/*
TestLawyer_Get_ResolvesUUIDLengthSlug verifies that a slug that happens to
be exactly as long as a UUID still resolves: dispatch follows the
identifier's shape, not its length.
*/
func TestLawyer_Get_ResolvesUUIDLengthSlug(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	// 36 characters, same as a canonical UUID.
	collidingSlug := "john-smith-senior-counsel-x-mthub4ox"
	require.Len(t, collidingSlug, 36)

	entry := &lawyer.Lawyer{
		ID:     uuidv7.New(),
		Slug:   collidingSlug,
		Active: true,
		Translations: map[content.Language]lawyer.Translation{
			content.English: {Name: "John Smith", Title: "Senior Counsel X"},
		},
	}
	require.NoError(t, repo.Create(context.Background(), entry))

	found, err := service.Get(context.Background(), collidingSlug, content.English, true)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, found.ID)
	assert.Equal(t, "John Smith", found.Name)
}

/*
TestLawyer_Create_InvalidEmailRejected verifies contact email validation.
*/
func TestLawyer_Create_InvalidEmailRejected(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	_, err := service.Create(context.Background(), content.NewForm(englishForm(url.Values{
		"email": {"not-an-email"},
	})), nil)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Empty(t, repo.lawyers)
}
