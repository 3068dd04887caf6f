// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package blog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilupul/lexora/internal/blog"
	"github.com/nilupul/lexora/internal/content"
	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/assets"
	"github.com/nilupul/lexora/pkg/pagination"
)

// # Test Doubles

// memoryRepository is an in-memory blog.Repository.
type memoryRepository struct {
	posts      map[string]*blog.Post
	replaceErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{posts: map[string]*blog.Post{}}
}

func (r *memoryRepository) List(_ context.Context, publishedOnly bool, limit, offset int) ([]*blog.Post, int, error) {
	matches := []*blog.Post{}
	for _, post := range r.posts {
		if publishedOnly && !post.Published {
			continue
		}
		matches = append(matches, post)
	}
	total := len(matches)
	if offset > len(matches) {
		offset = len(matches)
	}
	matches = matches[offset:]
	if limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, total, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*blog.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, apperr.NotFound("Blog post")
	}
	// Return a deep copy so callers mutating the result do not alias the
	// stored document, matching the real store's decode-per-read semantics.
	clone := *post
	clone.Translations = make(map[content.Language]blog.Translation, len(post.Translations))
	for language, translation := range post.Translations {
		clone.Translations[language] = translation
	}
	return &clone, nil
}

func (r *memoryRepository) Create(_ context.Context, post *blog.Post) error {
	r.posts[post.ID] = post
	return nil
}

func (r *memoryRepository) Replace(_ context.Context, post *blog.Post) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	if _, ok := r.posts[post.ID]; !ok {
		return apperr.NotFound("Blog post")
	}
	r.posts[post.ID] = post
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return apperr.NotFound("Blog post")
	}
	delete(r.posts, id)
	return nil
}

// fakeAssetStore records uploads and deletions.
type fakeAssetStore struct {
	uploads   []string
	deletions []string
	uploadErr error
	deleteErr error
}

func (s *fakeAssetStore) Upload(_ context.Context, folder string, file *assets.File) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	url := "https://cdn.lexora.lk/" + folder + "/" + file.Name
	s.uploads = append(s.uploads, url)
	return url, nil
}

func (s *fakeAssetStore) Delete(_ context.Context, publicURL string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletions = append(s.deletions, publicURL)
	return nil
}

func newService(repo *memoryRepository, store *fakeAssetStore) *blog.Service {
	return blog.NewService(repo, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// # Tests

/*
TestBlog_Create_RequiresEnglish verifies that a form without a complete
English bundle is rejected before anything is persisted or uploaded.
*/
func TestBlog_Create_RequiresEnglish(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeAssetStore{}
	service := newService(repo, store)

	form := content.NewForm(url.Values{
		"title_en": {"Hello"},
		// description_en missing
	})

	_, err := service.Create(context.Background(), form, &assets.File{Name: "x.jpg", Body: strings.NewReader("img")})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repo.posts)
	assert.Empty(t, store.uploads)
}

/*
TestBlog_Create_RoundTrip verifies that an English-only article reads back
identically in English, and that Tamil reads fall back to the English text.
*/
func TestBlog_Create_RoundTrip(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo, &fakeAssetStore{})

	form := content.NewForm(url.Values{
		"title_en":       {"Hello"},
		"description_en": {"World"},
		"category":       {"news"},
		"published":      {"true"},
	})

	created, err := service.Create(context.Background(), form, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello", created.Title)
	assert.Equal(t, "World", created.Description)
	assert.Equal(t, "news", created.Category)
	assert.True(t, created.Published)

	tamil, err := service.Get(context.Background(), created.ID, content.Tamil, false)
	require.NoError(t, err)
	assert.Equal(t, "Hello", tamil.Title)
	assert.Equal(t, "World", tamil.Description)
}

/*
TestBlog_Create_DropsPartialTranslation verifies all-or-nothing bundling:
a Tamil title without a Tamil description is not saved.
*/
func TestBlog_Create_DropsPartialTranslation(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo, &fakeAssetStore{})

	form := content.NewForm(url.Values{
		"title_en":       {"Hello"},
		"description_en": {"World"},
		"title_ta":       {"Vanakkam"},
		// description_ta missing: bundle incomplete
	})

	created, err := service.Create(context.Background(), form, nil)
	require.NoError(t, err)

	post, err := service.GetRaw(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Contains(t, post.Translations, content.English)
	assert.NotContains(t, post.Translations, content.Tamil)
}

/*
TestBlog_Update_PreservesAbsentLanguages verifies that updating with only
English fields leaves stored Tamil content intact, and that invariant
fields without a form key keep their values.
*/
func TestBlog_Update_PreservesAbsentLanguages(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo, &fakeAssetStore{})

	created, err := service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Hello"},
		"description_en": {"World"},
		"title_ta":       {"Vanakkam"},
		"description_ta": {"Ulagam"},
		"category":       {"news"},
	}), nil)
	require.NoError(t, err)

	_, err = service.Update(context.Background(), created.ID, content.NewForm(url.Values{
		"title_en":       {"Hello v2"},
		"description_en": {"World v2"},
	}), nil)
	require.NoError(t, err)

	post, err := service.GetRaw(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello v2", post.Translations[content.English].Title)
	assert.Equal(t, "Vanakkam", post.Translations[content.Tamil].Title)
	assert.Equal(t, "news", post.Category)
}

/*
TestBlog_Update_ReplacesImage verifies that a new upload swaps the cover
image and removes the previous object.
*/
func TestBlog_Update_ReplacesImage(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeAssetStore{}
	service := newService(repo, store)

	created, err := service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Hello"},
		"description_en": {"World"},
	}), &assets.File{Name: "old.jpg", Body: strings.NewReader("a")})
	require.NoError(t, err)
	require.Len(t, store.uploads, 1)

	updated, err := service.Update(context.Background(), created.ID,
		content.NewForm(url.Values{
			"title_en":       {"Hello"},
			"description_en": {"World"},
		}),
		&assets.File{Name: "new.jpg", Body: strings.NewReader("b")})
	require.NoError(t, err)

	assert.Contains(t, updated.ImageURL, "new.jpg")
	assert.Equal(t, []string{store.uploads[0]}, store.deletions)
}

/*
TestBlog_Delete_SurvivesAssetFailure verifies that a failing asset store
never blocks a delete: the document is removed and the error swallowed.
*/
func TestBlog_Delete_SurvivesAssetFailure(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeAssetStore{}
	service := newService(repo, store)

	created, err := service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Hello"},
		"description_en": {"World"},
	}), &assets.File{Name: "cover.jpg", Body: strings.NewReader("a")})
	require.NoError(t, err)

	store.deleteErr = errors.New("s3 unavailable")

	require.NoError(t, service.Delete(context.Background(), created.ID))

	_, err = service.Get(context.Background(), created.ID, content.English, false)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestBlog_Get_PublicHidesDrafts verifies that a draft cannot be fetched
through the published-only read path even at its known ID, while the
unfiltered read still sees it.
*/
func TestBlog_Get_PublicHidesDrafts(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo, &fakeAssetStore{})

	created, err := service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Draft"},
		"description_en": {"Not yet"},
	}), nil)
	require.NoError(t, err)

	_, err = service.Get(context.Background(), created.ID, content.English, true)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	unfiltered, err := service.Get(context.Background(), created.ID, content.English, false)
	require.NoError(t, err)
	assert.Equal(t, "Draft", unfiltered.Title)
}

/*
TestBlog_Update_KeepsOldImageOnReplaceFailure verifies that a failed
document replace leaves the previous cover image untouched in the asset
store, so the stored document never points at a deleted object.
*/
func TestBlog_Update_KeepsOldImageOnReplaceFailure(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeAssetStore{}
	service := newService(repo, store)

	created, err := service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Hello"},
		"description_en": {"World"},
	}), &assets.File{Name: "old.jpg", Body: strings.NewReader("a")})
	require.NoError(t, err)

	repo.replaceErr = errors.New("write conflict")

	_, err = service.Update(context.Background(), created.ID,
		content.NewForm(url.Values{
			"title_en":       {"Hello"},
			"description_en": {"World"},
		}),
		&assets.File{Name: "new.jpg", Body: strings.NewReader("b")})
	require.Error(t, err)

	assert.Empty(t, store.deletions)

	post, err := service.GetRaw(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Contains(t, post.ImageURL, "old.jpg")
}

/*
TestBlog_List_FiltersDrafts verifies that public listing excludes drafts
while the admin listing includes them.
*/
func TestBlog_List_FiltersDrafts(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo, &fakeAssetStore{})

	_, err := service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Published"},
		"description_en": {"Yes"},
		"published":      {"true"},
	}), nil)
	require.NoError(t, err)

	_, err = service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Draft"},
		"description_en": {"No"},
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
