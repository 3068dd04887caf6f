// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package blog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilupul/lexora/internal/blog"
	"github.com/nilupul/lexora/internal/content"
)

// buildHandler wires a blog handler onto in-memory fakes.
func buildHandler(repo *memoryRepository, store *fakeAssetStore) *blog.Handler {
	service := blog.NewService(repo, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return blog.NewHandler(service)
}

/*
TestBlogHTTP_PublicList verifies the paginated public listing: drafts are
hidden and the lang parameter drives projection.
*/
func TestBlogHTTP_PublicList(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeAssetStore{}
	handler := buildHandler(repo, store)

	service := blog.NewService(repo, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Hello"},
		"description_en": {"World"},
		"title_ta":       {"Vanakkam"},
		"description_ta": {"Ulagam"},
		"published":      {"true"},
	}), nil)
	require.NoError(t, err)
	_, err = service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Draft"},
		"description_en": {"Hidden"},
	}), nil)
	require.NoError(t, err)

	server := httptest.NewServer(handler.Routes())
	defer server.Close()

	response, err := http.Get(server.URL + "/?lang=ta")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)

	var envelope struct {
		Data []blog.View `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))

	require.Len(t, envelope.Data, 1)
	assert.Equal(t, 1, envelope.Meta.Total)
	assert.Equal(t, "Vanakkam", envelope.Data[0].Title)
}

/*
TestBlogHTTP_GetNotFound verifies the 404 envelope for unknown articles.
*/
func TestBlogHTTP_GetNotFound(t *testing.T) {
	handler := buildHandler(newMemoryRepository(), &fakeAssetStore{})

	server := httptest.NewServer(handler.Routes())
	defer server.Close()

	response, err := http.Get(server.URL + "/00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusNotFound, response.StatusCode)

	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

/*
TestBlogHTTP_PublicGetHidesDrafts verifies that a draft returns 404 on the
public route even when its ID is known, while the admin raw read serves it.
*/
func TestBlogHTTP_PublicGetHidesDrafts(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeAssetStore{}
	handler := buildHandler(repo, store)

	service := blog.NewService(repo, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	created, err := service.Create(context.Background(), content.NewForm(url.Values{
		"title_en":       {"Draft"},
		"description_en": {"Hidden"},
	}), nil)
	require.NoError(t, err)

	public := httptest.NewServer(handler.Routes())
	defer public.Close()

	response, err := http.Get(public.URL + "/" + created.ID)
	require.NoError(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusNotFound, response.StatusCode)

	admin := httptest.NewServer(handler.AdminRoutes())
	defer admin.Close()

	raw, err := http.Get(admin.URL + "/" + created.ID)
	require.NoError(t, err)
	defer raw.Body.Close()
	assert.Equal(t, http.StatusOK, raw.StatusCode)
}

/*
TestBlogHTTP_AdminCreateMultipart verifies the flat multipart write path
end to end: language-suffixed text fields plus an image part.
*/
func TestBlogHTTP_AdminCreateMultipart(t *testing.T) {
	repo := newMemoryRepository()
	store := &fakeAssetStore{}
	handler := buildHandler(repo, store)

	server := httptest.NewServer(handler.AdminRoutes())
	defer server.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title_en", "Hello"))
	require.NoError(t, writer.WriteField("description_en", "World"))
	require.NoError(t, writer.WriteField("category", "news"))
	part, err := writer.CreateFormFile("image", "cover.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	response, err := http.Post(server.URL+"/", writer.FormDataContentType(), body)
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusCreated, response.StatusCode)

	var envelope struct {
		Data blog.View `json:"data"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))

	assert.Equal(t, "Hello", envelope.Data.Title)
	assert.Contains(t, envelope.Data.ImageURL, "cover.jpg")
	assert.Len(t, repo.posts, 1)
	assert.Len(t, store.uploads, 1)
}
