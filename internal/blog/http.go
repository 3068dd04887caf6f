// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package blog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nilupul/lexora/internal/content"
	requestutil "github.com/nilupul/lexora/internal/platform/request"
	"github.com/nilupul/lexora/internal/platform/respond"
	"github.com/nilupul/lexora/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for blog operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new blog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public, read-only blog endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPublished)
	router.Get("/{id}", handler.getPublished)

	return router
}

// AdminRoutes returns the token-protected CRUD endpoints.
// The caller mounts this behind the authentication middleware.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAll)
	router.Get("/{id}", handler.getRaw)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

// # Public Endpoints

/*
GET /api/v1/blog.

Description: Retrieves a paginated list of published articles, projected
into the requested language.

Request:
  - lang: string (en, ta, si; defaults to en)
  - limit: int
  - page: int

Response:
  - 200: []View: Paginated list
*/
func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	language := content.Parse(request.URL.Query().Get("lang"))
	params := pagination.FromRequest(request)

	views, meta, err := handler.service.List(request.Context(), language, true, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, views, meta)
}

/*
GET /api/v1/blog/{id}.

Description: Retrieves one published article projected into the requested
language. Drafts are not publicly retrievable.

Request:
  - id: string (UUID)
  - lang: string (en, ta, si; defaults to en)

Response:
  - 200: View: Success
  - 404: 404: ErrNotFound: Article not found or not published
*/
func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")
	language := content.Parse(request.URL.Query().Get("lang"))

	view, err := handler.service.Get(request.Context(), id, language, true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

// # Admin Endpoints

/*
GET /api/v1/admin/blog.

Description: Retrieves a paginated list of ALL articles, drafts included,
for the admin panel.

Response:
  - 200: []View: Paginated list
  - 401: 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	language := content.Parse(request.URL.Query().Get("lang"))
	params := pagination.FromRequest(request)

	views, meta, err := handler.service.List(request.Context(), language, false, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, views, meta)
}

/*
GET /api/v1/admin/blog/{id}.

Description: Retrieves the full multilingual document so the admin edit
form can populate every language's fields.

Response:
  - 200: Post: Success
  - 404: 404: ErrNotFound: Article not found
*/
func (handler *Handler) getRaw(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	post, err := handler.service.GetRaw(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, post)
}

/*
POST /api/v1/admin/blog.

Description: Creates an article from a flat multipart form with
language-suffixed fields (title_en, description_ta, ...) plus an
optional "image" file part.

Response:
  - 201: View: Created article (English projection)
  - 400: 400: ErrValidation: English title/description missing
  - 401: 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	values, image, err := requestutil.MultipartForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Create(request.Context(), content.NewForm(values), image)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, view)
}

/*
PUT /api/v1/admin/blog/{id}.

Description: Updates an article from a flat multipart form. Submitted
languages replace their stored bundles; absent languages are preserved.
A new "image" part replaces the cover image.

Response:
  - 200: View: Updated article (English projection)
  - 400: 400: ErrValidation: English title/description missing
  - 404: 404: ErrNotFound: Article not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	values, image, err := requestutil.MultipartForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Update(request.Context(), id, content.NewForm(values), image)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

/*
DELETE /api/v1/admin/blog/{id}.

Description: Deletes an article and its stored cover image.

Response:
  - 204: No Content: Success
  - 404: 404: ErrNotFound: Article not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
