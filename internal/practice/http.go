// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package practice

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nilupul/lexora/internal/content"
	requestutil "github.com/nilupul/lexora/internal/platform/request"
	"github.com/nilupul/lexora/internal/platform/respond"
	"github.com/nilupul/lexora/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for practice area operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new practice [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public, read-only practice area endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listActive)
	router.Get("/{id}", handler.getActive)

	return router
}

// AdminRoutes returns the token-protected CRUD endpoints.
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
GET /api/v1/practices.

Description: Retrieves a paginated list of active practice areas, sorted
by display order and projected into the requested language.

Request:
  - lang: string (en, ta, si; defaults to en)
  - limit: int
  - page: int

Response:
  - 200: []View: Paginated list
*/
func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
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
GET /api/v1/practices/{id}.

Description: Retrieves one active practice area projected into the
requested language. Deactivated areas are not publicly retrievable.

Response:
  - 200: View: Success
  - 404: 404: ErrNotFound: Practice area not found or deactivated
*/
func (handler *Handler) getActive(writer http.ResponseWriter, request *http.Request) {
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
GET /api/v1/admin/practices.

Description: Retrieves a paginated list of ALL practice areas for the
admin panel.

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
GET /api/v1/admin/practices/{id}.

Description: Retrieves the full multilingual document for the admin edit
form.

Response:
  - 200: Practice: Success
  - 404: 404: ErrNotFound: Practice area not found
*/
func (handler *Handler) getRaw(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	practice, err := handler.service.GetRaw(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, practice)
}

/*
POST /api/v1/admin/practices.

Description: Creates a practice area from a flat multipart form with
language-suffixed fields plus an optional "image" file part.

Response:
  - 201: View: Created practice area (English projection)
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
PUT /api/v1/admin/practices/{id}.

Description: Updates a practice area from a flat multipart form.

Response:
  - 200: View: Updated practice area (English projection)
  - 400: 400: ErrValidation: English title/description missing
  - 404: 404: ErrNotFound: Practice area not found
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
DELETE /api/v1/admin/practices/{id}.

Description: Deletes a practice area and its stored icon.

Response:
  - 204: No Content: Success
  - 404: 404: ErrNotFound: Practice area not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
