// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package lawyer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nilupul/lexora/internal/content"
	requestutil "github.com/nilupul/lexora/internal/platform/request"
	"github.com/nilupul/lexora/internal/platform/respond"
	"github.com/nilupul/lexora/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for attorney profile operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new lawyer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public, read-only team endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listActive)
	router.Get("/{identifier}", handler.getActive)

	return router
}

// AdminRoutes returns the token-protected CRUD endpoints.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAll)
	router.Get("/{identifier}", handler.getRaw)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

// # Public Endpoints

/*
GET /api/v1/lawyers.

Description: Retrieves a paginated list of active attorney profiles,
sorted by display order and projected into the requested language.

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
GET /api/v1/lawyers/{identifier}.

Description: Retrieves one active attorney profile by UUID or frozen slug,
projected into the requested language. Deactivated profiles are not
publicly retrievable.

Request:
  - identifier: string (UUID or slug)
  - lang: string (en, ta, si; defaults to en)

Response:
  - 200: View: Success
  - 404: 404: ErrNotFound: Profile not found or deactivated
*/
func (handler *Handler) getActive(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")
	language := content.Parse(request.URL.Query().Get("lang"))

	view, err := handler.service.Get(request.Context(), identifier, language, true)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

// # Admin Endpoints

/*
GET /api/v1/admin/lawyers.

Description: Retrieves a paginated list of ALL profiles, deactivated ones
included, for the admin panel.

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
GET /api/v1/admin/lawyers/{identifier}.

Description: Retrieves the full multilingual document so the admin edit
form can populate every language's fields and lists.

Response:
  - 200: Lawyer: Success
  - 404: 404: ErrNotFound: Profile not found
*/
func (handler *Handler) getRaw(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	lawyer, err := handler.service.GetRaw(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lawyer)
}

/*
POST /api/v1/admin/lawyers.

Description: Creates an attorney profile from a flat multipart form.
Text fields are language-suffixed (name_en, title_ta, ...); list fields
repeat per value (locations_en=Colombo&locations_en=Jaffna); an optional
"image" file part becomes the portrait.

Response:
  - 201: View: Created profile (English projection)
  - 400: 400: ErrValidation: English name/title/description missing
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
PUT /api/v1/admin/lawyers/{id}.

Description: Updates a profile from a flat multipart form. Submitting any
language key of a list field replaces that field's stored lists for ALL
languages, so the form must resubmit every language's values. The slug
never changes.

Response:
  - 200: View: Updated profile (English projection)
  - 400: 400: ErrValidation: English name/title/description missing
  - 404: 404: ErrNotFound: Profile not found
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
DELETE /api/v1/admin/lawyers/{id}.

Description: Deletes a profile and its stored portrait.

Response:
  - 204: No Content: Success
  - 404: 404: ErrNotFound: Profile not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
