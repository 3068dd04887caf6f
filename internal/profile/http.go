// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nilupul/lexora/internal/content"
	requestutil "github.com/nilupul/lexora/internal/platform/request"
	"github.com/nilupul/lexora/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the firm profile.
type Handler struct {
	service *Service
}

// NewHandler constructs a new profile [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public, read-only profile endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.get)

	return router
}

// AdminRoutes returns the token-protected read/write endpoints.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getRaw)
	router.Put("/", handler.save)

	return router
}

// # Public Endpoints

/*
GET /api/v1/profile.

Description: Retrieves the firm profile projected into the requested
language.

Request:
  - lang: string (en, ta, si; defaults to en)

Response:
  - 200: View: Success
  - 404: 404: ErrNotFound: No profile has been saved yet
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	language := content.Parse(request.URL.Query().Get("lang"))

	view, err := handler.service.Get(request.Context(), language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

// # Admin Endpoints

/*
GET /api/v1/admin/profile.

Description: Retrieves the full multilingual profile document for the
admin edit form.

Response:
  - 200: Profile: Success
  - 404: 404: ErrNotFound: No profile has been saved yet
*/
func (handler *Handler) getRaw(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.GetRaw(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

/*
PUT /api/v1/admin/profile.

Description: Creates or replaces the firm profile from a flat multipart
form with language-suffixed fields (fullName_en, about_ta, ...), contact
invariants, and an optional "image" file part.

Response:
  - 200: View: Saved profile (English projection)
  - 400: 400: ErrValidation: English bundle incomplete or invalid links
  - 401: 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	values, image, err := requestutil.MultipartForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Save(request.Context(), content.NewForm(values), image)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}
