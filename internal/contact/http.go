// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nilupul/lexora/internal/platform/request"
	"github.com/nilupul/lexora/internal/platform/respond"
	"github.com/nilupul/lexora/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for enquiry submissions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new contact [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public submission endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.submit)

	return router
}

// AdminRoutes returns the token-protected inbox endpoints.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}/read", handler.markRead)
	router.Delete("/{id}", handler.delete)

	return router
}

// # Public Endpoints

/*
POST /api/v1/contact.

Description: Accepts a visitor enquiry from the public contact form.

Request (Body):
  - { "name", "email", "subject", "message" }

Response:
  - 201: Submission: Stored enquiry
  - 400: 400: ErrValidation: Missing name/email/message or invalid email
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	submission, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, submission)
}

// # Admin Endpoints

/*
GET /api/v1/admin/contact.

Description: Retrieves a paginated list of enquiries, newest first.

Request:
  - unread: bool (only unread submissions)
  - limit: int
  - page: int

Response:
  - 200: []Submission: Paginated list
  - 401: 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	unreadOnly := request.URL.Query().Get("unread") == "true"

	submissions, meta, err := handler.service.List(request.Context(), unreadOnly, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, submissions, meta)
}

/*
GET /api/v1/admin/contact/{id}.

Description: Retrieves one enquiry.

Response:
  - 200: Submission: Success
  - 404: 404: ErrNotFound: Submission not found
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	submission, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, submission)
}

/*
PATCH /api/v1/admin/contact/{id}/read.

Description: Marks an enquiry as read.

Response:
  - 204: No Content: Success
  - 404: 404: ErrNotFound: Submission not found
*/
func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.MarkRead(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
DELETE /api/v1/admin/contact/{id}.

Description: Deletes an enquiry.

Response:
  - 204: No Content: Success
  - 404: 404: ErrNotFound: Submission not found
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
