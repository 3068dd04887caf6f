// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nilupul/lexora/internal/platform/middleware"
	requestutil "github.com/nilupul/lexora/internal/platform/request"
	"github.com/nilupul/lexora/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for operator authentication.
type Handler struct {
	service *Service
}

// NewHandler constructs a new admin [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// LoginRoutes returns the unauthenticated login endpoint. It is the only
// admin route mounted outside the token middleware.
func (handler *Handler) LoginRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.login)

	return router
}

// AccountRoutes returns the token-protected account endpoints.
func (handler *Handler) AccountRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.changePassword)

	return router
}

// # Endpoints

/*
POST /api/v1/admin/login.

Description: Exchanges operator credentials for a signed access token.

Request (Body):
  - { "email", "password" }

Response:
  - 200: LoginResult: Token and operator email
  - 400: 400: ErrValidation: Missing credentials
  - 401: 401: ErrUnauthorized: Invalid email or password
  - 429: 429: ErrRateLimited: Too many failed attempts from this IP
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), input, middleware.RealIP(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/admin/password.

Description: Rotates the authenticated operator's password.

Request (Body):
  - { "current_password", "new_password" }

Response:
  - 204: No Content: Success
  - 400: 400: ErrValidation: New password too short
  - 401: 401: ErrUnauthorized: Current password incorrect
*/
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ChangePasswordInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ChangePassword(request.Context(), claims.UserID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
