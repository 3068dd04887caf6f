// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body/form decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/assets"
	"github.com/nilupul/lexora/internal/platform/constants"
	"github.com/nilupul/lexora/internal/platform/ctxutil"
	"github.com/nilupul/lexora/internal/platform/sec"
	"github.com/nilupul/lexora/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter (UUID/Slug) from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
MultipartForm parses the request as a multipart form and returns the text
field values plus the optional image file part.

Returns:
  - url.Values: All text fields (language-suffixed and invariant)
  - *assets.File: The image part, or nil when the request carries none
  - error: validate.ErrInvalidForm if parsing fails

The returned [assets.File] body is backed by the request and must be consumed
before the handler returns.
*/
func MultipartForm(request *http.Request) (url.Values, *assets.File, error) {
	if err := request.ParseMultipartForm(constants.MaxUploadMemory); err != nil {
		return nil, nil, validate.ErrInvalidForm
	}

	values := url.Values(request.MultipartForm.Value)

	file, header, err := request.FormFile(constants.UploadFieldImage)
	if err != nil {
		// No image part: valid for text-only updates.
		return values, nil, nil
	}

	return values, &assets.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, nil
}

/*
Claims extracts the authenticated admin claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the admin claims.

Returns:
  - *sec.AuthClaims: The authenticated admin claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {

	// Get admin claims
	claims := ctxutil.GetAuthUser(request.Context())

	// If the operator is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}
