// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nilupul/lexora/internal/platform/ctxutil"
	"github.com/nilupul/lexora/internal/platform/middleware"
	"github.com/nilupul/lexora/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string.
type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (v *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == v.validToken {
		return v.claims, nil
	}
	return nil, errors.New("bad token")
}

// protectedEcho is a handler chain equivalent to an admin route: it
// requires auth and reports the operator email.
func protectedEcho(verifier middleware.TokenVerifier) http.Handler {
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		writer.Write([]byte(claims.Email))
	})
	return middleware.Authenticate(verifier)(middleware.RequireAuth(inner))
}

/*
TestAuthenticate_AnonymousPassesThrough verifies that requests without an
Authorization header reach public handlers with no claims attached.
*/
func TestAuthenticate_AnonymousPassesThrough(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good"}
	var seen *sec.AuthClaims
	handler := middleware.Authenticate(verifier)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, seen)
}

/*
TestRequireAuth_BlocksAnonymous verifies that protected routes reject
requests without a valid bearer token.
*/
func TestRequireAuth_BlocksAnonymous(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good", claims: &sec.AuthClaims{Email: "admin@lexora.lk"}}
	handler := protectedEcho(verifier)

	// 1. No header at all
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// 2. Malformed header
	recorder = httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "NotBearer abc")
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// 3. Invalid token
	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer forged")
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestRequireAuth_AllowsValidToken verifies the full happy path: bearer
token verified, claims injected, handler executed.
*/
func TestRequireAuth_AllowsValidToken(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good", claims: &sec.AuthClaims{Email: "admin@lexora.lk"}}
	handler := protectedEcho(verifier)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer good")
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "admin@lexora.lk", recorder.Body.String())
}
