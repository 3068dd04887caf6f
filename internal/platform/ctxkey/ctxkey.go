// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

// Package ctxkey defines the typed keys used to store values in [context.Context].
//
// # Why a dedicated package?
//
// Context keys must be unexported custom types to avoid collisions. Centralizing
// them here lets middleware, handlers, and the respond package agree on the same
// keys without import cycles.
package ctxkey

// Key is the private type for all Lexora context keys.
type Key int

const (
	// KeyRequestID stores the per-request correlation ID (string).
	KeyRequestID Key = iota

	// KeyLogger stores the request-scoped *slog.Logger.
	KeyLogger

	// KeyUser stores the authenticated admin claims (*sec.AuthClaims).
	KeyUser
)
