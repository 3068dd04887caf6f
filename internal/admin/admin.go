// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

/*
Package admin implements authentication and account management for CMS
operators.

There is no public registration: operator accounts are seeded at startup
from configuration. Login exchanges email and password for a signed
access token which the admin panel supplies on every write request. A
Redis-backed counter throttles repeated failed logins per client IP.
*/
package admin

import "time"

// # Core Entities

// User is one CMS operator account.
type User struct {
	ID           string    `bson:"_id" json:"id"` // UUIDv7
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// # Request Payloads

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the successful login response payload.
type LoginResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// ChangePasswordInput is the password change request body.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
