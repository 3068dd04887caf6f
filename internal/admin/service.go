// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package admin

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/nilupul/lexora/internal/platform/apperr"
	"github.com/nilupul/lexora/internal/platform/constants"
	"github.com/nilupul/lexora/internal/platform/dberr"
	"github.com/nilupul/lexora/internal/platform/sec"
	"github.com/nilupul/lexora/internal/platform/validate"
	"github.com/nilupul/lexora/pkg/uuidv7"
)

// minPasswordLength is the minimum operator password length.
const minPasswordLength = 8

// TokenIssuer signs admin access tokens.
type TokenIssuer interface {
	GenerateAccessToken(userID, email string, timeToLive time.Duration) (string, error)
}

// Throttle guards the login endpoint against brute-force attempts.
type Throttle interface {
	Check(context context.Context, clientIP string) error
	RecordFailure(context context.Context, clientIP string)
	Reset(context context.Context, clientIP string)
}

// Service implements authentication and account management for operators.
type Service struct {
	repo     Repository
	tokens   TokenIssuer
	throttle Throttle
	logger   *slog.Logger
}

// NewService creates an admin service.
func NewService(repo Repository, tokens TokenIssuer, throttle Throttle, logger *slog.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, throttle: throttle, logger: logger}
}

// # Authentication

/*
Login exchanges operator credentials for a signed access token.

Failed attempts count against a per-IP budget; once spent, further
attempts from that IP are rejected until the window expires. A wrong
email and a wrong password produce the same error so the endpoint leaks
nothing about which accounts exist.
*/
func (s *Service) Login(ctx context.Context, input LoginInput, clientIP string) (*LoginResult, error) {
	if err := s.throttle.Check(ctx, clientIP); err != nil {
		return nil, err
	}

	v := &validate.Validator{}
	v.Required("email", input.Email).Required("password", input.Password)
	if err := v.Err(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			s.throttle.RecordFailure(ctx, clientIP)
			return nil, apperr.Unauthorized("Invalid email or password")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		s.throttle.RecordFailure(ctx, clientIP)
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.throttle.Reset(ctx, clientIP)
	s.logger.InfoContext(ctx, "admin login", slog.String("user_id", user.ID))

	return &LoginResult{Token: token, Email: user.Email}, nil
}

// ChangePassword rotates the operator's password after verifying the
// current one.
func (s *Service) ChangePassword(ctx context.Context, userID string, input ChangePasswordInput) error {
	v := &validate.Validator{}
	v.Required("current_password", input.CurrentPassword).
		Required("new_password", input.NewPassword).
		MinLen("new_password", input.NewPassword, minPasswordLength)
	if err := v.Err(); err != nil {
		return err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(input.CurrentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hash, err := sec.HashPassword(input.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "admin password changed", slog.String("user_id", user.ID))
	return nil
}

// # Seeding

/*
Seed ensures the configured operator account exists.

Called once at startup. When the account already exists nothing happens,
so redeploys never reset a rotated password. Empty configuration skips
seeding entirely (some environments provision accounts out of band).
*/
func (s *Service) Seed(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		s.logger.InfoContext(ctx, "admin seed skipped, no credentials configured")
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, dberr.ErrNotFound) {
		return err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &User{
		ID:           uuidv7.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "admin account seeded", slog.String("email", email))
	return nil
}
