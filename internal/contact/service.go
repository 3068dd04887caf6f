// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/nilupul/lexora/internal/platform/validate"
	"github.com/nilupul/lexora/pkg/pagination"
	"github.com/nilupul/lexora/pkg/uuidv7"
)

// Service implements the business logic for enquiry submissions.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a contact service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Submit validates and persists a visitor enquiry.
func (s *Service) Submit(ctx context.Context, input Input) (*Submission, error) {
	v := &validate.Validator{}
	v.Required("name", input.Name).MaxLen("name", input.Name, 200).
		Required("email", input.Email).
		Required("message", input.Message).MaxLen("message", input.Message, 5000).
		MaxLen("subject", input.Subject, 300)
	if input.Email != "" {
		v.Email("email", input.Email)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	submission := &Submission{
		ID:        uuidv7.New(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "contact submission received", slog.String("submission_id", submission.ID))
	return submission, nil
}

// List returns a page of submissions for the admin inbox, newest first.
func (s *Service) List(ctx context.Context, unreadOnly bool, params pagination.Params) ([]*Submission, pagination.Meta, error) {
	submissions, total, err := s.repo.List(ctx, unreadOnly, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return submissions, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Get returns one submission.
func (s *Service) Get(ctx context.Context, id string) (*Submission, error) {
	return s.repo.FindByID(ctx, id)
}

// MarkRead flags a submission as handled.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

// Delete removes a submission.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
