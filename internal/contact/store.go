// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package contact

import "context"

// # Contact Data Access

// Repository defines the data access contract for enquiry submissions.
type Repository interface {

	/*
		List returns a page of submissions sorted newest-first and the
		total count.

		Parameters:
		  - context: context.Context
		  - unreadOnly: bool (admin inbox filter)
		  - limit, offset: int

		Returns:
		  - []*Submission: Slice of matching submissions
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, unreadOnly bool, limit, offset int) ([]*Submission, int, error)

	/*
		FindByID retrieves a submission by its UUID.
	*/
	FindByID(context context.Context, id string) (*Submission, error)

	/*
		Create persists a new submission.
	*/
	Create(context context.Context, submission *Submission) error

	/*
		MarkRead flips the read flag of a submission.

		Returns:
		  - error: NotFound if no document matched
	*/
	MarkRead(context context.Context, id string) error

	/*
		Delete removes the submission.

		Returns:
		  - error: NotFound if no document matched
	*/
	Delete(context context.Context, id string) error
}
