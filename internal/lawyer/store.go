// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package lawyer

import "context"

// # Lawyer Data Access

// Repository defines the data access contract for attorney profiles.
type Repository interface {

	/*
		List returns a page of profiles sorted by display order (ascending,
		newest-first within equal order) and the total count.

		Parameters:
		  - context: context.Context
		  - activeOnly: bool (public reads hide deactivated profiles)
		  - limit, offset: int

		Returns:
		  - []*Lawyer: Slice of matching profiles
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, activeOnly bool, limit, offset int) ([]*Lawyer, int, error)

	/*
		FindByID retrieves a profile by its UUID.

		Returns:
		  - *Lawyer: Hydrated entity
		  - error: NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Lawyer, error)

	/*
		FindBySlug retrieves a profile by its frozen URL slug.

		Returns:
		  - *Lawyer: Hydrated entity
		  - error: NotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Lawyer, error)

	/*
		Create persists a new profile document.

		Returns:
		  - error: Conflict on a duplicate slug
	*/
	Create(context context.Context, lawyer *Lawyer) error

	/*
		Replace overwrites the full profile document atomically.
	*/
	Replace(context context.Context, lawyer *Lawyer) error

	/*
		Delete removes the profile document.

		Returns:
		  - error: NotFound if no document matched
	*/
	Delete(context context.Context, id string) error
}
