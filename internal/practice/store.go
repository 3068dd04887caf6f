// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package practice

import "context"

// # Practice Data Access

// Repository defines the data access contract for practice areas.
type Repository interface {

	/*
		List returns a page of practice areas sorted by display order and
		the total count.

		Parameters:
		  - context: context.Context
		  - activeOnly: bool (public reads hide deactivated areas)
		  - limit, offset: int

		Returns:
		  - []*Practice: Slice of matching areas
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, activeOnly bool, limit, offset int) ([]*Practice, int, error)

	/*
		FindByID retrieves a practice area by its UUID.
	*/
	FindByID(context context.Context, id string) (*Practice, error)

	/*
		Create persists a new practice area document.
	*/
	Create(context context.Context, practice *Practice) error

	/*
		Replace overwrites the full practice area document atomically.
	*/
	Replace(context context.Context, practice *Practice) error

	/*
		Delete removes the practice area document.
	*/
	Delete(context context.Context, id string) error
}
