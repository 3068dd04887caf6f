// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package profile

import "context"

// # Profile Data Access

// Repository defines the data access contract for the firm profile
// singleton.
type Repository interface {

	/*
		Get retrieves the singleton profile document.

		Returns:
		  - *Profile: Hydrated entity
		  - error: NotFound while no profile has been saved yet
	*/
	Get(context context.Context) (*Profile, error)

	/*
		Upsert replaces the singleton document, creating it on first save.
	*/
	Upsert(context context.Context, profile *Profile) error
}
