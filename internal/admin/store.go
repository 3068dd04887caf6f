// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package admin

import "context"

// # Admin Data Access

// Repository defines the data access contract for operator accounts.
type Repository interface {

	/*
		FindByEmail retrieves an operator account by email.

		Returns:
		  - *User: Hydrated entity
		  - error: NotFound if missing
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByID retrieves an operator account by UUID.
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		Create persists a new operator account.

		Returns:
		  - error: Conflict on a duplicate email
	*/
	Create(context context.Context, user *User) error

	/*
		UpdatePassword stores a new password hash for the operator.

		Returns:
		  - error: NotFound if no account matched
	*/
	UpdatePassword(context context.Context, id, passwordHash string) error
}
