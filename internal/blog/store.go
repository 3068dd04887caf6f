// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package blog

import "context"

// # Blog Data Access

// Repository defines the data access contract for blog articles.
type Repository interface {

	/*
		List returns a page of articles sorted newest-first and the total count.

		Parameters:
		  - context: context.Context
		  - publishedOnly: bool (public reads filter drafts; admin reads do not)
		  - limit, offset: int

		Returns:
		  - []*Post: Slice of matching articles
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, publishedOnly bool, limit, offset int) ([]*Post, int, error)

	/*
		FindByID retrieves an article by its UUID.

		Returns:
		  - *Post: Hydrated entity
		  - error: NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Post, error)

	/*
		Create persists a new article document.
	*/
	Create(context context.Context, post *Post) error

	/*
		Replace overwrites the full article document atomically.

		The document-level replace is the only consistency guarantee:
		concurrent edits race and the last write wins.
	*/
	Replace(context context.Context, post *Post) error

	/*
		Delete removes the article document.

		Returns:
		  - error: NotFound if no document matched
	*/
	Delete(context context.Context, id string) error
}
