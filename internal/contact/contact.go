// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

/*
Package contact handles visitor enquiries submitted through the site's
contact form.

Submissions are the only user-generated content in the system. They are
not translated: each record stores exactly what the visitor typed, and the
admin panel works through an unread/read flag.
*/
package contact

import "time"

// # Core Entities

// Submission is one visitor enquiry.
type Submission struct {
	ID        string    `bson:"_id" json:"id"` // UUIDv7
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	IsRead    bool      `bson:"is_read" json:"is_read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Input is the public contact form payload.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
