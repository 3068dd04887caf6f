// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package content

import (
	"net/url"
	"strings"
)

// # Flat-Form Reassembly

// Form reads language-suffixed fields out of a parsed multipart or
// urlencoded form.
//
// Field naming convention (fixed by the admin panel):
//
//	<field>_<lang>       single text value, e.g. title_en, title_ta
//	<listField>_<lang>   repeated values, one per occurrence, in order
//	<field>              language-invariant value, e.g. category, order
type Form struct {
	values url.Values
}

// NewForm wraps already-parsed form values.
func NewForm(values url.Values) Form {
	return Form{values: values}
}

// Value returns the trimmed single value of a language-suffixed field.
func (form Form) Value(field string, language Language) string {
	return strings.TrimSpace(form.values.Get(suffixed(field, language)))
}

// Values returns the repeated values of a language-suffixed list field,
// trimmed, with empty entries dropped and submission order preserved.
func (form Form) Values(field string, language Language) []string {
	raw := form.values[suffixed(field, language)]
	if len(raw) == 0 {
		return nil
	}

	values := make([]string, 0, len(raw))
	for _, entry := range raw {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	if len(values) == 0 {
		return nil
	}
	return values
}

// Invariant returns the trimmed value of a language-independent field.
func (form Form) Invariant(field string) string {
	return strings.TrimSpace(form.values.Get(field))
}

// Flag parses a language-independent boolean field ("true", "1", "on").
func (form Form) Flag(field string) bool {
	switch strings.ToLower(form.Invariant(field)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

// Has reports whether the language-independent field key is present at all,
// even with an empty value. Used to distinguish "clear this field" from
// "leave it untouched" on updates.
func (form Form) Has(field string) bool {
	_, present := form.values[field]
	return present
}

// # List Field Collection

// HasListField reports whether the request carries the list field for ANY
// language, even with no remaining non-empty values.
//
// Presence is the destructive-replace trigger: when an update submits a list
// field, the stored collection is wholesale-replaced for all languages, and
// languages absent from the request are discarded. Callers must therefore
// resubmit every language's values on every list-field update.
func (form Form) HasListField(field string) bool {
	for _, language := range All {
		if _, present := form.values[suffixed(field, language)]; present {
			return true
		}
	}
	return false
}

// CollectList gathers the submitted values of a list field across all
// languages into the storage shape. Languages with no non-empty values are
// omitted entirely.
func (form Form) CollectList(field string) Lists {
	lists := Lists{}
	for _, language := range All {
		if values := form.Values(field, language); values != nil {
			lists[language] = values
		}
	}
	return lists
}

// suffixed joins a field name with its language code (title + en → title_en).
func suffixed(field string, language Language) string {
	return field + "_" + string(language)
}
