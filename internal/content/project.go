// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package content

// # Text Projection

// Pick selects the translation bundle for the requested language.
//
// # Selection Rule
//
//  1. Exact match on the requested language.
//  2. Else the canonical default language (English).
//  3. Else the first available language in canonical order.
//
// The boolean is false only when the map holds no bundle at all; callers
// project that case to empty text fields rather than an error, so an entity
// with zero translations still serializes cleanly.
func Pick[T any](translations map[Language]T, requested Language) (T, bool) {
	if bundle, ok := translations[requested]; ok {
		return bundle, true
	}

	if bundle, ok := translations[Default]; ok {
		return bundle, true
	}

	for _, language := range All {
		if bundle, ok := translations[language]; ok {
			return bundle, true
		}
	}

	var zero T
	return zero, false
}

// # List Projection

// Lists is a multilingual ordered-list field (locations, practice areas,
// education entries). Each language owns its own ordered slice of values.
type Lists map[Language][]string

// Values returns the entries stored for exactly the requested language.
//
// Unlike text bundles, list fields never fall back to English: a missing
// translation projects to an empty list, not to another language's values.
// The result is never nil so it serializes as [] rather than null.
func (lists Lists) Values(requested Language) []string {
	values := lists[requested]
	if values == nil {
		return []string{}
	}

	// Callers receive a copy; the stored slice is never aliased.
	copied := make([]string, len(values))
	copy(copied, values)
	return copied
}

// IsEmpty reports whether no language holds any value.
func (lists Lists) IsEmpty() bool {
	for _, values := range lists {
		if len(values) > 0 {
			return false
		}
	}
	return true
}
