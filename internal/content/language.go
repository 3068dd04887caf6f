// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

/*
Package content implements the multilingual document convention shared by
every translated entity (blog posts, lawyers, practice areas, firm profile).

# Document Shape

Each entity document carries its per-language data as a map keyed by an
enumerated language code:

  - Translations map[Language]T holding at most one text bundle per language.
    An absent key means "not translated".
  - List fields as [Lists] (map[Language][]string) holding an ordered list of
    values per language.

Keying by language (instead of a tagged array of {language, value} records)
makes the "one entry per language" invariant structural and removes any
positional-correspondence fragility between languages.

# Read Path (Language Projection)

[Pick] selects a text bundle for a requested language: exact match, then
English, then the first available language in canonical order. List fields
deliberately do NOT fall back ([Lists.Values]): a Tamil visitor asking for a
lawyer's locations gets an empty list rather than English place names.

# Write Path (Flat-Form Reassembly)

The admin panel submits flattened, language-suffixed form fields
(title_en, title_ta, title_si; locations_en repeated per value). [Form]
reads those back into the map shape. Policy knobs that belong to the
entity (which fields are required per language, all-or-nothing bundling)
stay in the entity services; this package only provides the mechanics.
*/
package content

import "strings"

// Language is an enumerated site language code.
type Language string

const (
	// English is the canonical default language. It is the only language an
	// admin write MUST supply, and the fallback for text projection.
	English Language = "en"
	// Tamil translation variant.
	Tamil Language = "ta"
	// Sinhala translation variant.
	Sinhala Language = "si"
)

// Default is the canonical fallback language for text projection.
const Default = English

// All enumerates the supported languages in canonical order.
//
// The order matters: it defines "first available" for the projection
// fallback and the iteration order of form reassembly.
var All = []Language{English, Tamil, Sinhala}

// Parse normalizes a raw language code from a query parameter.
//
// Unknown codes are returned as-is (lowercased): projection treats them like
// any non-matching language and falls back, so no validation error is needed
// at this layer.
func Parse(raw string) Language {
	code := Language(strings.ToLower(strings.TrimSpace(raw)))
	if code == "" {
		return Default
	}
	return code
}

// Known reports whether l is one of the enumerated site languages.
func (l Language) Known() bool {
	for _, candidate := range All {
		if l == candidate {
			return true
		}
	}
	return false
}
