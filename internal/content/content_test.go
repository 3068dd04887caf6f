// Copyright (c) 2026 Lexora. All rights reserved.
// Author: nilupul.jayawardena.lk@gmail.com

package content_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nilupul/lexora/internal/content"
)

/*
TestLanguage_Parse verifies query-parameter normalization.
*/
func TestLanguage_Parse(t *testing.T) {
	assert.Equal(t, content.English, content.Parse(""))
	assert.Equal(t, content.Tamil, content.Parse("ta"))
	assert.Equal(t, content.Sinhala, content.Parse(" SI "))

	// Unknown codes pass through lowercased; projection falls back later.
	unknown := content.Parse("FR")
	assert.Equal(t, content.Language("fr"), unknown)
	assert.False(t, unknown.Known())
}

/*
TestPick_FallbackChain verifies the three-step text selection rule:
exact language, then English, then the first available language.
*/
func TestPick_FallbackChain(t *testing.T) {
	translations := map[content.Language]string{
		content.English: "Hello",
		content.Tamil:   "Vanakkam",
	}

	// 1. Exact match wins
	value, ok := content.Pick(translations, content.Tamil)
	assert.True(t, ok)
	assert.Equal(t, "Vanakkam", value)

	// 2. Missing language falls back to English
	value, ok = content.Pick(translations, content.Sinhala)
	assert.True(t, ok)
	assert.Equal(t, "Hello", value)

	// 3. No English: first available language in canonical order
	tamilOnly := map[content.Language]string{content.Tamil: "Vanakkam"}
	value, ok = content.Pick(tamilOnly, content.Sinhala)
	assert.True(t, ok)
	assert.Equal(t, "Vanakkam", value)

	// 4. Empty map: zero value, ok=false
	value, ok = content.Pick(map[content.Language]string{}, content.English)
	assert.False(t, ok)
	assert.Empty(t, value)
}

/*
TestLists_NoFallback verifies that list fields never borrow another
language's values: a missing translation projects to an empty list.
*/
func TestLists_NoFallback(t *testing.T) {
	lists := content.Lists{
		content.English: {"Colombo", "Kandy"},
	}

	assert.Equal(t, []string{"Colombo", "Kandy"}, lists.Values(content.English))
	assert.Equal(t, []string{}, lists.Values(content.Tamil))
	assert.Equal(t, []string{}, lists.Values(content.Sinhala))
}

/*
TestLists_ValuesIsACopy verifies that mutating a projected list does not
leak into the stored slice.
*/
func TestLists_ValuesIsACopy(t *testing.T) {
	lists := content.Lists{content.English: {"Colombo"}}

	projected := lists.Values(content.English)
	projected[0] = "mutated"

	assert.Equal(t, []string{"Colombo"}, lists.Values(content.English))
}

/*
TestForm_Values verifies language-suffixed field extraction from a flat
form: trimming, empty-entry removal, and order preservation.
*/
func TestForm_Values(t *testing.T) {
	form := content.NewForm(url.Values{
		"title_en":     {"  Hello  "},
		"locations_en": {"Colombo", " ", "Jaffna"},
	})

	assert.Equal(t, "Hello", form.Value("title", content.English))
	assert.Equal(t, "", form.Value("title", content.Tamil))
	assert.Equal(t, []string{"Colombo", "Jaffna"}, form.Values("locations", content.English))
	assert.Nil(t, form.Values("locations", content.Tamil))
}

/*
TestForm_CollectList verifies multi-language list collection and the
destructive-replace presence trigger.
*/
func TestForm_CollectList(t *testing.T) {
	form := content.NewForm(url.Values{
		"locations_en": {"Colombo", "Jaffna"},
		"locations_ta": {"Yazhpanam"},
	})

	lists := form.CollectList("locations")
	assert.Equal(t, []string{"Colombo", "Jaffna"}, lists.Values(content.English))
	assert.Equal(t, []string{"Yazhpanam"}, lists.Values(content.Tamil))
	assert.Equal(t, []string{}, lists.Values(content.Sinhala))

	// Presence of ANY language key triggers replacement
	assert.True(t, form.HasListField("locations"))
	assert.False(t, form.HasListField("education"))

	// Even an all-empty submission counts as present, wiping the field
	wipe := content.NewForm(url.Values{"practiceAreas_en": {""}})
	assert.True(t, wipe.HasListField("practiceAreas"))
	assert.True(t, wipe.CollectList("practiceAreas").IsEmpty())
}

/*
TestForm_InvariantAndFlag verifies language-independent field helpers.
*/
func TestForm_InvariantAndFlag(t *testing.T) {
	form := content.NewForm(url.Values{
		"category": {" news "},
		"active":   {"true"},
		"featured": {"0"},
		"order":    {""},
	})

	assert.Equal(t, "news", form.Invariant("category"))
	assert.True(t, form.Flag("active"))
	assert.False(t, form.Flag("featured"))

	// Has distinguishes "submitted empty" from "not submitted"
	assert.True(t, form.Has("order"))
	assert.False(t, form.Has("phone"))
}
