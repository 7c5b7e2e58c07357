package note

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfhq/shelfmark/pkg/books"
)

const republicNote = `---
ean: 9780140449136
status: reading
---

My notes on the dialogue.`

func republicBook() books.Book {
	return books.Book{
		Title:         "Republic",
		Author:        "Plato",
		Publisher:     "Penguin",
		PageCount:     416,
		PublishedDate: "1955",
		CoverURL:      "http://x/img?zoom=5",
	}
}

func TestSplit(t *testing.T) {
	block, body, err := Split(republicNote)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(block, "---\n"))
	assert.True(t, strings.HasSuffix(block, "---"))
	assert.Contains(t, block, "ean: 9780140449136")
	assert.Equal(t, "My notes on the dialogue.", body, "body should have leading whitespace trimmed")
}

func TestSplitSingleDelimiter(t *testing.T) {
	_, _, err := Split("---\nean: 123\nno closing delimiter")
	assert.ErrorIs(t, err, ErrMalformedFrontmatter)
}

func TestSplitNoDelimiter(t *testing.T) {
	_, _, err := Split("just a plain document")
	assert.ErrorIs(t, err, ErrMalformedFrontmatter)
}

func TestApplyInsertsAllKeys(t *testing.T) {
	updated, err := Apply(republicNote, republicBook())
	require.NoError(t, err)

	block, body, err := Split(updated)
	require.NoError(t, err)

	// The untouched lines survive verbatim and the five keys are inserted in
	// order before the closing delimiter.
	lines := strings.Split(block, "\n")
	assert.Equal(t, []string{
		"---",
		"ean: 9780140449136",
		"status: reading",
		`title: "Republic"`,
		`author: "Plato"`,
		`editor: "Penguin"`,
		"pages: 416",
		`published_date: "1955"`,
		"---",
	}, lines)

	assert.Equal(t, "![Book Cover|300](http://x/img?zoom=5)\n\nMy notes on the dialogue.", body)
}

func TestApplyReplacesExistingKeys(t *testing.T) {
	content := `---
ean: 9780140449136
title: "Old Title"
tags: [philosophy]
author: "Somebody Else"
editor: "Old House"
pages: 1
published_date: "1900"
---

![Book Cover|300](http://old/cover?zoom=5)

My notes.`

	updated, err := Apply(content, republicBook())
	require.NoError(t, err)

	block, body, err := Split(updated)
	require.NoError(t, err)

	lines := strings.Split(block, "\n")
	assert.Equal(t, []string{
		"---",
		"ean: 9780140449136",
		`title: "Republic"`,
		"tags: [philosophy]",
		`author: "Plato"`,
		`editor: "Penguin"`,
		"pages: 416",
		`published_date: "1955"`,
		"---",
	}, lines, "existing keys replaced in place, ordering of untouched lines preserved")

	assert.Equal(t, 1, strings.Count(body, "![Book Cover|300]"), "sized image replaced, not duplicated")
	assert.Contains(t, body, "![Book Cover|300](http://x/img?zoom=5)")
	assert.NotContains(t, body, "http://old/cover")
}

func TestApplyIsIdempotent(t *testing.T) {
	book := republicBook()

	once, err := Apply(republicNote, book)
	require.NoError(t, err)

	twice, err := Apply(once, book)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestApplyMalformedLeavesNothingToWrite(t *testing.T) {
	_, err := Apply("--- only one delimiter", books.Book{})
	assert.ErrorIs(t, err, ErrMalformedFrontmatter)
}

func TestApplyEscapesQuotes(t *testing.T) {
	book := republicBook()
	book.Title = `The "Real" Republic`

	updated, err := Apply(republicNote, book)
	require.NoError(t, err)
	assert.Contains(t, updated, `title: "The \"Real\" Republic"`)
}

func TestMergeCoverPrepends(t *testing.T) {
	body := MergeCover("My notes.", "http://x/img?zoom=5")
	assert.Equal(t, "![Book Cover|300](http://x/img?zoom=5)\n\nMy notes.", body)
}

func TestMergeCoverReplacesInPlace(t *testing.T) {
	body := "Intro.\n\n![Old Cover|300](http://old/img)\n\nOutro."
	merged := MergeCover(body, "http://new/img")
	assert.Equal(t, "Intro.\n\n![Book Cover|300](http://new/img)\n\nOutro.", merged)
}

func TestMergeCoverIgnoresUnsizedImages(t *testing.T) {
	body := "![Diagram](http://x/diagram.png)\n\nNotes."
	merged := MergeCover(body, "http://x/cover")

	assert.Contains(t, merged, "![Diagram](http://x/diagram.png)", "other images are left untouched")
	assert.True(t, strings.HasPrefix(merged, "![Book Cover|300](http://x/cover)\n\n"))
}

func TestSetFieldReplacesWholeLine(t *testing.T) {
	block := "---\ntitle: old junk trailing text\n---"
	out := setField(block, "title", `"New"`)
	assert.Equal(t, "---\ntitle: \"New\"\n---", out)
}

func TestSetFieldDoesNotMatchSuffixKeys(t *testing.T) {
	block := "---\nsubtitle: keep me\n---"
	out := setField(block, "title", `"New"`)
	assert.Contains(t, out, "subtitle: keep me")
	assert.Contains(t, out, "title: \"New\"")
}
