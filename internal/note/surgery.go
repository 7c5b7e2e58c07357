package note

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shelfhq/shelfmark/pkg/books"
)

// Delimiter is the marker line that opens and closes a frontmatter block.
const Delimiter = "---"

// ErrMalformedFrontmatter indicates the note has no closing frontmatter delimiter.
var ErrMalformedFrontmatter = errors.New("frontmatter block is missing its closing delimiter")

// sizedImageRe matches a markdown image reference carrying the 300-width
// size modifier. Only these references are owned by the enrichment flow;
// any other image in the body is left alone.
var sizedImageRe = regexp.MustCompile(`!\[[^\]]*\|300\]\([^)]*\)`)

// enrichedKeys is the fixed order in which missing frontmatter keys are
// inserted before the closing delimiter.
var enrichedKeys = []string{"title", "author", "editor", "pages", "published_date"}

// Split separates raw note content into the frontmatter block and the body.
// The block spans from the start of the content through the second occurrence
// of the delimiter, both delimiters included. The body is the remainder with
// leading whitespace trimmed.
func Split(content string) (block, body string, err error) {
	first := strings.Index(content, Delimiter)
	if first < 0 {
		return "", "", ErrMalformedFrontmatter
	}
	second := strings.Index(content[first+len(Delimiter):], Delimiter)
	if second < 0 {
		return "", "", ErrMalformedFrontmatter
	}

	end := first + len(Delimiter) + second + len(Delimiter)
	block = content[:end]
	body = strings.TrimLeftFunc(content[end:], unicode.IsSpace)
	return block, body, nil
}

// setField replaces the whole line for key inside block, or inserts a new
// "key: value" line immediately before the closing delimiter when the key is
// absent. Replacement is purely textual: untouched lines keep their original
// formatting and order. Each insertion re-anchors against the closing
// delimiter, so successive insertions land in call order.
func setField(block, key, rendered string) string {
	line := key + ": " + rendered

	re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `:.*$`)
	if loc := re.FindStringIndex(block); loc != nil {
		return block[:loc[0]] + line + block[loc[1]:]
	}

	idx := strings.LastIndex(block, Delimiter)
	return block[:idx] + line + "\n" + block[idx:]
}

// quoteValue renders a string frontmatter value double-quoted, escaping any
// interior double quotes.
func quoteValue(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// MergeCover places the cover reference into the body. An existing 300-width
// image reference is replaced in place; otherwise the new reference is
// prepended, followed by a blank line.
func MergeCover(body, coverURL string) string {
	ref := "![Book Cover|300](" + coverURL + ")"
	if loc := sizedImageRe.FindStringIndex(body); loc != nil {
		return body[:loc[0]] + ref + body[loc[1]:]
	}
	return ref + "\n\n" + body
}

// Apply rewrites content with the book's metadata: the five enriched keys are
// updated or inserted in the frontmatter block and the cover reference is
// merged into the body. Returns ErrMalformedFrontmatter when the block's
// closing delimiter cannot be found; the content is then left untouched.
func Apply(content string, book books.Book) (string, error) {
	block, body, err := Split(content)
	if err != nil {
		return "", err
	}

	for _, key := range enrichedKeys {
		var rendered string
		switch key {
		case "title":
			rendered = quoteValue(book.Title)
		case "author":
			rendered = quoteValue(book.Author)
		case "editor":
			rendered = quoteValue(book.Publisher)
		case "pages":
			rendered = strconv.Itoa(book.PageCount)
		case "published_date":
			rendered = quoteValue(book.PublishedDate)
		}
		block = setField(block, key, rendered)
	}

	body = MergeCover(body, book.CoverURL)

	return block + "\n" + strings.TrimSpace(body), nil
}
