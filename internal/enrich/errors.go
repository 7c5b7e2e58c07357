package enrich

import (
	"errors"
	"fmt"

	"github.com/shelfhq/shelfmark/internal/note"
	"github.com/shelfhq/shelfmark/pkg/books"
	"github.com/shelfhq/shelfmark/pkg/vault"
)

// ErrMissingIdentifier indicates the note's frontmatter has no ean field.
var ErrMissingIdentifier = errors.New("frontmatter has no ean field")

// fallbackNotice is shown when a failure carries no message of its own.
const fallbackNotice = "Book lookup failed."

// noticeFor maps a workflow failure to the single user-facing notice.
func noticeFor(err error) string {
	var notFound *books.NotFoundError

	switch {
	case errors.Is(err, vault.ErrNoDocument):
		return "No note is open. Open a book note and try again."
	case errors.Is(err, ErrMissingIdentifier):
		return "The note's frontmatter has no ean field."
	case errors.Is(err, note.ErrMalformedFrontmatter):
		return "The note's frontmatter is malformed."
	case errors.As(err, &notFound):
		return fmt.Sprintf("No book found for ISBN %s.", notFound.ISBN)
	default:
		if msg := err.Error(); msg != "" {
			return msg
		}
		return fallbackNotice
	}
}
