// Package enrich orchestrates the metadata sync workflow: resolve the open
// note, look its identifier up against the volumes service, merge the result
// into the note's frontmatter and body, and persist the rewritten document.
package enrich

import (
	"context"

	"github.com/shelfhq/shelfmark/internal/note"
	"github.com/shelfhq/shelfmark/pkg/books"
	"github.com/shelfhq/shelfmark/pkg/logger"
	"github.com/shelfhq/shelfmark/pkg/vault"
)

// identifierKey is the frontmatter field holding the note's EAN/ISBN.
const identifierKey = "ean"

// Lookup resolves an ISBN to book metadata.
type Lookup interface {
	LookupISBN(ctx context.Context, isbn string) (books.Book, error)
}

// Workflow wires the host capabilities and the lookup client for one
// enrichment run. Invocations hold no state between runs; the note itself is
// the only persisted artifact.
type Workflow struct {
	Vault  vault.Vault
	Lookup Lookup
	Notify vault.Notifier

	// DryRun rewrites the note in memory but skips the persist step.
	DryRun bool
}

// Run executes one enrichment end to end. Every failure is terminal: it is
// logged, surfaced to the user as a single notice, and returned. On success
// the mapped book record is returned for display.
func (w *Workflow) Run(ctx context.Context) (books.Book, error) {
	book, err := w.run(ctx)
	if err != nil {
		logger.Error("Enrichment failed", logger.Err(err))
		w.Notify.Notify(noticeFor(err))
		return books.Book{}, err
	}

	w.Notify.Notify("Book metadata updated.")
	return book, nil
}

func (w *Workflow) run(ctx context.Context) (books.Book, error) {
	path, err := w.Vault.Active()
	if err != nil {
		return books.Book{}, err
	}

	fields, err := w.Vault.Frontmatter(path)
	if err != nil {
		return books.Book{}, err
	}
	isbn := fields[identifierKey]
	if isbn == "" {
		return books.Book{}, ErrMissingIdentifier
	}

	logger.Debug("Looking up volume", logger.String("isbn", isbn))
	book, err := w.Lookup.LookupISBN(ctx, isbn)
	if err != nil {
		return books.Book{}, err
	}

	// Re-read the raw text fresh rather than reusing the earlier parse; the
	// surgery below operates on the exact bytes that will be rewritten.
	content, err := w.Vault.Read(path)
	if err != nil {
		return books.Book{}, err
	}

	updated, err := note.Apply(content, book)
	if err != nil {
		return books.Book{}, err
	}

	if w.DryRun {
		logger.Info("Would update note", logger.String("path", path))
		return book, nil
	}

	if err := w.Vault.Write(path, updated); err != nil {
		return books.Book{}, err
	}

	logger.Info("Note enriched",
		logger.String("path", path),
		logger.String("isbn", isbn),
		logger.String("title", book.Title))
	return book, nil
}
