/*
Copyright © 2025 Shelf HQ <oss@shelfhq.dev>
*/
package cmd

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/shelfhq/shelfmark/internal/enrich"
	"github.com/shelfhq/shelfmark/internal/ops"
	"github.com/shelfhq/shelfmark/pkg/books"
	"github.com/shelfhq/shelfmark/pkg/config"
	"github.com/shelfhq/shelfmark/pkg/logger"
	"github.com/shelfhq/shelfmark/pkg/safeio"
	"github.com/shelfhq/shelfmark/pkg/vault"
)

// enrichCmd represents the enrich command
var enrichCmd = &cobra.Command{
	Use:   "enrich [note]",
	Short: "Sync book metadata into a note",
	Long: `Sync book metadata into a markdown note.

The note's frontmatter must carry an ean field. Its value is looked up
against the volumes API and the result is merged back into the note: the
title, author, editor, pages, and published_date frontmatter keys are
updated or added, and a cover image reference is placed in the body.

The whole note is rewritten in one atomic write. Use the global --no-op
flag to run the workflow without persisting the result.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEnrich,
}

func init() {
	enrichCmd.Flags().String("lookup-url", "", "Override the volumes lookup base URL")
	enrichCmd.Flags().Duration("timeout", 0, "HTTP timeout for the lookup call")
	enrichCmd.Flags().String("vault", "", "Vault root directory; reads and writes are contained within it")
	enrichCmd.Flags().Bool("quiet", false, "Suppress the field summary")

	if err := ops.RegisterCommand("enrich", ops.GroupWorkflow, enrichCmd, "Sync book metadata into a note"); err != nil {
		logger.Error("Failed to register enrich command", logger.Err(err))
	}
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadProjectConfig()
	if err != nil {
		return err
	}

	// Flags override config
	if v, _ := cmd.Flags().GetString("lookup-url"); v != "" {
		cfg.Lookup.BaseURL = v
	}
	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		cfg.Lookup.Timeout = v
	}
	if v, _ := cmd.Flags().GetString("vault"); v != "" {
		cfg.Vault.Root = v
	}

	var notePath string
	if len(args) == 1 {
		notePath, err = safeio.CleanUserPath(args[0])
		if err != nil {
			return err
		}
	}

	client := books.NewClient(books.Options{
		BaseURL:           cfg.Lookup.BaseURL,
		Timeout:           cfg.Lookup.Timeout,
		RequestsPerSecond: cfg.Lookup.RequestsPerSecond,
	})
	store := vault.NewFSVault(cfg.Vault.Root, notePath, cfg.Vault.NotePatterns)
	noOp, _ := cmd.Flags().GetBool("no-op")

	workflow := &enrich.Workflow{
		Vault:  store,
		Lookup: client,
		Notify: vault.NewWriterNotifier(cmd.OutOrStdout()),
		DryRun: noOp,
	}

	book, err := workflow.Run(cmd.Context())
	if err != nil {
		return err
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		printBookSummary(cmd, book)
	}
	return nil
}

// printBookSummary prints the mapped fields, aligned on display width so
// wide (CJK) titles and author names stay in column.
func printBookSummary(cmd *cobra.Command, book books.Book) {
	rows := []struct {
		key   string
		value string
	}{
		{"title", book.Title},
		{"author", book.Author},
		{"editor", book.Publisher},
		{"pages", strconv.Itoa(book.PageCount)},
		{"published_date", book.PublishedDate},
		{"cover", book.CoverURL},
	}

	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.key); w > width {
			width = w
		}
	}

	for _, r := range rows {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(r.key)+2)
		cmd.Printf("  %s%s%s\n", r.key, pad, r.value)
	}
}
