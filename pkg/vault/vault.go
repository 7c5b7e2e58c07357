// Package vault models the host capabilities the enrichment workflow needs:
// resolving the note under edit, reading and rewriting its content, parsing
// its frontmatter block, and notifying the user. The workflow only ever sees
// these interfaces, which keeps it testable with fakes.
package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/shelfhq/shelfmark/internal/note"
	"github.com/shelfhq/shelfmark/pkg/safeio"
)

// ErrNoDocument indicates no note is currently open for enrichment.
var ErrNoDocument = errors.New("no note is open")

// Vault is the capability set a document store must provide.
type Vault interface {
	// Active resolves the note currently under edit.
	Active() (string, error)
	// Read returns the note's full raw content.
	Read(path string) (string, error)
	// Write replaces the note's full content in one call.
	Write(path string, content string) error
	// Frontmatter returns the note's parsed frontmatter as a flat map.
	// Parsing is best effort; a note without a block yields an empty map.
	Frontmatter(path string) (map[string]string, error)
}

// DefaultNotePatterns matches the markdown notes a vault owns.
var DefaultNotePatterns = []string{"**/*.md"}

// FSVault is a filesystem-backed Vault. When a root is configured, all reads
// and writes are contained within it.
type FSVault struct {
	root     string
	active   string
	patterns []string
}

// NewFSVault creates a vault rooted at root (may be empty for no
// containment) with the given note open. Patterns are doublestar globs
// identifying note files; nil selects DefaultNotePatterns.
func NewFSVault(root, active string, patterns []string) *FSVault {
	if len(patterns) == 0 {
		patterns = DefaultNotePatterns
	}
	return &FSVault{root: root, active: active, patterns: patterns}
}

// Active returns the open note's path, or ErrNoDocument when none is open.
// A path that does not match any note pattern is rejected.
func (v *FSVault) Active() (string, error) {
	if v.active == "" {
		return "", ErrNoDocument
	}

	// Patterns are matched against a slash-normalized relative form.
	candidate := strings.TrimPrefix(filepath.ToSlash(v.active), "/")
	for _, pattern := range v.patterns {
		if ok, err := doublestar.Match(pattern, candidate); err == nil && ok {
			return v.active, nil
		}
	}
	return "", fmt.Errorf("%s does not match any note pattern", v.active)
}

// resolve joins relative note paths onto the vault root when one is set.
func (v *FSVault) resolve(path string) string {
	if v.root != "" && !filepath.IsAbs(path) {
		return filepath.Join(v.root, path)
	}
	return path
}

// Read returns the note's raw content.
func (v *FSVault) Read(path string) (string, error) {
	path = v.resolve(path)
	if v.root != "" {
		data, err := safeio.ReadFileContained(v.root, path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator invoking the command
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the note's content, preserving its file mode.
func (v *FSVault) Write(path string, content string) error {
	target := v.resolve(path)
	if v.root != "" {
		contained, err := safeio.ContainedPath(v.root, target)
		if err != nil {
			return err
		}
		target = contained
	}
	return safeio.WriteFilePreservePerms(target, []byte(content))
}

// Frontmatter reads the note and parses its leading block.
func (v *FSVault) Frontmatter(path string) (map[string]string, error) {
	content, err := v.Read(path)
	if err != nil {
		return nil, err
	}
	return note.Frontmatter(content), nil
}
