// Package note implements parsing and surgical rewriting of markdown notes
// that carry a leading YAML frontmatter block.
package note

import (
	"bufio"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter extracts the note's YAML frontmatter as a flat string map.
// The block must open with "---" on the first line and close with another
// "---" line. Parsing is best effort: a note without a valid block yields
// an empty map, never an error. This mirrors the lenient metadata cache of
// note-taking applications, which is only trusted for simple scalar reads.
func Frontmatter(content string) map[string]string {
	scanner := bufio.NewScanner(strings.NewReader(content))

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != Delimiter {
		return map[string]string{}
	}

	var lines []string
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == Delimiter {
			closed = true
			break
		}
		lines = append(lines, line)
	}
	if !closed || len(lines) == 0 {
		return map[string]string{}
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(strings.Join(lines, "\n")), &raw); err != nil {
		return map[string]string{}
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			fields[k] = ""
			continue
		}
		fields[k] = fmt.Sprint(v)
	}
	return fields
}
