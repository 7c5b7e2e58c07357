/*
Copyright © 2025 Shelf HQ <oss@shelfhq.dev>
*/
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// execRoot runs the production root command with args, capturing output.
func execRoot(t *testing.T, args []string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	// Reduce log noise to capture clean command output
	full := append([]string{"--log-level", "error"}, args...)
	rootCmd.SetArgs(full)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestInitializeLogger(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("log-level", "info", "")
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("no-color", false, "")
	cmd.Flags().Bool("no-op", false, "")

	// This should not panic
	initializeLogger(cmd)
}

func TestInitializeLogger_InvalidLevel(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("log-level", "invalid", "")
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("no-color", false, "")
	cmd.Flags().Bool("no-op", false, "")

	// Should default to info level
	initializeLogger(cmd)
}

func TestRootVersionSet(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("rootCmd.Version should not be empty")
	}
}

func TestRootHelpGroupsCommands(t *testing.T) {
	out, err := execRoot(t, []string{"--help"})
	if err != nil {
		t.Fatalf("--help failed: %v", err)
	}

	if !strings.Contains(out, "Workflow Commands:") {
		t.Errorf("help output missing workflow group:\n%s", out)
	}
	if !strings.Contains(out, "Support Commands:") {
		t.Errorf("help output missing support group:\n%s", out)
	}
	if !strings.Contains(out, "enrich") {
		t.Errorf("help output missing enrich command:\n%s", out)
	}
	if !strings.Contains(out, "version") {
		t.Errorf("help output missing version command:\n%s", out)
	}
}

func TestNewRootCommandIsolated(t *testing.T) {
	cmd := newRootCommand()
	if cmd == rootCmd {
		t.Error("newRootCommand() should return a fresh instance")
	}
	if cmd.Use != "shelfmark" {
		t.Errorf("Use = %q, expected shelfmark", cmd.Use)
	}
}
