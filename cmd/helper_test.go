package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

const (
	coffeeLine = "description : Coffee      |      amount : 4.5      |      date : 2025-01-10      |      category : Food"
	rentLine   = "description : Rent      |      amount : 1200      |      date : 2025-01-01      |      category : Housing"
	cinemaLine = "description : Cinema      |      amount : 15      |      date : 2025-02-14      |      category : Leisure"
)

// createTempLedger creates a ledger file with content and makes it the app
// ledger file for the duration of the test.
func createTempLedger(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "expenses.txt")
	if content != "" {
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write to temp file: %v", err)
		}
	}

	oldLedgerFile := ledgerFile
	ledgerFile = &name
	t.Cleanup(func() { ledgerFile = oldLedgerFile })
	return name
}

// captureStdout redirects the commands output to the returned buffer.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var b bytes.Buffer
	old := stdout
	stdout = &b
	t.Cleanup(func() { stdout = old })
	return &b
}

// execute parses args with the flags of c and executes it.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid arguments %q: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}
	return string(content)
}
