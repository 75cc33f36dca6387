package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests drive the shared rootCmd and its package-level flags, so they
// do not run in parallel.

// resetFlags restores every flag in the command tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs the CLI with args and stdin, returning stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	errorHandled = false

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func decodeResult(t *testing.T, out string) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result), "invalid JSON output: %s", out)
	return result
}

func TestBooksCommand_JSON(t *testing.T) {
	for _, backend := range []string{"memory", "sqlite"} {
		out, err := executeCommand(t, "", "books", "--format", "json", "--backend", backend)
		require.NoError(t, err)

		result := decodeResult(t, out)
		assert.Equal(t, "books", result["command"])
		assert.EqualValues(t, 3, result["total_count"])

		books, ok := result["results"].([]any)
		require.True(t, ok)
		require.Len(t, books, 3)
		first := books[0].(map[string]any)
		assert.Equal(t, "The Great Gatsby", first["title"])
		assert.EqualValues(t, 0, first["index"])
	}
}

func TestBooksCommand_Text(t *testing.T) {
	out, err := executeCommand(t, "", "books")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "INDEX"))
	assert.Contains(t, lines[2], "Anna Karenina")
	assert.Contains(t, lines[2], "L. Tolstoy")
}

func TestMembersCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "", "members", "--format", "json")
	require.NoError(t, err)

	result := decodeResult(t, out)
	members := result["results"].([]any)
	require.Len(t, members, 3)
	last := members[2].(map[string]any)
	assert.Equal(t, "Nicola Tesla", last["name"])
	assert.EqualValues(t, 3, last["id"])
}

func TestSearchCommand(t *testing.T) {
	out, err := executeCommand(t, "", "search", "ANNA KARENINA")
	require.NoError(t, err)
	assert.Equal(t, "Book found: \nTitle: Anna Karenina\nAuthor: L. Tolstoy\nGenre: Russian Classics\n", out)

	out, err = executeCommand(t, "", "search", "Anna Karenina ", "--format", "json")
	require.NoError(t, err)
	result := decodeResult(t, out)
	search := result["results"].(map[string]any)
	assert.Equal(t, false, search["found"])
	assert.Nil(t, search["book"])
}

func TestIssueCommand(t *testing.T) {
	out, err := executeCommand(t, "", "issue", "2", "--genre", "Russian Classics")
	require.NoError(t, err)
	assert.Equal(t, "Whimsy Lou issued a book with genre: Russian Classics\n", out)

	out, err = executeCommand(t, "", "issue", "1", "--title", "the great gatsby", "--format", "json")
	require.NoError(t, err)
	result := decodeResult(t, out)
	iss := result["results"].(map[string]any)
	assert.Equal(t, "copy", iss["kind"])
	assert.Equal(t, "The Great Gatsby", iss["title"])
	assert.Equal(t, "John Doe issued the book titled: The Great Gatsby", iss["message"])
}

func TestIssueCommand_Errors(t *testing.T) {
	_, err := executeCommand(t, "", "issue", "9", "--genre", "Poetry")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no member with id 9")

	_, err = executeCommand(t, "", "issue", "1", "--title", "Dune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "book not found")

	_, err = executeCommand(t, "", "issue", "1")
	require.Error(t, err)

	out, err := executeCommand(t, "", "issue", "0", "--genre", "x", "--format", "json")
	require.Error(t, err)
	assert.True(t, errorHandled)
	assert.Contains(t, decodeResult(t, out)["error"], "invalid member id")
}

func TestIssueCommand_EmptyGenreSkipsLookup(t *testing.T) {
	out, err := executeCommand(t, "", "issue", "2", "--genre", "")
	require.NoError(t, err)
	assert.Equal(t, "Whimsy Lou issued a book with genre: \n", out)
}

func TestIssueCommand_DuplicateIDUsesFirstMember(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "dupes.risor")
	script := `add_member({"name": "First", "id": 4})
add_member({"name": "Second", "id": 4})`
	require.NoError(t, os.WriteFile(seed, []byte(script), 0o644))

	for _, backend := range []string{"memory", "sqlite"} {
		out, err := executeCommand(t, "", "issue", "4", "--genre", "Poetry", "--seed", seed, "--backend", backend)
		require.NoError(t, err, backend)
		assert.Equal(t, "First issued a book with genre: Poetry\n", out, backend)
	}
}

func TestRootCommand_RejectsBadFlags(t *testing.T) {
	_, err := executeCommand(t, "", "books", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	_, err = executeCommand(t, "", "books", "--backend", "bolt")
	require.Error(t, err)

	_, err = executeCommand(t, "", "books", "--log-level", "chatty")
	require.Error(t, err)
}

func TestSeedFlag_CustomScript(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(dir, "tiny.risor")
	require.NoError(t, os.WriteFile(seed, []byte(`add_book({"title": "Dune", "author": "F. Herbert", "genre": "Sci-Fi"})`), 0o644))

	out, err := executeCommand(t, "", "search", "dune", "--seed", seed, "--format", "json")
	require.NoError(t, err)
	search := decodeResult(t, out)["results"].(map[string]any)
	assert.Equal(t, true, search["found"])

	_, err = executeCommand(t, "", "books", "--seed", filepath.Join(dir, "missing.risor"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeding catalog")
}

func TestRunCommand(t *testing.T) {
	out, err := executeCommand(t, "Ada\n0\n5\n-1\n", "run", "--backend", "sqlite")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid input. Please enter a positive integer.")
	assert.Contains(t, out, "Name: Ada, ID: 5")
	assert.Contains(t, out, "John Doe issued the book titled: The Great Gatsby")
	assert.True(t, strings.HasSuffix(out, "Program Termination.\n"))
}
