package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// formatBooksText formats CLIBook results as aligned columns.
func formatBooksText(w io.Writer, books []CLIBook) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tTITLE\tAUTHOR\tGENRE")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", b.Index, b.Title, b.Author, b.Genre)
	}
	tw.Flush()
}

// formatMembersText formats CLIMember results as aligned columns.
func formatMembersText(w io.Writer, members []CLIMember) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, m := range members {
		fmt.Fprintf(tw, "%d\t%s\n", m.ID, m.Name)
	}
	tw.Flush()
}

// formatSearchText prints the search outcome the way the console does.
func formatSearchText(w io.Writer, s CLISearch) {
	if s.Book == nil {
		fmt.Fprintf(w, "Book not found with the title: %s\n", s.Query)
		return
	}
	fmt.Fprintf(w, "Book found: \nTitle: %s\nAuthor: %s\nGenre: %s\n", s.Book.Title, s.Book.Author, s.Book.Genre)
}

// outputResult writes a CLIResult to w in the selected format.
func outputResult(w io.Writer, result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(w, result)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError reports err for command. In JSON mode the error goes out as a
// CLIResult on stdout and main() does not print it again.
func outputError(cmd *cobra.Command, command string, err error) error {
	if flagFormat == "json" {
		if encErr := outputResult(cmd.OutOrStdout(), CLIResult{Command: command, Error: err.Error()}); encErr == nil {
			errorHandled = true
		}
	}
	return err
}

// outputResultText dispatches to the appropriate text formatter based on the
// result type.
func outputResultText(w io.Writer, result CLIResult) error {
	switch v := result.Results.(type) {
	case []CLIBook:
		formatBooksText(w, v)
	case []CLIMember:
		formatMembersText(w, v)
	case CLISearch:
		formatSearchText(w, v)
	case CLIIssue:
		fmt.Fprintln(w, v.Message)
	case nil:
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
