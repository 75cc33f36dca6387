package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jward/shelf"
	"github.com/jward/shelf/internal/shell"
)

// demoGenre is issued to the second seeded member during the scripted part
// of a session.
const demoGenre = "Russian Classics"

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive catalog session",
	Long: `Seeds the catalog, registers you as a new member, lists all books and members,
issues two books to existing members, and then lets you search for books by
title and issue them to yourself. Enter -1 at the title prompt to quit.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	log := logger.With("session", uuid.NewString())

	c, err := openCatalog(cmd.Context(), log, shell.Announcer(out))
	if err != nil {
		return err
	}
	defer c.Close()

	return runSession(cmd.Context(), c, cmd.InOrStdin(), out, log)
}

// runSession drives one session over an already seeded catalog.
func runSession(ctx context.Context, c *shelf.Catalog, in io.Reader, out io.Writer, log *slog.Logger) error {
	sess := shell.New(c, in, out, shell.WithLogger(log))

	newMember, err := sess.Register(ctx)
	if err != nil {
		return fmt.Errorf("registering member: %w", err)
	}

	fmt.Fprint(out, "\nList of Books:\n")
	for line, err := range c.DisplayBooks() {
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n\n", line)
	}
	fmt.Fprint(out, "List of Members:\n")
	for line, err := range c.DisplayMembers() {
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)
	}

	if err := issueDemoBooks(c, log); err != nil {
		return err
	}

	return sess.IssueFromSearch(ctx, newMember)
}

// issueDemoBooks issues the first seeded book by copy to the first seeded
// member and demoGenre to the second. Steps the seed cannot support are
// skipped.
func issueDemoBooks(c *shelf.Catalog, log *slog.Logger) error {
	books, err := c.Books()
	if err != nil {
		return err
	}
	members, err := c.Members()
	if err != nil {
		return err
	}

	if len(books) > 0 && len(members) > 0 {
		c.IssueBookByCopy(books[0], members[0])
	} else {
		log.Warn("skipping issue by copy", "books", len(books), "members", len(members))
	}
	if len(members) > 1 {
		c.IssueBookByGenre(demoGenre, members[1])
	} else {
		log.Warn("skipping issue by genre", "members", len(members))
	}
	return nil
}
