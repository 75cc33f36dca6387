package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jward/shelf"
	"github.com/jward/shelf/internal/runtime"
	"github.com/jward/shelf/seeds"
)

// --- Helpers ---

// openCatalog creates a Catalog on the --backend store and runs the seed
// script (--seed, or the embedded default) against it.
func openCatalog(ctx context.Context, log *slog.Logger, announcer shelf.Announcer) (*shelf.Catalog, error) {
	c, err := shelf.New(
		shelf.WithBackend(flagBackend.value),
		shelf.WithLogger(log),
		shelf.WithAnnouncer(announcer),
	)
	if err != nil {
		return nil, fmt.Errorf("creating catalog: %w", err)
	}

	var rt *runtime.Runtime
	script := seeds.Default
	if flagSeed != "" {
		abs, err := filepath.Abs(flagSeed)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("resolving seed path %q: %w", flagSeed, err)
		}
		rt = runtime.NewRuntime(c, filepath.Dir(abs), runtime.WithRuntimeLogger(log))
		script = filepath.Base(abs)
	} else {
		rt = runtime.NewRuntime(c, "", runtime.WithRuntimeFS(seeds.FS), runtime.WithRuntimeLogger(log))
	}

	if err := rt.RunScript(ctx, script, nil); err != nil {
		c.Close()
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}

	books, members, err := c.Len()
	if err != nil {
		c.Close()
		return nil, err
	}
	log.Debug("catalog seeded", "script", script, "books", books, "members", members)
	return c, nil
}

// parseMemberID parses a positional member id argument.
func parseMemberID(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid member id %q: must be a positive integer", value)
	}
	return n, nil
}

// --- Commands ---

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the seeded books in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog(cmd.Context(), logger, nil)
		if err != nil {
			return outputError(cmd, "books", err)
		}
		defer c.Close()

		books, err := c.Books()
		if err != nil {
			return outputError(cmd, "books", err)
		}
		results := make([]CLIBook, len(books))
		for i, b := range books {
			results[i] = toCLIBook(i, b)
		}
		total := len(results)
		return outputResult(cmd.OutOrStdout(), CLIResult{Command: "books", Results: results, TotalCount: &total})
	},
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "List the seeded members in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog(cmd.Context(), logger, nil)
		if err != nil {
			return outputError(cmd, "members", err)
		}
		defer c.Close()

		members, err := c.Members()
		if err != nil {
			return outputError(cmd, "members", err)
		}
		results := make([]CLIMember, len(members))
		for i, m := range members {
			results[i] = CLIMember{Name: m.Name(), ID: m.ID()}
		}
		total := len(results)
		return outputResult(cmd.OutOrStdout(), CLIResult{Command: "members", Results: results, TotalCount: &total})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <title>",
	Short: "Find a book by exact title, ignoring ASCII case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog(cmd.Context(), logger, nil)
		if err != nil {
			return outputError(cmd, "search", err)
		}
		defer c.Close()

		res, err := c.SearchBookByTitle(args[0])
		if err != nil {
			return outputError(cmd, "search", err)
		}
		return outputResult(cmd.OutOrStdout(), CLIResult{Command: "search", Results: toCLISearch(res)})
	},
}

var (
	flagIssueTitle string
	flagIssueGenre string
)

var issueCmd = &cobra.Command{
	Use:   "issue <member-id>",
	Short: "Issue a book to a seeded member by title or by genre",
	Long:  "Announces an issue to the member with the given id. With --title the book is looked up in the catalog first; with --genre no lookup happens. Nothing is recorded.",
	Args:  cobra.ExactArgs(1),
	RunE:  runIssue,
}

func init() {
	issueCmd.Flags().StringVar(&flagIssueTitle, "title", "", "title of the book to issue")
	issueCmd.Flags().StringVar(&flagIssueGenre, "genre", "", "genre of the book to issue")
	issueCmd.MarkFlagsOneRequired("title", "genre")
	issueCmd.MarkFlagsMutuallyExclusive("title", "genre")
}

func runIssue(cmd *cobra.Command, args []string) error {
	id, err := parseMemberID(args[0])
	if err != nil {
		return outputError(cmd, "issue", err)
	}

	c, err := openCatalog(cmd.Context(), logger, nil)
	if err != nil {
		return outputError(cmd, "issue", err)
	}
	defer c.Close()

	member, err := memberByID(c, id)
	if err != nil {
		return outputError(cmd, "issue", err)
	}

	var iss shelf.Issue
	if cmd.Flags().Changed("genre") {
		iss = c.IssueBookByGenre(flagIssueGenre, member)
	} else {
		res, err := c.SearchBookByTitle(flagIssueTitle)
		if err != nil {
			return outputError(cmd, "issue", err)
		}
		if !res.Found {
			return outputError(cmd, "issue", fmt.Errorf("book not found with the title: %s", flagIssueTitle))
		}
		iss = c.IssueBookByCopy(res.Book, member)
	}
	return outputResult(cmd.OutOrStdout(), CLIResult{Command: "issue", Results: toCLIIssue(iss)})
}

// memberByID returns the first member holding id.
func memberByID(c *shelf.Catalog, id int) (shelf.Member, error) {
	m, err := c.Store().MemberByID(id)
	if err != nil {
		return shelf.Member{}, err
	}
	if m == nil {
		return shelf.Member{}, fmt.Errorf("no member with id %d", id)
	}
	return shelf.NewMember(m.Name, m.MemberID), nil
}
