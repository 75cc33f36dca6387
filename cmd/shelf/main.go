package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jward/shelf"
)

var (
	flagBackend  = backendFlag{value: shelf.BackendMemory}
	flagSeed     string
	flagFormat   string
	flagLogLevel string
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

// logger is configured from --log-level before any command runs.
var logger = slog.New(slog.DiscardHandler)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "shelf",
	Short:         "Console library catalog",
	Long:          "Shelf keeps an in-memory catalog of books and members, searches books by title, and issues books to members.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(flagFormat); err != nil {
			return err
		}
		level, err := parseLogLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return nil
	},
	// No Run — prints help by default.
}

func init() {
	rootCmd.PersistentFlags().Var(&flagBackend, "backend", "record storage: memory|sqlite")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "seed the catalog from this .risor script instead of the built-in one")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "log level: debug|info|warn|error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(issueCmd)
}
