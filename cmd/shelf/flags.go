package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/jward/shelf"
)

// backendFlag is a pflag.Value that only accepts known backends.
type backendFlag struct {
	value shelf.Backend
}

var _ pflag.Value = (*backendFlag)(nil)

func (f *backendFlag) String() string { return string(f.value) }

func (f *backendFlag) Set(s string) error {
	b, err := shelf.ParseBackend(s)
	if err != nil {
		return err
	}
	f.value = b
	return nil
}

func (f *backendFlag) Type() string { return "backend" }

// parseLogLevel maps a --log-level value to a slog.Level.
func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", s)
	}
	return level, nil
}
