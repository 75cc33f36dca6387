// Package shell runs the interactive console flows over a Catalog: member
// registration and search-and-issue. Input is read line by line, so any
// io.Reader works, including a test buffer.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jward/shelf"
)

// ErrInputClosed is returned when input ends before a flow could finish.
var ErrInputClosed = errors.New("shell: input closed")

// Terminator ends the search-and-issue loop.
const Terminator = "-1"

// Session reads answers from in and writes prompts to out.
type Session struct {
	catalog *shelf.Catalog
	in      *bufio.Reader
	out     io.Writer
	logger  *slog.Logger

	// pending holds a read that was still blocked when its context ended.
	// The next readLine waits on it instead of racing a second reader.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New creates a Session over c.
func New(c *shelf.Catalog, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		catalog: c,
		in:      bufio.NewReader(in),
		out:     out,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Announcer returns a shelf.Announcer that prints each issue to w the way
// the console reports it.
func Announcer(w io.Writer) shelf.Announcer {
	return func(iss shelf.Issue) {
		if iss.Kind == shelf.IssueByCopy {
			fmt.Fprintf(w, "\n%s\n", iss)
			return
		}
		fmt.Fprintln(w, iss)
	}
}

// readLine returns the next input line without its line terminator. A final
// line without a newline is still returned; ok is false only at end of input.
// A blocked read is abandoned with ctx.Err() once ctx is done.
func (s *Session) readLine(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if s.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := s.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		s.pending = ch
	}

	var r lineResult
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case r = <-s.pending:
		s.pending = nil
	}

	if r.err != nil && !errors.Is(r.err, io.EOF) {
		return "", false, fmt.Errorf("shell: read input: %w", r.err)
	}
	if r.err != nil && r.line == "" {
		return "", false, nil
	}
	line := strings.TrimSuffix(r.line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

func (s *Session) prompt(text string) {
	fmt.Fprint(s.out, text)
}

// Register asks for a name and then for an id until a positive id that no
// member holds is given, adds the new member, and returns it.
func (s *Session) Register(ctx context.Context) (shelf.Member, error) {
	s.prompt("Enter your name: ")
	name, ok, err := s.readLine(ctx)
	if err != nil {
		return shelf.Member{}, err
	}
	if !ok {
		return shelf.Member{}, ErrInputClosed
	}

	for {
		s.prompt("Enter your ID (positive integer): ")
		line, ok, err := s.readLine(ctx)
		if err != nil {
			return shelf.Member{}, err
		}
		if !ok {
			return shelf.Member{}, ErrInputClosed
		}

		id, err := parseID(line)
		if err != nil {
			s.logger.Debug("rejected id", "input", line, "reason", err)
			fmt.Fprintln(s.out, "Invalid input. Please enter a positive integer.")
			continue
		}
		unique, err := s.catalog.IsIDUnique(id)
		if err != nil {
			return shelf.Member{}, err
		}
		if !unique {
			s.logger.Debug("rejected id", "id", id, "reason", "taken")
			fmt.Fprintf(s.out, "ID %d is already taken. Please enter a different ID.\n", id)
			continue
		}

		member := shelf.NewMember(name, id)
		if err := s.catalog.AddMember(member); err != nil {
			return shelf.Member{}, err
		}
		s.logger.Info("member registered", "name", name, "id", id)
		return member, nil
	}
}

// parseID accepts a positive base-10 integer surrounded by optional spaces.
func parseID(line string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id %d is not positive", id)
	}
	return id, nil
}

// IssueFromSearch repeatedly asks for a title and offers to issue the book
// to member when it is found. It returns nil when the user enters the
// Terminator or input ends, and ctx.Err() if ctx ends while waiting for input.
func (s *Session) IssueFromSearch(ctx context.Context, member shelf.Member) error {
	for {
		s.prompt("\nEnter the name of the book you would like or " + Terminator + " to terminate: ")
		title, ok, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if title == Terminator {
			fmt.Fprintln(s.out, "Program Termination.")
			return nil
		}

		res, err := s.catalog.SearchBookByTitle(title)
		if err != nil {
			return err
		}
		if !res.Found {
			fmt.Fprintln(s.out, res)
			continue
		}

		s.prompt("Would you like to issue this book?\nIf yes, Press Y: \nIf no, press any other button: ")
		answer, ok, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if confirmed(answer) {
			s.catalog.IssueBookByCopy(res.Book, member)
		} else {
			fmt.Fprintln(s.out, "Book not issued.")
		}
	}
}

// confirmed reports whether the first non-space character is y or Y.
func confirmed(answer string) bool {
	answer = strings.TrimSpace(answer)
	return answer != "" && (answer[0] == 'y' || answer[0] == 'Y')
}
