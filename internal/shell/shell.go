// Package shell implements the interactive console around pkg/roman: it
// prompts, reads one numeral per line and prints the value or a translated
// error until the user quits or input ends.
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

	"github.com/dmitrymomot/roman/pkg/i18n"
	"github.com/dmitrymomot/roman/pkg/logger"
	"github.com/dmitrymomot/roman/pkg/roman"
	"github.com/dmitrymomot/roman/pkg/sanitizer"
)

// ErrReadInput wraps failures of the underlying reader.
var ErrReadInput = errors.New("failed to read shell input")

const (
	defaultQuit    = "q"
	explainCommand = "explain"
)

// Shell is a line-oriented conversion loop. It is not safe for concurrent
// use; run one Shell per input stream.
type Shell struct {
	in   io.Reader
	out  io.Writer
	tr   *i18n.Translator
	quit string
	lang string
	log  *slog.Logger
}

// Option configures a Shell.
type Option func(*Shell)

// WithQuitCommand sets the word that ends the session. Matching ignores
// case and surrounding whitespace. Empty values are ignored.
func WithQuitCommand(cmd string) Option {
	return func(s *Shell) {
		if cmd = sanitizer.TrimToLower(cmd); cmd != "" {
			s.quit = cmd
		}
	}
}

// WithLanguage selects the message language. Unsupported languages fall
// back to the translator's default.
func WithLanguage(lang string) Option {
	return func(s *Shell) {
		if lang != "" {
			s.lang = lang
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, tr *i18n.Translator, opts ...Option) *Shell {
	s := &Shell{
		in:   in,
		out:  out,
		tr:   tr,
		quit: defaultQuit,
		log:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lang = tr.Match(s.lang)
	return s
}

// Run prompts and converts until the quit command, end of input or ctx
// cancellation, all of which return nil. Reader failures are wrapped with
// ErrReadInput.
//
// A reader blocked in Read is abandoned on cancellation; the caller owns
// closing it.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, errc := s.readLines(ctx)
	s.log.DebugContext(ctx, "Shell started", slog.String("lang", s.lang), slog.String("quit", s.quit))

	for {
		s.println(s.tr.T(s.lang, "shell.prompt", "quit", s.quit))

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if s.handle(ctx, line) {
				s.println(s.tr.T(s.lang, "shell.bye"))
				return nil
			}
		}
	}
}

func (s *Shell) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		// No line length limit: an oversized line is still just one bad numeral.
		r := bufio.NewReader(s.in)
		for {
			line, err := r.ReadString('\n')
			if line != "" {
				select {
				case lines <- strings.TrimSuffix(line, "\n"):
				case <-ctx.Done():
					errc <- nil
					return
				}
			}
			if errors.Is(err, io.EOF) {
				errc <- nil
				return
			}
			if err != nil {
				errc <- errors.Join(ErrReadInput, err)
				return
			}
		}
	}()

	return lines, errc
}

// handle processes one input line and reports whether the session ends.
func (s *Shell) handle(ctx context.Context, line string) bool {
	cmd := sanitizer.TrimToLower(line)
	switch {
	case cmd == "":
		return false
	case cmd == s.quit:
		return true
	}

	if fields := strings.Fields(cmd); fields[0] == explainCommand {
		s.explain(ctx, strings.Fields(line)[1:])
		return false
	}

	n, err := roman.Parse(line)
	if err != nil {
		s.log.DebugContext(ctx, "Rejected numeral", logger.Numeral(line), logger.Error(err))
		s.println(s.tr.T(s.lang, "shell.invalid"))
		return false
	}

	s.log.DebugContext(ctx, "Converted numeral", logger.Numeral(line), logger.Value(n))
	s.println(strconv.Itoa(n))
	return false
}

func (s *Shell) explain(ctx context.Context, args []string) {
	if len(args) != 1 {
		s.println(s.tr.T(s.lang, "shell.explain_usage"))
		return
	}

	tokens, err := roman.Tokens(args[0])
	if err != nil {
		s.log.DebugContext(ctx, "Rejected numeral", logger.Numeral(args[0]), logger.Error(err))
		s.println(s.tr.T(s.lang, "shell.invalid"))
		return
	}

	total := 0
	for _, tok := range tokens {
		total += tok.Value
	}

	s.println(s.tr.T(s.lang, "shell.explain_total",
		"numeral", roman.Normalize(args[0]),
		"value", strconv.Itoa(total),
	))
	for _, tok := range tokens {
		s.println(s.tr.T(s.lang, "shell.explain_token",
			"place", s.tr.T(s.lang, "place."+tok.Place.String()),
			"text", tok.Text,
			"value", strconv.Itoa(tok.Value),
		))
	}
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
