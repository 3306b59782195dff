package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/roman/internal/app"
)

// Commands understood by Parse.
const (
	CommandShell = "shell"
	CommandServe = "serve"
	CommandHelp  = "help"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed command line. Empty flag values leave the
// corresponding Config field untouched.
type Options struct {
	Command   string
	Quit      string
	Lang      string
	Addr      string
	LogLevel  string
	LogFormat string
}

// Apply overrides cfg with the flags that were set.
func (o *Options) Apply(cfg *app.Config) {
	if o.Quit != "" {
		cfg.Quit = o.Quit
	}
	if o.Lang != "" {
		cfg.Lang = o.Lang
	}
	if o.Addr != "" {
		cfg.HTTP.Addr = o.Addr
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.LogFormat = o.LogFormat
	}
}

// Parse processes command-line arguments. It returns the options, whether
// the program should exit cleanly (help was printed), or an *ExitError with
// code 2 for usage mistakes.
//
// The command may come first or be omitted, in which case it defaults to
// "shell": `roman -lang it`, `roman serve -addr :9000`.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	fs := flag.NewFlagSet("roman", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
roman - convert Roman numerals (I to MMMCMXCIX) to integers.

Usage:
  roman [shell] [options]   read numerals from stdin, one per line
  roman serve [options]     serve GET /convert?numeral=... over HTTP
  roman help                show this help

Settings also come from the environment (ROMAN_QUIT, ROMAN_LANG, LOG_LEVEL,
LOG_FORMAT, HTTP_ADDR, HTTP_*_TIMEOUT) and an optional .env file; flags win.

Options:
`)
		fs.PrintDefaults()
	}

	opts := &Options{Command: CommandShell}
	fs.StringVar(&opts.Quit, "quit", "", "Word that ends the shell session.")
	fs.StringVar(&opts.Lang, "lang", "", "Message language, e.g. 'en' or 'it'.")
	fs.StringVar(&opts.Addr, "addr", "", "HTTP listen address for serve.")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	fs.StringVar(&opts.LogFormat, "log-format", "", "Log output format: 'text' or 'json'.")

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		opts.Command = strings.ToLower(args[0])
		args = args[1:]
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	switch opts.Command {
	case CommandShell, CommandServe:
		return opts, false, nil
	case CommandHelp:
		fs.Usage()
		return nil, true, nil
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", opts.Command)}
	}
}
