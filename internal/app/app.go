package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/roman/internal/api"
	"github.com/dmitrymomot/roman/internal/locales"
	"github.com/dmitrymomot/roman/internal/shell"
	"github.com/dmitrymomot/roman/pkg/clientip"
	"github.com/dmitrymomot/roman/pkg/httpserver"
	"github.com/dmitrymomot/roman/pkg/i18n"
	"github.com/dmitrymomot/roman/pkg/logger"
)

// ErrInvalidConfig is returned by New when a setting cannot be applied.
var ErrInvalidConfig = errors.New("invalid configuration")

// App wires configuration, logging and translations into the shell and the
// HTTP API.
type App struct {
	cfg Config
	log *slog.Logger
	tr  *i18n.Translator
}

// New builds the logger and loads the embedded catalogs. Log records go to
// logOut.
func New(ctx context.Context, cfg Config, logOut io.Writer) (*App, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(logOut),
		logger.WithContextExtractors(api.RequestIDExtractor(), clientip.Extractor()),
	)

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(locales.FS, ".", i18n.NewYAMLParser()),
		i18n.WithLogger(log.With(logger.Component("i18n"))),
	)
	if err != nil {
		return nil, err
	}

	return &App{cfg: cfg, log: log, tr: tr}, nil
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.log
}

// Shell runs the interactive converter on in and out until the user quits,
// input ends or ctx is cancelled.
func (a *App) Shell(ctx context.Context, in io.Reader, out io.Writer) error {
	return shell.New(in, out, a.tr,
		shell.WithQuitCommand(a.cfg.Quit),
		shell.WithLanguage(a.cfg.Lang),
		shell.WithLogger(a.log.With(logger.Component("shell"))),
	).Run(ctx)
}

// Handler returns the HTTP API.
func (a *App) Handler() http.Handler {
	return api.NewRouter(a.tr, a.log.With(logger.Component("api")))
}

// Serve runs the HTTP API until ctx is cancelled or the process is signalled.
func (a *App) Serve(ctx context.Context, opts ...httpserver.Option) error {
	opts = append([]httpserver.Option{
		httpserver.WithLogger(a.log.With(logger.Component("httpserver"))),
	}, opts...)
	return httpserver.NewFromConfig(a.cfg.HTTP, opts...).Run(ctx, a.Handler())
}
