package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/roman/pkg/clientip"
	"github.com/dmitrymomot/roman/pkg/httpserver"
	"github.com/dmitrymomot/roman/pkg/i18n"
	"github.com/dmitrymomot/roman/pkg/logger"
	"github.com/dmitrymomot/roman/pkg/roman"
	"github.com/dmitrymomot/roman/pkg/validator"
)

// maxNumeralLength bounds query input. The longest valid numeral has 15
// symbols; the rest is room for surrounding whitespace.
const maxNumeralLength = 64

type handler struct {
	tr  *i18n.Translator
	log *slog.Logger
}

// NewRouter builds the HTTP handler for the API.
func NewRouter(tr *i18n.Translator, log *slog.Logger) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	h := &handler{tr: tr, log: log}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(clientip.New().Middleware)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/convert", h.convert)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.NotFound(h.notFound)

	return r
}

func (h *handler) convert(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("numeral")

	err := validator.Apply(
		validator.RequiredString("numeral", input),
		validator.MaxLenString("numeral", input, maxNumeralLength),
		validator.RomanNumeral("numeral", input),
	)
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		h.log.DebugContext(r.Context(), "Rejected numeral", logger.Numeral(input), logger.Error(err))
		h.validationError(w, r, verrs)
		return
	}

	conv := newConversion(input)
	h.log.DebugContext(r.Context(), "Converted numeral", logger.Numeral(input), logger.Value(conv.Value))

	writeJSON(w, r, h.log, http.StatusOK, Response{Code: "ok", Data: conv})
}

// newConversion expects input that passed validator.RomanNumeral.
func newConversion(input string) Conversion {
	tokens, _ := roman.Tokens(input)

	var numeral strings.Builder
	value := 0
	for _, tok := range tokens {
		numeral.WriteString(tok.Text)
		value += tok.Value
	}

	return Conversion{
		Input:   input,
		Numeral: numeral.String(),
		Value:   value,
		Tokens:  tokens,
	}
}

func (h *handler) validationError(w http.ResponseWriter, r *http.Request, verrs validator.ValidationErrors) {
	lang := h.tr.Match(r.Header.Get("Accept-Language"))

	details := make(map[string][]string, len(verrs.Fields()))
	for _, ve := range verrs {
		args := make([]string, 0, 2*len(ve.TranslationValues))
		for k, v := range ve.TranslationValues {
			args = append(args, k, fmt.Sprint(v))
		}
		details[ve.Field] = append(details[ve.Field], h.tr.T(lang, ve.TranslationKey, args...))
	}

	writeJSON(w, r, h.log, http.StatusUnprocessableEntity, Response{
		Error: &ErrorDetail{
			Code:    "validation_error",
			Message: h.tr.T(lang, "validation.failed"),
			Details: details,
		},
	})
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	lang := h.tr.Match(r.Header.Get("Accept-Language"))
	writeJSON(w, r, h.log, http.StatusNotFound, Response{
		Error: &ErrorDetail{Code: "not_found", Message: h.tr.T(lang, "api.not_found")},
	})
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.log.InfoContext(r.Context(), "Request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
