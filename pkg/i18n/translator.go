package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Translator resolves dot-separated keys against a loaded catalog. It is
// read-only after construction and safe for concurrent use.
type Translator struct {
	translations map[string]map[string]any
	defaultLang  string
	langs        []string
	matcher      language.Matcher
	logger       *slog.Logger
}

// NewTranslator loads translations through adapter and prepares language
// matching. The default language must be present in the catalog.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrDefaultLangEmpty, t.defaultLang)
	}

	t.translations = translations

	// The matcher falls back to its first tag, so the default goes first.
	t.langs = []string{t.defaultLang}
	for lang := range translations {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}
	slices.Sort(t.langs[1:])

	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tags = append(tags, language.Make(lang))
	}
	t.matcher = language.NewMatcher(tags)

	t.logger.DebugContext(ctx, "Translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// DefaultLanguage returns the fallback language code.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the catalog's languages, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// Match picks the best supported language for the given preferences. Each
// preference may be a single tag ("it", "en-GB") or a full Accept-Language
// header value ("it-CH, fr;q=0.9, en;q=0.8"). Unknown or empty input yields
// the default language.
func (t *Translator) Match(preferences ...string) string {
	_, idx := language.MatchStrings(t.matcher, preferences...)
	if idx < 0 || idx >= len(t.langs) {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation reports whether key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		return false
	}
	_, ok = val.(string)
	return ok
}

// T translates key into lang, substituting %{name} placeholders from args
// given as name, value pairs. Unknown languages use the default language;
// unknown keys fall back to the key itself.
//
//	// "shell.prompt": "Enter a numeral or '%{quit}' to quit"
//	msg := translator.T("en", "shell.prompt", "quit", "q")
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return substitute(s, args)
	}
	if lang != t.defaultLang {
		if s, ok := t.resolve(t.defaultLang, key); ok {
			return substitute(s, args)
		}
	}

	t.logger.Warn("Translation not found", slog.String("lang", lang), slog.String("key", key))
	return substitute(key, args)
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// lookup walks m along the dot-separated key, e.g. "shell.prompt".
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders. Unknown names are left as is;
// a trailing unpaired argument is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
