package i18n_test

import (
	"bytes"
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/roman/pkg/i18n"
	"github.com/dmitrymomot/roman/pkg/logger"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"shell": map[string]any{
				"prompt": "Enter a numeral or '%{quit}' to quit",
				"bye":    "Goodbye",
			},
			"only_en": "english only",
			"count":   42,
		},
		"it": {
			"shell": map[string]any{
				"prompt": "Inserisci un numero o '%{quit}' per uscire",
			},
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("default language must exist", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"it": {"a": "b"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrDefaultLangEmpty)
	})

	t.Run("custom default language", func(t *testing.T) {
		tr := newTestTranslator(t, i18n.WithDefaultLanguage("it"))
		assert.Equal(t, "it", tr.DefaultLanguage())
		assert.Equal(t, []string{"it", "en"}, tr.SupportedLanguages())
	})
}

func TestTranslator_T(t *testing.T) {
	tr := newTestTranslator(t)

	t.Run("substitutes named params", func(t *testing.T) {
		assert.Equal(t, "Enter a numeral or 'q' to quit", tr.T("en", "shell.prompt", "quit", "q"))
		assert.Equal(t, "Inserisci un numero o 'esci' per uscire", tr.T("it", "shell.prompt", "quit", "esci"))
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		assert.Equal(t, "Enter a numeral or '%{quit}' to quit", tr.T("en", "shell.prompt", "other", "x"))
	})

	t.Run("ignores unpaired argument", func(t *testing.T) {
		assert.Equal(t, "Enter a numeral or '%{quit}' to quit", tr.T("en", "shell.prompt", "quit"))
	})

	t.Run("falls back to default language for missing key", func(t *testing.T) {
		assert.Equal(t, "Goodbye", tr.T("it", "shell.bye"))
		assert.Equal(t, "english only", tr.T("it", "only_en"))
	})

	t.Run("falls back to default language for unknown language", func(t *testing.T) {
		assert.Equal(t, "Goodbye", tr.T("fr", "shell.bye"))
	})

	t.Run("falls back to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
		assert.Equal(t, "shell", tr.T("en", "shell"), "non-leaf keys are not messages")
		assert.Equal(t, "count", tr.T("en", "count"), "non-string values are not messages")
	})
}

func TestTranslator_MissingKeyIsLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	tr := newTestTranslator(t, i18n.WithLogger(logger.New(logger.WithOutput(buf))))

	tr.T("en", "nope")
	assert.Contains(t, buf.String(), "Translation not found")
	assert.Contains(t, buf.String(), `"key":"nope"`)
}

func TestTranslator_HasTranslation(t *testing.T) {
	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("en", "shell.prompt"))
	assert.True(t, tr.HasTranslation("it", "shell.prompt"))
	assert.False(t, tr.HasTranslation("it", "shell.bye"))
	assert.False(t, tr.HasTranslation("fr", "shell.prompt"))
	assert.False(t, tr.HasTranslation("en", "shell"))
	assert.False(t, tr.HasTranslation("en", "shell.prompt.deeper"))
}

func TestTranslator_Match(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name        string
		preferences []string
		expected    string
	}{
		{name: "no preference", preferences: nil, expected: "en"},
		{name: "empty header", preferences: []string{""}, expected: "en"},
		{name: "exact tag", preferences: []string{"it"}, expected: "it"},
		{name: "regional tag", preferences: []string{"it-CH"}, expected: "it"},
		{name: "unsupported", preferences: []string{"fr"}, expected: "en"},
		{name: "accept-language header", preferences: []string{"fr-FR, it;q=0.9, en;q=0.5"}, expected: "it"},
		{name: "quality order", preferences: []string{"en;q=0.4, it;q=0.8"}, expected: "it"},
		{name: "garbage", preferences: []string{"!!!"}, expected: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.Match(tt.preferences...))
		})
	}
}

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml":   {Data: []byte("en:\n  greeting: \"Hello, %{name}\"\n")},
		"locales/it.yml":    {Data: []byte("it:\n  greeting: \"Ciao, %{name}\"\n")},
		"locales/README.md": {Data: []byte("ignored")},
	}

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(fsys, "locales", i18n.NewYAMLParser()))
	require.NoError(t, err)
	assert.Equal(t, "Ciao, Marco", tr.T("it", "greeting", "name", "Marco"))
	assert.Equal(t, "Hello, Ann", tr.T("en", "greeting", "name", "Ann"))
}

func TestFSAdapter_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "nope", i18n.NewYAMLParser()).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("broken yaml", func(t *testing.T) {
		fsys := fstest.MapFS{"en.yaml": {Data: []byte("en: [unclosed")}}
		_, err := i18n.NewFSAdapter(fsys, ".", i18n.NewYAMLParser()).Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, ".", i18n.NewYAMLParser()).Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingTranslationsCancelled)
	})
}
