// Package i18n provides a small translation catalog for user-facing
// messages.
//
// Translations are nested key trees per language, loaded through a
// TranslationAdapter. FSAdapter reads YAML files from any fs.FS (an
// embed.FS in production, fstest.MapFS in tests):
//
//	en:
//	  shell:
//	    prompt: "Enter a Roman numeral, or '%{quit}' to quit"
//
// Keys are addressed with dots ("shell.prompt") and placeholders use the
// %{name} syntax, filled from name/value argument pairs:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales.FS, ".", i18n.NewYAMLParser()))
//	msg := tr.T("it", "shell.prompt", "quit", "q")
//
// Match negotiates a language from tags or Accept-Language header values
// using golang.org/x/text/language, falling back to the default language.
//
// A Translator never changes after NewTranslator returns and is safe for
// concurrent use.
package i18n
