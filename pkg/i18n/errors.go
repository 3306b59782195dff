package i18n

import "errors"

var (
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrLoadingTranslationsCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory        = errors.New("failed to read translations directory")
	ErrFailedToReadFile             = errors.New("failed to read translation file")

	ErrNilAdapter       = errors.New("translation adapter is nil")
	ErrNoTranslations   = errors.New("no translations loaded")
	ErrDefaultLangEmpty = errors.New("default language has no translations")
)
