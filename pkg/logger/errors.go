package logger

import "errors"

var (
	// ErrInvalidFormat is returned for an output format other than json or text.
	ErrInvalidFormat = errors.New("invalid log format")
	// ErrInvalidLevel is returned for an unknown level name.
	ErrInvalidLevel = errors.New("invalid log level")
)
