// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment
//     (the default `.env` when no path is given). Existing variables win.
//   - Load parses the environment into any struct annotated with `env` and
//     `envDefault` tags. The default `.env` is read once, lazily, before the
//     first parse.
//   - MustLoadEnv and MustLoad panic instead of returning an error, for
//     configuration the program cannot start without.
//
// # Usage
//
//	type Config struct {
//	    Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap one of the package sentinels and can be tested with
// `errors.Is`: ErrParsingConfig, ErrLoadingEnvFile and ErrNilPointer.
package config
