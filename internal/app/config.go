package app

import (
	"github.com/dmitrymomot/roman/pkg/config"
	"github.com/dmitrymomot/roman/pkg/httpserver"
)

// Config holds the application settings, read from the environment and an
// optional .env file.
type Config struct {
	Quit      string `env:"ROMAN_QUIT" envDefault:"q"`
	Lang      string `env:"ROMAN_LANG" envDefault:"en"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	HTTP httpserver.Config
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
