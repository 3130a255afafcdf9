package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Address string        `yaml:"address" env:"HTTP_SERVER_ADDRESS" env-default:":8080"`
	Timeout time.Duration `yaml:"timeout" env:"HTTP_SERVER_TIMEOUT" env-default:"5s"`
}

type Config struct {
	LogLevel          string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	WordsAddress      string        `yaml:"words_address" env:"WORDS_ADDRESS" env-default:"localhost:8081"`
	SearchAddress     string        `yaml:"search_address" env:"SEARCH_ADDRESS" env-default:"localhost:8082"`
	UpdateAddress     string        `yaml:"update_address" env:"UPDATE_ADDRESS" env-default:"localhost:8083"`
	TokenTTL          time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"2h"`
	SearchRate        int           `yaml:"search_rate" env:"SEARCH_RATE" env-default:"100"`
	SearchConcurrency int           `yaml:"search_concurrency" env:"SEARCH_CONCURRENCY" env-default:"10"`
	HTTPServer        HTTPServer    `yaml:"http_server"`
}

func MustLoad(configPath string) Config {
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}
