package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel         string `env:"LOG_LEVEL"           envDefault:"info"`
	WorkerCount      int    `env:"WORKER_COUNT"        envDefault:"8"`
	BatchSize        int    `env:"BATCH_SIZE"          envDefault:"500"`
	SkipCopyTagsFrom bool   `env:"SKIP_COPY_TAGS_FROM" envDefault:"false"`
	SkipVariations   bool   `env:"SKIP_VARIATIONS"     envDefault:"false"`
	DatabaseURL      string `env:"DATABASE_URL"        envDefault:"postgres://localhost:5432/rawgraph?sslmode=disable"`
	SQLitePath       string `env:"SQLITE_PATH"         envDefault:"rawgraph.db"`
	Neo4jURI         string `env:"NEO4J_URI"           envDefault:"bolt://localhost:7687"`
	Neo4jUser        string `env:"NEO4J_USER"          envDefault:"neo4j"`
	Neo4jPassword    string `env:"NEO4J_PASSWORD"      envDefault:"password"`
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	return &cfg, nil
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
