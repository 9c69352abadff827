package main

import (
	"errors"

	"github.com/joeshaw/envdecode"
)

// Config holds environment defaults for the global flags.
type Config struct {
	// Backend is one of file, sqlite or redis. ENV: LENCODER_BACKEND
	Backend string `env:"LENCODER_BACKEND,default=file"`
	// Dir resolves relative handles of the file backend. ENV: LENCODER_DIR
	Dir string `env:"LENCODER_DIR"`
	// Compression of written mappings. ENV: LENCODER_COMPRESSION
	Compression string `env:"LENCODER_COMPRESSION,default=zstd"`
	// RedisAddr like "localhost:6379". ENV: LENCODER_REDIS_ADDR
	RedisAddr string `env:"LENCODER_REDIS_ADDR,default=localhost:6379"`
	// RedisPrefix for all mapping keys. ENV: LENCODER_REDIS_PREFIX
	RedisPrefix string `env:"LENCODER_REDIS_PREFIX,default=lencoder:mapping:"`
	// SQLitePath is the database file of the sqlite backend. ENV: LENCODER_SQLITE_PATH
	SQLitePath string `env:"LENCODER_SQLITE_PATH,default=lencoder.db"`
}

// loadConfig reads the environment. Unset variables keep their defaults.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Backend == "" {
		c.Backend = "file"
	}
	if c.Compression == "" {
		c.Compression = "zstd"
	}
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	if c.RedisPrefix == "" {
		c.RedisPrefix = "lencoder:mapping:"
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "lencoder.db"
	}
}
