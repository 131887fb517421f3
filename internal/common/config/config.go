package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"5000"`
		Origin string `env:"ORIGIN" envDefault:"*"`
	}

	// Redis connection string, e.g. redis://:password@localhost:6379/0
	DatabaseURL string `env:"DATABASE_URL,required"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env is optional; in production the variables are set directly
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
