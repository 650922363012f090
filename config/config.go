package config

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"os"
	"strconv"
	"strings"
)

const (
	MEMORY_BACKEND  = "memory"
	ELASTIC_BACKEND = "elastic"
)

type Config struct {
	Port         int
	GraphQLPath  string
	GraphiQL     bool
	Backend      string
	ElasticURL   string
	ElasticIndex string
	RedisURL     string
	ActivitySize int
	LogLevel     string
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads the configuration from the environment, after loading an
// optional .env file from the working directory.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "loading .env")
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:         4000,
		GraphQLPath:  "/library/books",
		GraphiQL:     true,
		Backend:      MEMORY_BACKEND,
		ElasticURL:   getenv("ELASTIC_URL"),
		ElasticIndex: "books",
		RedisURL:     getenv("REDIS_URL"),
		ActivitySize: 3,
		LogLevel:     "info",
	}

	var err error
	if v := getenv("PORT"); v != "" {
		if cfg.Port, err = strconv.Atoi(v); err != nil {
			return Config{}, errors.Wrapf(err, "PORT %q", v)
		}
	}
	if v := getenv("GRAPHQL_PATH"); v != "" {
		if !strings.HasPrefix(v, "/") {
			return Config{}, errors.Errorf("GRAPHQL_PATH %q must start with /", v)
		}
		cfg.GraphQLPath = v
	}
	if v := getenv("GRAPHIQL"); v != "" {
		if cfg.GraphiQL, err = strconv.ParseBool(v); err != nil {
			return Config{}, errors.Wrapf(err, "GRAPHIQL %q", v)
		}
	}
	if v := getenv("LIBRARY_BACKEND"); v != "" {
		switch v {
		case MEMORY_BACKEND, ELASTIC_BACKEND:
			cfg.Backend = v
		default:
			return Config{}, errors.Errorf("LIBRARY_BACKEND %q is neither %s nor %s", v, MEMORY_BACKEND, ELASTIC_BACKEND)
		}
	}
	if cfg.Backend == ELASTIC_BACKEND && cfg.ElasticURL == "" {
		return Config{}, errors.New("ELASTIC_URL is required by the elastic backend")
	}
	if v := getenv("ELASTIC_INDEX"); v != "" {
		cfg.ElasticIndex = v
	}
	if v := getenv("ACTIVITY_SIZE"); v != "" {
		if cfg.ActivitySize, err = strconv.Atoi(v); err != nil {
			return Config{}, errors.Wrapf(err, "ACTIVITY_SIZE %q", v)
		}
		if cfg.ActivitySize < 1 {
			return Config{}, errors.Errorf("ACTIVITY_SIZE %d must be positive", cfg.ActivitySize)
		}
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = v
		default:
			return Config{}, errors.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", v)
		}
	}

	return cfg, nil
}
