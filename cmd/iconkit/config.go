package main

import (
	"time"

	"github.com/dmitrymomot/iconkit/pkg/httpserver"
	"github.com/dmitrymomot/iconkit/pkg/redis"
	"github.com/dmitrymomot/iconkit/pkg/resource"
)

// Sources an icon tree can be served from.
const (
	sourceEmbed = "embed"
	sourceDir   = "dir"
	sourceS3    = "s3"
	sourceRedis = "redis"
)

// Config is read from ICONKIT_* variables (and .env); flags override it.
type Config struct {
	Env       string        `env:"ICONKIT_ENV" envDefault:"development"`
	LogLevel  string        `env:"ICONKIT_LOG_LEVEL"`
	Source    string        `env:"ICONKIT_SOURCE" envDefault:"embed"`
	Dir       string        `env:"ICONKIT_DIR"`
	Catalog   string        `env:"ICONKIT_CATALOG"`
	CacheSize int           `env:"ICONKIT_CACHE_SIZE" envDefault:"2048"`
	Timeout   time.Duration `env:"ICONKIT_TIMEOUT" envDefault:"30s"`

	HTTP        httpserver.Config `envPrefix:"ICONKIT_HTTP_"`
	Redis       redis.Config      `envPrefix:"ICONKIT_REDIS_"`
	RedisPrefix string            `env:"ICONKIT_REDIS_PREFIX" envDefault:"icons:"`
	S3          resource.S3Config `envPrefix:"ICONKIT_"`
}
