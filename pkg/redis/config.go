package redis

import "time"

// Config describes a redis connection. Variable names are relative; nest it
// with an envPrefix such as "ICONKIT_REDIS_".
type Config struct {
	URL            string        `env:"URL" envDefault:"redis://localhost:6379/0"` // redis://:password@host:6379/0
	RetryAttempts  int           `env:"RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"RETRY_INTERVAL" envDefault:"2s"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"15s"`
}
