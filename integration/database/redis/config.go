package redis

import "time"

// Config holds Redis connection settings.
type Config struct {
	ConnectionURL string        `env:"REDIS_URL,required"`
	RetryAttempts uint64        `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`
}
