package config

import (
	"strconv"
	"time"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"POSTLINE_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"POSTLINE_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"POSTLINE_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"POSTLINE_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"POSTLINE_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"POSTLINE_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"POSTLINE_REDIS_WRITE_TIMEOUT" env-default:"3s"`
}

// GetAddress возвращает адрес Redis строкой.
func (c *RedisConfig) GetAddress() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// RateLimitConfig содержит настройки ограничения частоты запросов аутентификации.
type RateLimitConfig struct {
	Enabled bool   `yaml:"enabled" env:"POSTLINE_RATE_LIMIT_ENABLED" env-default:"false"`
	Limit   int    `yaml:"limit" env:"POSTLINE_RATE_LIMIT" env-default:"20"`
	Window  string `yaml:"window" env:"POSTLINE_RATE_LIMIT_WINDOW" env-default:"1m"`
}

// GetWindow возвращает длительность окна ограничения.
func (c *RateLimitConfig) GetWindow() time.Duration {
	duration, err := time.ParseDuration(c.Window)
	if err != nil {
		return time.Minute
	}
	return duration
}
