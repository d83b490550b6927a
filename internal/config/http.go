package config

import (
	"fmt"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host            string        `yaml:"host" env:"POSTLINE_HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"POSTLINE_HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"POSTLINE_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"POSTLINE_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	MaxPayloadBytes int           `yaml:"max_payload_bytes" env:"POSTLINE_HTTP_MAX_PAYLOAD_BYTES" env-default:"1000000"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
