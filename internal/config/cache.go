package config

import "time"

// CacheConfig содержит настройки кэша списков постов.
type CacheConfig struct {
	MaxEntries int    `yaml:"max_entries" env:"POSTLINE_CACHE_MAX_ENTRIES" env-default:"100"`
	TTL        string `yaml:"ttl" env:"POSTLINE_CACHE_TTL" env-default:"300s"`
}

// GetTTL возвращает время жизни записи кэша.
func (c *CacheConfig) GetTTL() time.Duration {
	duration, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 300 * time.Second
	}
	return duration
}
