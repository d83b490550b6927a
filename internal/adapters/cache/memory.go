// Package cache содержит внутрипроцессную реализацию кэша списков постов.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"postline/internal/domain/entities"
	"postline/internal/ports/cache"
	"postline/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet   = "get"
	LogMethodSet   = "set"
	LogMethodClear = "clear"

	MsgCacheHit     = "listing cache hit"
	MsgCacheMiss    = "listing cache miss"
	MsgCacheStored  = "listing cached"
	MsgCacheCleared = "listing cache cleared"
)

// MemoryCache реализует интерфейс ListingCache поверх ограниченного LRU
// с истечением записей по TTL. Кэш локален для процесса: инстансы
// сервиса не координируют содержимое между собой.
type MemoryCache struct {
	lru *expirable.LRU[string, []entities.PostSummary]
}

// NewMemoryCache создает новый кэш с ограничением на число записей и TTL.
func NewMemoryCache(maxEntries int, ttl time.Duration) cache.ListingCache {
	return &MemoryCache{
		lru: expirable.NewLRU[string, []entities.PostSummary](maxEntries, nil, ttl),
	}
}

// Get возвращает закэшированный список постов пользователя.
// Записи старше TTL считаются отсутствующими.
func (c *MemoryCache) Get(ctx context.Context, userID string) ([]entities.PostSummary, bool) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("userID", userID))

	posts, ok := c.lru.Get(userID)
	if !ok {
		log.Debug(ctx, MsgCacheMiss)
		return nil, false
	}

	log.Debug(ctx, MsgCacheHit)
	return posts, true
}

// Set сохраняет список постов пользователя, вытесняя самую старую запись
// при превышении ограничения на размер.
func (c *MemoryCache) Set(ctx context.Context, userID string, posts []entities.PostSummary) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.String("userID", userID))

	c.lru.Add(userID, posts)
	log.Debug(ctx, MsgCacheStored, zap.Int("count", len(posts)))
}

// Clear безусловно сбрасывает все записи кэша.
func (c *MemoryCache) Clear(ctx context.Context) {
	c.lru.Purge()
	logger.Log(ctx).Debug(ctx, MsgCacheCleared)
}

// Len возвращает текущее число записей в кэше.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}
