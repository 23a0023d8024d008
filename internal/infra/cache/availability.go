package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dailySlotsKeyPrefix   = "availability:daily:"
	calendarMetaKeyPrefix = "availability:meta:"
)

// MetricsCollector интерфейс сбора метрик обращений к кэшу
type MetricsCollector interface {
	ObserveCacheLookup(endpoint, result string)
}

// AvailabilityCache короткоживущий кэш ответов о доступности поверх redis.
//
// Результаты зависят от "сейчас" (дедлайны, прошедшие дни), поэтому момент
// времени входит в ключ, усечённый до TTL: пока окно не истекло, все
// запросы попадают в один ключ, после - ключ меняется сам. TTL не должен
// превышать гранулярность дедлайна бронирования.
type AvailabilityCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	metrics MetricsCollector // nil, если метрики выключены
}

// New создает кэш доступности. ttl - окно актуальности ответа.
func New(rdb *redis.Client, ttl time.Duration, metrics MetricsCollector) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: ttl, metrics: metrics}
}

// DailySlotsKey ключ кэша для ответа GetDailySlots
func (c *AvailabilityCache) DailySlotsKey(companyID, serviceID, resourceID int64, date, timezone string, now time.Time) string {
	return fmt.Sprintf("%s%d:%d:%d:%s:%s:%d",
		dailySlotsKeyPrefix, companyID, serviceID, resourceID, date, timezone, now.Truncate(c.ttl).Unix())
}

// CalendarMetaKey ключ кэша для ответа GetCalendarMeta
func (c *AvailabilityCache) CalendarMetaKey(companyID, serviceID, resourceID int64, year int, month int, timezone string, now time.Time) string {
	return fmt.Sprintf("%s%d:%d:%d:%04d-%02d:%s:%d",
		calendarMetaKeyPrefix, companyID, serviceID, resourceID, year, month, timezone, now.Truncate(c.ttl).Unix())
}

// GetJSON читает и десериализует значение по ключу.
// Возвращает false без ошибки при промахе.
func (c *AvailabilityCache) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		c.observe(key, "miss")
		return false, nil
	}
	if err != nil {
		c.observe(key, "error")
		return false, fmt.Errorf("cache: get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.observe(key, "error")
		return false, fmt.Errorf("cache: unmarshal %s: %w", key, err)
	}

	c.observe(key, "hit")
	return true, nil
}

// SetJSON сериализует и сохраняет значение с TTL кэша
func (c *AvailabilityCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}

	return nil
}

func (c *AvailabilityCache) observe(key, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveCacheLookup(endpointFromKey(key), result)
}

// endpointFromKey восстанавливает лейбл endpoint из неймспейса ключа
func endpointFromKey(key string) string {
	switch {
	case strings.HasPrefix(key, dailySlotsKeyPrefix):
		return "daily_slots"
	case strings.HasPrefix(key, calendarMetaKeyPrefix):
		return "calendar_meta"
	default:
		return "unknown"
	}
}
