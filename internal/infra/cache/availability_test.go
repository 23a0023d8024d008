package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCollector struct {
	lookups [][2]string
}

func (f *fakeCollector) ObserveCacheLookup(endpoint, result string) {
	f.lookups = append(f.lookups, [2]string{endpoint, result})
}

func TestEndpointFromKey(t *testing.T) {
	c := New(nil, time.Minute, nil)
	now := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)

	daily := c.DailySlotsKey(1, 2, 0, "2026-03-04", "UTC", now)
	assert.Equal(t, "daily_slots", endpointFromKey(daily))

	meta := c.CalendarMetaKey(1, 2, 0, 2026, 3, "UTC", now)
	assert.Equal(t, "calendar_meta", endpointFromKey(meta))

	assert.Equal(t, "unknown", endpointFromKey("other:namespace:key"))
}

// Момент времени входит в ключ усечённым до TTL: внутри окна ключ стабилен,
// при переходе окна меняется
func TestKeys_TruncatedNowWindow(t *testing.T) {
	c := New(nil, time.Minute, nil)

	early := time.Date(2026, time.March, 4, 12, 0, 5, 0, time.UTC)
	late := time.Date(2026, time.March, 4, 12, 0, 55, 0, time.UTC)
	nextWindow := time.Date(2026, time.March, 4, 12, 1, 5, 0, time.UTC)

	assert.Equal(t,
		c.DailySlotsKey(1, 2, 0, "2026-03-04", "UTC", early),
		c.DailySlotsKey(1, 2, 0, "2026-03-04", "UTC", late))
	assert.NotEqual(t,
		c.DailySlotsKey(1, 2, 0, "2026-03-04", "UTC", early),
		c.DailySlotsKey(1, 2, 0, "2026-03-04", "UTC", nextWindow))
}

func TestObserve(t *testing.T) {
	collector := &fakeCollector{}
	c := New(nil, time.Minute, collector)
	now := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)

	c.observe(c.DailySlotsKey(1, 2, 0, "2026-03-04", "UTC", now), "hit")
	c.observe(c.CalendarMetaKey(1, 2, 0, 2026, 3, "UTC", now), "miss")

	require.Len(t, collector.lookups, 2)
	assert.Equal(t, [2]string{"daily_slots", "hit"}, collector.lookups[0])
	assert.Equal(t, [2]string{"calendar_meta", "miss"}, collector.lookups[1])
}

// Без коллектора observe не паникует
func TestObserve_NoCollector(t *testing.T) {
	c := New(nil, time.Minute, nil)
	c.observe("availability:daily:1", "miss")
}
