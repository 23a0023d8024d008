package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// Один экземпляр на пакет: promauto регистрирует коллекторы в default registry
var testMetrics = New("metrics-test")

func TestObserveHTTPRequest(t *testing.T) {
	testMetrics.ObserveHTTPRequest("GET", "/api/v1/companies/{companyId}/settings", 404, 25*time.Millisecond)
	testMetrics.ObserveHTTPRequest("GET", "/api/v1/companies/{companyId}/settings", 404, 10*time.Millisecond)
	testMetrics.ObserveHTTPRequest("PUT", "/api/v1/companies/{companyId}/settings", 200, 5*time.Millisecond)

	// Числовой код ответа попадает в лейбл строкой
	assert.Equal(t, float64(2), testutil.ToFloat64(
		testMetrics.httpRequestsTotal.WithLabelValues("GET", "/api/v1/companies/{companyId}/settings", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		testMetrics.httpRequestsTotal.WithLabelValues("PUT", "/api/v1/companies/{companyId}/settings", "200")))
}

func TestObserveDBQuery(t *testing.T) {
	testMetrics.ObserveDBQuery("settings.GetByCompany", time.Millisecond, nil)
	testMetrics.ObserveDBQuery("settings.GetByCompany", time.Millisecond, errors.New("boom"))

	assert.Equal(t, float64(1), testutil.ToFloat64(
		testMetrics.dbQueriesTotal.WithLabelValues("settings.GetByCompany", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		testMetrics.dbQueriesTotal.WithLabelValues("settings.GetByCompany", "error")))
}

func TestObserveCacheLookup(t *testing.T) {
	testMetrics.ObserveCacheLookup("daily_slots", "hit")
	testMetrics.ObserveCacheLookup("daily_slots", "miss")
	testMetrics.ObserveCacheLookup("daily_slots", "miss")
	testMetrics.ObserveCacheLookup("calendar_meta", "error")

	assert.Equal(t, float64(1), testutil.ToFloat64(
		testMetrics.cacheRequestsTotal.WithLabelValues("daily_slots", "hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(
		testMetrics.cacheRequestsTotal.WithLabelValues("daily_slots", "miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		testMetrics.cacheRequestsTotal.WithLabelValues("calendar_meta", "error")))
}

func TestSetDBPoolStats(t *testing.T) {
	testMetrics.SetDBPoolStats("postgres", 10, 7, 3)

	assert.Equal(t, float64(10), testutil.ToFloat64(testMetrics.dbConnectionsOpen.WithLabelValues("postgres")))
	assert.Equal(t, float64(7), testutil.ToFloat64(testMetrics.dbConnectionsIdle.WithLabelValues("postgres")))
	assert.Equal(t, float64(3), testutil.ToFloat64(testMetrics.dbConnectionsInUse.WithLabelValues("postgres")))
}
