//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"court-slot-engine/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()
	m.BookingOutcome("success")
	m.BookingOutcome("success")
	m.BookingOutcome("unavailable")
	m.Cancellation(true)
	m.SlotsMaterialized(10)
	m.ObserveHTTP(http.MethodGet, "/api/resources/:id/slots", http.StatusOK, 15*time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry(), "slot_engine_bookings_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `slot_engine_materialized_slots_total 10`)
	assert.Contains(t, rec.Body.String(), `slot_engine_http_requests_total{method="GET",route="/api/resources/:id/slots",status="200"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.BookingOutcome("success")
		m.Cancellation(false)
		m.SlotsMaterialized(3)
		m.OutboxPublished("sent")
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}
