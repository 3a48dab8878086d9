package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveMessage_CountsByOutcome(t *testing.T) {
	m := New()

	m.ObserveMessage("register", "nats", OutcomeProcessed, 10*time.Millisecond)
	m.ObserveMessage("register", "nats", OutcomeProcessed, 5*time.Millisecond)
	m.ObserveMessage("delete", "push", OutcomeRejected, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.messagesTotal.WithLabelValues("register", "nats", OutcomeProcessed)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.messagesTotal.WithLabelValues("delete", "push", OutcomeRejected)), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.messageLatency))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveHTTP("/health", http.MethodGet, "200", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "monitoring_http_requests_total")
}
