package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountError_Increments(t *testing.T) {
	m := NewIsolated("test")

	m.CountError("inbox")
	m.CountError("inbox")

	assert.InDelta(t, 2, testutil.ToFloat64(m.Errors.WithLabelValues("inbox")), 0)
}

func TestCountError_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() { m.CountError("inbox") })
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := NewIsolated("test")
	m.WebhookEvents.WithLabelValues("enqueued").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `test_webhook_events_total{outcome="enqueued"} 1`)
}
