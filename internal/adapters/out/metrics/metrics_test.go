package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entregas/internal/adapters/out/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.TokenRefreshed(nil)
		m.Pulled(3, nil)
		m.Pushed(errors.New("boom"))
		m.CycleFinished(time.Second)
		m.AwaitingSync(2)
		m.HTTPRequest("/health", http.MethodGet, 200, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.TokenRefreshed(nil)
	m.Pulled(2, nil)
	m.Pulled(0, errors.New("unavailable"))
	m.Pushed(nil)
	m.CycleFinished(2 * time.Second)
	m.AwaitingSync(5)
	m.HTTPRequest("/api/v1/orders", http.MethodGet, 200, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, `entregas_token_refreshes_total{result="success"} 1`)
	assert.Contains(t, text, `entregas_sync_pulls_total{result="failure"} 1`)
	assert.Contains(t, text, "entregas_sync_orders_created_total 2")
	assert.Contains(t, text, "entregas_orders_awaiting_sync 5")
	assert.Contains(t, text, `entregas_http_requests_total{method="GET",route="/api/v1/orders",status="200"} 1`)
	assert.Contains(t, text, "go_goroutines")
}
