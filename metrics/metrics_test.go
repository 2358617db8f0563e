package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prior-it/customers/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	m := metrics.New()
	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/customers/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.Get("/metrics", m.Handler().ServeHTTP)

	for _, id := range []string{"1", "2", "3"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/customers/"+id, nil))
		require.Equal(t, http.StatusNotFound, recorder.Code)
	}

	t.Run("ok: requests are labeled by route pattern", func(t *testing.T) {
		assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
	})

	t.Run("ok: metrics endpoint exposes collectors", func(t *testing.T) {
		m.IncrementCustomersAdded()
		m.ObserveAddressUpdate(true)
		m.ObserveAddressUpdate(false)
		m.ObserveAddressUpdate(false)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, recorder.Code)
		body, err := io.ReadAll(recorder.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `customers_http_request_duration_seconds_count{method="GET",route="/customers/{id}",status="404"} 3`)
		assert.Contains(t, string(body), "customers_added_total 1")
		assert.Contains(t, string(body), `customers_address_updates_total{result="unconfirmed"} 2`)
		assert.Contains(t, string(body), "go_goroutines")
	})
}

func TestNewIsolated(t *testing.T) {
	first := metrics.New()
	second := metrics.New()
	first.IncrementCustomersAdded()
	assert.InDelta(t, 1.0, testutil.ToFloat64(first.CustomersAdded), 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(second.CustomersAdded), 0)
}
