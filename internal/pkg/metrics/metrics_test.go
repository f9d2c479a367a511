//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estate-booking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()

	m.Submission("succeeded")
	m.Submission("succeeded")
	m.Submission("conflict")
	m.ObserveRemote("check_range", "ok", 20*time.Millisecond)
	m.SetWizardsOpen(3)

	t.Run("exposes registered series", func(t *testing.T) {
		n, err := testutil.GatherAndCount(m.Registry(), "booking_submissions_total")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("serves the registry over http", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "booking_wizards_open 3")
		assert.Contains(t, rec.Body.String(), `marketplace_requests_total{operation="check_range",outcome="ok"} 1`)
	})
}
