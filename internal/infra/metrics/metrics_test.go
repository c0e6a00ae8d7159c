package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

var (
	_ middleware.RequestObserver = (*Metrics)(nil)
	_ adapter.SeriesRecorder     = (*Metrics)(nil)
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestMetrics_RecordSeries(t *testing.T) {
	m := New()

	m.RecordSeries("debt", "installment", 3)
	m.RecordSeries("debt", "installment", 12)
	m.RecordSeries("transaction", "recurring", 6)

	body := scrape(t, m)
	assert.Contains(t, body, `ledger_records_materialized_total{kind="debt",mode="installment"} 15`)
	assert.Contains(t, body, `ledger_records_materialized_total{kind="transaction",mode="recurring"} 6`)
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodPost, "/api/v1/debts", http.StatusCreated, 20*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/api/v1/debts", http.StatusCreated, 30*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `ledger_http_requests_total{method="POST",route="/api/v1/debts",status="201"} 2`)
	assert.Contains(t, body, `ledger_http_request_duration_seconds_count{method="POST",route="/api/v1/debts"} 2`)
}
