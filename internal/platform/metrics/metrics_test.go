package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_StoreCollectors(t *testing.T) {
	m := New()

	m.StoreMutation("animals", "create")
	m.StoreMutation("animals", "create")
	m.StoreSize("animals", 7)

	if got := testutil.ToFloat64(m.mutations.WithLabelValues("animals", "create")); got != 2 {
		t.Fatalf("expected 2 mutations, got %v", got)
	}
	if got := testutil.ToFloat64(m.size.WithLabelValues("animals")); got != 7 {
		t.Fatalf("expected size 7, got %v", got)
	}
}

func TestMetrics_HandlerExposesHTTPMetrics(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/animals/", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `zoo_dashboard_http_requests_total{method="GET",route="/animals/",status="200"} 1`) {
		t.Fatalf("expected request counter in output, got:\n%s", body)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.StoreMutation("animals", "create")
	m.StoreSize("animals", 1)
	m.ObserveHTTP(http.MethodGet, "", http.StatusOK, time.Millisecond)
}
