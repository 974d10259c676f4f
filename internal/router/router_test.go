package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zoo-dashboard/internal/config"
	"zoo-dashboard/internal/platform/metrics"
	"zoo-dashboard/internal/router"
)

func testConfig(seed bool) *config.Config {
	cfg := config.Default()
	cfg.Auth.DevMode = true
	cfg.Session.LoginDelay = 0
	cfg.Seed.Enabled = seed
	return cfg
}

func newServer(t *testing.T, cfg *config.Config, m *metrics.Metrics) *httptest.Server {
	t.Helper()
	h, err := router.NewRouter(router.Options{
		Config:  cfg,
		Metrics: m,
		Rand:    rand.New(rand.NewPCG(1, 2)),
		SeedNow: time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_AnimalsCRUD(t *testing.T) {
	ts := newServer(t, testConfig(false), nil)
	userID := "keeper-1"

	// 1) Alta
	var created map[string]any
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", userID, map[string]any{
			"name":          "Leo",
			"species":       "Lion",
			"gender":        "Male",
			"age":           5,
			"health_status": "Healthy",
			"location":      "Savanna",
			"arrival_date":  "2021-03-15",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
		}
		mustJSON(t, body, &created)
	}
	id, _ := created["id"].(string)
	if len(id) != 8 {
		t.Fatalf("expected 8-char id, got %q", id)
	}

	// 2) PATCH parcial: solo cambia health_status
	{
		st, body := doReq(t, ts.URL, "PATCH", "/animals/"+id, userID, map[string]any{
			"health_status": "Critical",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch animal, got %d body=%s", st, string(body))
		}
		var got map[string]any
		mustJSON(t, body, &got)
		if got["health_status"] != "Critical" || got["name"] != "Leo" || got["location"] != "Savanna" {
			t.Fatalf("unexpected patched animal: %v", got)
		}
	}

	// 3) PATCH a un id inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/animals/nope0000", userID, map[string]any{"name": "x"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 patch missing animal, got %d", st)
		}
	}

	// 4) Listado con búsqueda sin distinguir mayúsculas
	{
		st, body := doReq(t, ts.URL, "GET", "/animals?q=LIO", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list animals, got %d body=%s", st, string(body))
		}
		var page struct {
			Items []map[string]any `json:"items"`
			Total int              `json:"total"`
		}
		mustJSON(t, body, &page)
		if page.Total != 1 || len(page.Items) != 1 {
			t.Fatalf("expected 1 match, got total=%d items=%d", page.Total, len(page.Items))
		}
	}

	// 5) Baja (dos veces: la segunda también 204)
	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "DELETE", "/animals/"+id, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete animal (try %d), got %d body=%s", i+1, st, string(body))
		}
	}

	// 6) Ya no existe
	{
		st, _ := doReq(t, ts.URL, "GET", "/animals/"+id, userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_Listing_SortAndPagination(t *testing.T) {
	ts := newServer(t, testConfig(true), nil)
	userID := "keeper-1"

	{
		st, body := doReq(t, ts.URL, "GET", "/animals?sort=favorite_color", userID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown sort field, got %d body=%s", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/animals?sort=age&order=desc&page=999", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list animals, got %d body=%s", st, string(body))
		}
		var page struct {
			Items      []map[string]any `json:"items"`
			Page       int              `json:"page"`
			PageSize   int              `json:"page_size"`
			Total      int              `json:"total"`
			TotalPages int              `json:"total_pages"`
		}
		mustJSON(t, body, &page)
		if page.PageSize != 5 {
			t.Fatalf("expected default page size 5, got %d", page.PageSize)
		}
		if page.Total != config.Default().Seed.Animals {
			t.Fatalf("expected %d seeded animals, got %d", config.Default().Seed.Animals, page.Total)
		}
		if page.Page != page.TotalPages {
			t.Fatalf("expected page clamped to %d, got %d", page.TotalPages, page.Page)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/resources?status=Low%20Stock&page_size=100", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list resources, got %d body=%s", st, string(body))
		}
		var page struct {
			Items []map[string]any `json:"items"`
		}
		mustJSON(t, body, &page)
		for _, it := range page.Items {
			if it["status"] != "Low Stock" {
				t.Fatalf("status filter leaked %v", it["status"])
			}
		}
	}
}

func TestHTTP_ResourcesAndReports(t *testing.T) {
	ts := newServer(t, testConfig(false), nil)
	userID := "keeper-1"

	var resourceID string
	{
		st, body := doReq(t, ts.URL, "POST", "/resources", userID, map[string]any{
			"name":            "Antibiotics",
			"category":        "Medical",
			"quantity":        3,
			"unit":            "boxes",
			"status":          "Available",
			"last_restocked":  "2025-01-10",
			"expiration_date": "2026-01-10",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create resource, got %d body=%s", st, string(body))
		}
		var got map[string]any
		mustJSON(t, body, &got)
		resourceID, _ = got["id"].(string)
	}

	// quantity 0 no cambia el estado; expiration_date null lo limpia
	{
		st, body := doReq(t, ts.URL, "PATCH", "/resources/"+resourceID, userID, map[string]any{
			"quantity":        0,
			"expiration_date": nil,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch resource, got %d body=%s", st, string(body))
		}
		var got map[string]any
		mustJSON(t, body, &got)
		if got["status"] != "Available" {
			t.Fatalf("status must not follow quantity, got %v", got["status"])
		}
		if _, ok := got["expiration_date"]; ok {
			t.Fatalf("expected expiration_date cleared, got %v", got["expiration_date"])
		}
	}

	// Alta y PATCH rechazan campos desconocidos por igual
	{
		st, _ := doReq(t, ts.URL, "POST", "/resources", userID, map[string]any{
			"name":           "Hay",
			"category":       "Food",
			"quantity":       10,
			"unit":           "kg",
			"status":         "Available",
			"last_restocked": "2025-01-10",
			"colour":         "green",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown field on create, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "PATCH", "/resources/"+resourceID, userID, map[string]any{"colour": "green"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown field on patch, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/reports", userID, map[string]any{
			"title": "x", "category": "Health", "date": "2025-01-01", "author": "Ana", "pages": 3,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown field on report create, got %d", st)
		}
	}

	// expiration_date como fecha la reemplaza
	{
		st, body := doReq(t, ts.URL, "PATCH", "/resources/"+resourceID, userID, map[string]any{
			"expiration_date": "2027-02-01",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch expiration, got %d body=%s", st, string(body))
		}
		var got map[string]any
		mustJSON(t, body, &got)
		if got["expiration_date"] != "2027-02-01" || got["quantity"] != float64(0) {
			t.Fatalf("unexpected resource after expiration patch: %v", got)
		}
	}

	var reportID string
	{
		st, body := doReq(t, ts.URL, "POST", "/reports", userID, map[string]any{
			"title":    "Monthly Inventory",
			"category": "Inventory",
			"date":     "2025-03-31",
			"author":   "Ana",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create report, got %d body=%s", st, string(body))
		}
		var got map[string]any
		mustJSON(t, body, &got)
		reportID, _ = got["id"].(string)
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/reports/"+reportID+"/file", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 report file, got %d body=%s", st, string(body))
		}
		var got map[string]any
		mustJSON(t, body, &got)
		if got["id"] != reportID || got["placeholder"] != true || got["url"] == "" {
			t.Fatalf("expected placeholder file url, got %v", got)
		}
	}

	{
		st, _ := doReq(t, ts.URL, "GET", "/reports/missing1/file", userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 file of missing report, got %d", st)
		}
	}
}

func TestHTTP_Dashboard(t *testing.T) {
	ts := newServer(t, testConfig(true), nil)
	userID := "keeper-1"

	var health struct {
		Counts struct {
			Healthy    int `json:"healthy"`
			Concerning int `json:"concerning"`
			Critical   int `json:"critical"`
		} `json:"counts"`
		Distribution []struct {
			Name  string `json:"name"`
			Value int    `json:"value"`
		} `json:"distribution"`
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard/health", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard health, got %d body=%s", st, string(body))
		}
		mustJSON(t, body, &health)
	}
	sum := health.Counts.Healthy + health.Counts.Concerning + health.Counts.Critical
	if sum != config.Default().Seed.Animals {
		t.Fatalf("health counts must cover every animal, got %d", sum)
	}
	if len(health.Distribution) != 3 {
		t.Fatalf("expected 3 health buckets, got %d", len(health.Distribution))
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard/population-trend", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 population trend, got %d body=%s", st, string(body))
		}
		var pts []map[string]any
		mustJSON(t, body, &pts)
		if len(pts) != 6 {
			t.Fatalf("expected 6 monthly points, got %d", len(pts))
		}
	}
}

func TestHTTP_SessionFlow(t *testing.T) {
	cfg := testConfig(false)
	cfg.Auth.DevMode = false
	ts := newServer(t, cfg, nil)

	// Sin sesión => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/animals", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without session, got %d", st)
		}
	}

	// Sin devMode el header de debug no alcanza
	{
		st, _ := doReq(t, ts.URL, "GET", "/animals", "keeper-1", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 with debug header outside dev mode, got %d", st)
		}
	}

	var token string
	{
		st, body := doReq(t, ts.URL, "POST", "/session/login", "", map[string]any{
			"email":       "keeper@zoo.test",
			"password":    "anything",
			"remember_me": true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var got map[string]any
		mustJSON(t, body, &got)
		token, _ = got["token"].(string)
		if !strings.HasPrefix(token, "demo-token-") {
			t.Fatalf("unexpected token %q", token)
		}
	}

	{
		st, body := doReqToken(t, ts.URL, "GET", "/dashboard/overview", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 with bearer token, got %d body=%s", st, string(body))
		}
	}

	// Logout sin credenciales no toca la sesión
	{
		st, _ := doReq(t, ts.URL, "POST", "/session/logout", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 anonymous logout, got %d", st)
		}
		st, body := doReqToken(t, ts.URL, "GET", "/dashboard/overview", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected session to survive anonymous logout, got %d body=%s", st, string(body))
		}
	}

	{
		st, _ := doReqToken(t, ts.URL, "POST", "/session/logout", token, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 logout, got %d", st)
		}
	}

	{
		st, _ := doReqToken(t, ts.URL, "GET", "/dashboard/overview", token, nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := newServer(t, testConfig(true), metrics.New())

	{
		st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
		}
	}

	_, _ = doReq(t, ts.URL, "GET", "/animals", "keeper-1", nil)

	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
		if !strings.Contains(string(body), `route="/animals",status="200"`) {
			t.Fatalf("expected /animals request in metrics, got:\n%s", string(body))
		}
	}
}

// Helpers

func doReq(t *testing.T, baseURL, method, path, userID string, payload any) (int, []byte) {
	t.Helper()
	headers := map[string]string{}
	if userID != "" {
		headers["X-Debug-User-ID"] = userID
	}
	return send(t, baseURL, method, path, headers, payload)
}

func doReqToken(t *testing.T, baseURL, method, path, token string, payload any) (int, []byte) {
	t.Helper()
	return send(t, baseURL, method, path, map[string]string{"Authorization": "Bearer " + token}, payload)
}

func send(t *testing.T, baseURL, method, path string, headers map[string]string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func mustJSON(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("decode json: %v body=%s", err, string(b))
	}
}
