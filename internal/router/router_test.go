package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"horse-medical-records/internal/adapters/notify/lognotify"
	"horse-medical-records/internal/adapters/storage/memory"
	"horse-medical-records/internal/app"
	"horse-medical-records/internal/platform/config"
	"horse-medical-records/internal/ports/ids"
	"horse-medical-records/internal/ports/notify"
	"horse-medical-records/internal/router"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newServer(t *testing.T) (*httptest.Server, *lognotify.Recorder) {
	t.Helper()
	a := app.Assemble(app.Parts{
		Config: config.Config{SeedHorses: 15},
		KV:     memory.NewKV(),
		Roster: memory.NewDemoRoster(),
		IDs:    &ids.Counter{Prefix: "rec"},
		Now:    func() time.Time { return fixedNow },
	})
	rec := &lognotify.Recorder{}
	ts := httptest.NewServer(router.NewRouter(router.Options{App: a, Notifier: rec}))
	t.Cleanup(ts.Close)
	return ts, rec
}

func TestHTTP_EndToEnd_HorseHistory(t *testing.T) {
	ts, notes := newServer(t)

	// 1) Roster
	{
		st, body := doReq(t, ts.URL, "GET", "/horses", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing horses, got %d", st)
		}
		var list []map[string]any
		mustUnmarshal(t, body, &list)
		if len(list) != 20 {
			t.Fatalf("expected 20 horses, got %d", len(list))
		}
	}

	// 2) Dos pesajes fuera de orden; el historial sale por fecha desc
	createWeight(t, ts.URL, "h01", map[string]any{"weightKg": 512.5, "dateTime": "2026-01-10T08:00"})
	createWeight(t, ts.URL, "h01", map[string]any{"weightKg": 518, "dateTime": "2026-03-02T08:00", "method": "Scale"})
	{
		st, body := doReq(t, ts.URL, "GET", "/horses/h01/weights", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var items []map[string]any
		mustUnmarshal(t, body, &items)
		if len(items) != 2 {
			t.Fatalf("expected 2 weights, got %d", len(items))
		}
		if items[0]["weightKg"].(float64) != 518 {
			t.Fatalf("expected newest first, got %v", items[0])
		}
		if items[1]["method"] != "Manual" || items[1]["recordedBy"] != "Staff" {
			t.Fatalf("expected defaults Manual/Staff, got %v", items[1])
		}
	}

	// 3) Panel con un valor alto, uno normal y una clave desconocida
	{
		st, body := doReq(t, ts.URL, "POST", "/horses/h01/bloodtests", map[string]any{
			"date":   "2026-02-01",
			"doctor": "Dra. Paz",
			"values": map[string]any{"WBC": "13.1", "K": 3.0, "FOO": "1", "HCT": "n/a"},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating bloodtest, got %d body=%s", st, string(body))
		}
		var got struct {
			Values   map[string]float64 `json:"values"`
			Abnormal int                `json:"abnormal"`
			Results  []struct {
				Key  string `json:"key"`
				Flag string `json:"flag"`
			} `json:"results"`
		}
		mustUnmarshal(t, body, &got)
		if len(got.Values) != 2 {
			t.Fatalf("expected only WBC and K kept, got %v", got.Values)
		}
		if got.Abnormal != 1 {
			t.Fatalf("expected 1 abnormal value, got %d", got.Abnormal)
		}
		if len(got.Results) != 2 || got.Results[0].Key != "WBC" || got.Results[0].Flag != "High" {
			t.Fatalf("unexpected results: %+v", got.Results)
		}
	}

	// 4) Care: una vacuna; las otras ocho categorías siguen vacías
	{
		st, body := doReq(t, ts.URL, "POST", "/horses/h01/care/vaccinations", map[string]any{
			"id":      "client-id",
			"name":    "Influenza",
			"date":    "2026-04-15",
			"nextDue": "2027-04-15",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating vaccination, got %d body=%s", st, string(body))
		}
		var saved map[string]any
		mustUnmarshal(t, body, &saved)
		if saved["id"] == "client-id" || saved["id"] == "" {
			t.Fatalf("expected server-assigned id, got %v", saved["id"])
		}

		st, body = doReq(t, ts.URL, "GET", "/horses/h01/care", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 reading care, got %d", st)
		}
		var book map[string][]map[string]any
		mustUnmarshal(t, body, &book)
		if len(book) != 9 {
			t.Fatalf("expected 9 categories, got %d", len(book))
		}
		if len(book["vaccinations"]) != 1 || len(book["deworming"]) != 0 {
			t.Fatalf("unexpected care book: %v", book)
		}
	}

	// 5) Reset: todo vuelve a vacío, otro caballo intacto
	createWeight(t, ts.URL, "h02", map[string]any{"weightKg": 470, "dateTime": "2026-01-05"})
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/horses/h01/records", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 on reset, got %d", st)
		}
		for _, path := range []string{"/horses/h01/weights", "/horses/h01/bloodtests", "/horses/h01/visits"} {
			st, body := doReq(t, ts.URL, "GET", path, nil)
			if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
				t.Fatalf("expected empty %s after reset, got %d %s", path, st, string(body))
			}
		}
		_, body := doReq(t, ts.URL, "GET", "/horses/h02/weights", nil)
		var items []map[string]any
		mustUnmarshal(t, body, &items)
		if len(items) != 1 {
			t.Fatalf("expected h02 untouched, got %d weights", len(items))
		}
	}

	if len(notes.Items) == 0 {
		t.Fatalf("expected notifications")
	}
	var warned bool
	for _, n := range notes.Items {
		if n.Severity == notify.SeverityWarning {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("expected a warning for the abnormal panel, got %+v", notes.Items)
	}
}

func TestHTTP_Validation(t *testing.T) {
	ts, _ := newServer(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown horse", "GET", "/horses/zz/weights", nil, http.StatusNotFound},
		{"unknown horse post", "POST", "/horses/zz/weights", map[string]any{"weightKg": 500, "dateTime": "2026-01-01"}, http.StatusNotFound},
		{"zero weight", "POST", "/horses/h01/weights", map[string]any{"weightKg": 0, "dateTime": "2026-01-01"}, http.StatusBadRequest},
		{"bad date", "POST", "/horses/h01/weights", map[string]any{"weightKg": 500, "dateTime": "01/02/2026"}, http.StatusBadRequest},
		{"visit without date", "POST", "/horses/h01/visits", map[string]any{"doctor": "Dr. Ruiz"}, http.StatusBadRequest},
		{"unknown care category", "POST", "/horses/h01/care/grooming", map[string]any{"name": "x", "date": "2026-01-01"}, http.StatusBadRequest},
		{"care without name", "POST", "/horses/h01/care/dental", map[string]any{"date": "2026-01-01"}, http.StatusBadRequest},
		{"reset unknown horse", "DELETE", "/horses/zz/records", nil, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
			if st != tc.want {
				t.Fatalf("expected %d, got %d body=%s", tc.want, st, string(body))
			}
		})
	}
}

func TestHTTP_Labs(t *testing.T) {
	ts, _ := newServer(t)

	cases := map[string]string{
		"/labs/flag?param=WBC&value=4.9":  "Low",
		"/labs/flag?param=WBC&value=5":    "Normal",
		"/labs/flag?param=WBC&value=12.1": "High",
		"/labs/flag?param=WBC&value=abc":  "Unclassified",
		"/labs/flag?param=XYZ&value=1":    "Unclassified",
	}
	for path, want := range cases {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, st)
		}
		var got map[string]any
		mustUnmarshal(t, body, &got)
		if got["flag"] != want {
			t.Fatalf("%s: expected %s, got %v", path, want, got["flag"])
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/labs/reference", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var ranges []map[string]any
	mustUnmarshal(t, body, &ranges)
	if len(ranges) != 38 {
		t.Fatalf("expected 38 reference ranges, got %d", len(ranges))
	}
}

func TestHTTP_OpsEndpoints(t *testing.T) {
	ts, _ := newServer(t)

	createWeight(t, ts.URL, "h03", map[string]any{"weightKg": 455, "dateTime": "2026-05-01"})

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health: %d %s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", st)
	}
	if !strings.Contains(string(body), `horse_medical_store_operations_total{domain="weights",op="append",result="ok"} 1`) {
		t.Fatalf("expected append counter in metrics output")
	}

	st, _ = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 from swagger doc, got %d", st)
	}
}

// -------------------------
// Helpers
// -------------------------

func createWeight(t *testing.T, baseURL, horseID string, payload map[string]any) {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/horses/"+horseID+"/weights", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating weight, got %d body=%s", st, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, payload any) (int, []byte) {
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

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func mustUnmarshal(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(b))
	}
}
