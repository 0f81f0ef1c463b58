package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/internal/catalog"
	"github.com/katalvlaran/pathfinder/internal/graphtest"
	"github.com/katalvlaran/pathfinder/internal/metrics"
	"github.com/katalvlaran/pathfinder/internal/server"
)

type fixedSource struct{ snap *catalog.Snapshot }

func (f fixedSource) Snapshot() *catalog.Snapshot { return f.snap }

func newHandler(t *testing.T, opts server.Options, m *metrics.Collector) http.Handler {
	t.Helper()
	cat, err := catalog.New(context.Background(), "")
	require.NoError(t, err)

	return server.New(cat, opts, zap.NewNop(), m).Handler()
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	rec := do(newHandler(t, server.Options{}, nil), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"status":"healthy","message":"Server is running"}`, rec.Body.String())
}

func TestGetPaths(t *testing.T) {
	h := newHandler(t, server.Options{}, nil)

	cases := []struct {
		name, body, want string
	}{
		{
			"sample",
			`{"start":"A","end":"G"}`,
			`{"shortest":{"cost":5,"path":["A","B","C","D","G"]},"second":{"cost":6,"path":["A","C","D","G"]}}`,
		},
		{
			"normalized input",
			`{"start":" h","end":"c "}`,
			`{"shortest":{"cost":7,"path":["H","I","F","C"]},"second":{"cost":7,"path":["H","I","F","D","C"]}}`,
		},
		{
			"same node",
			`{"start":"a","end":"a"}`,
			`{"shortest":{"cost":0,"path":["A"]},"second":{"cost":-1,"path":[]}}`,
		},
		{
			"equal cost alternative",
			`{"start":"J","end":"A"}`,
			`{"shortest":{"cost":9,"path":["J","I","F","E","A"]},"second":{"cost":9,"path":["J","I","H","E","A"]}}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/get_paths", tc.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			require.JSONEq(t, tc.want, rec.Body.String())
		})
	}
}

func TestGetPaths_NoRoute(t *testing.T) {
	adj := graphtest.SampleAdjacency()
	adj["X"] = map[string]float64{"Y": 1}
	adj["Y"] = map[string]float64{"X": 1}
	src := fixedSource{&catalog.Snapshot{Graph: core.MustNew(adj), Components: 2}}
	h := server.New(src, server.Options{}, nil, nil).Handler()

	rec := do(h, http.MethodPost, "/get_paths", `{"start":"A","end":"X"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"shortest":{"cost":-1,"path":[]},"second":{"cost":-1,"path":[]}}`, rec.Body.String())
}

func TestGetPaths_Errors(t *testing.T) {
	h := newHandler(t, server.Options{}, nil)

	cases := []struct {
		name   string
		body   string
		status int
		detail string
	}{
		{"unknown start", `{"start":"z","end":"A"}`, http.StatusBadRequest, "Start node 'Z' not found in graph"},
		{"unknown end", `{"start":"A","end":"q"}`, http.StatusBadRequest, "End node 'Q' not found in graph"},
		{"blank start", `{"start":"  ","end":"A"}`, http.StatusBadRequest, "Start node '' not found in graph"},
		{"missing end", `{"start":"A"}`, http.StatusUnprocessableEntity, "end is required"},
		{"too long", `{"start":"` + strings.Repeat("a", 65) + `","end":"A"}`, http.StatusUnprocessableEntity, "start must be at most 64 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/get_paths", tc.body)
			require.Equal(t, tc.status, rec.Code)
			require.JSONEq(t, `{"detail":`+quote(tc.detail)+`}`, rec.Body.String())
		})
	}

	rec := do(h, http.MethodPost, "/get_paths", `{"start":`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid request body")

	rec = do(h, http.MethodGet, "/get_paths", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func TestGraph(t *testing.T) {
	src := fixedSource{&catalog.Snapshot{
		Graph:      catalog.DefaultGraph(),
		Components: 1,
		Source:     "builtin",
		LoadedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	rec := do(server.New(src, server.Options{}, nil, nil).Handler(), http.MethodGet, "/graph", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"graph":{
		"A":{"B":1,"C":4,"E":2},
		"B":{"A":1,"C":2,"D":5},
		"C":{"A":4,"B":2,"D":1,"F":3},
		"D":{"B":5,"C":1,"F":2,"G":1},
		"E":{"A":2,"F":2,"H":4},
		"F":{"C":3,"D":2,"E":2,"I":3},
		"G":{"D":1,"J":5},
		"H":{"E":4,"I":1},
		"I":{"F":3,"H":1,"J":2},
		"J":{"G":5,"I":2}
	},"components":1,"source":"builtin","loaded_at":"2026-01-02T03:04:05Z"}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	h := newHandler(t, server.Options{}, nil)

	rec := do(h, http.MethodGet, "/health", "")
	_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "trace-42", rec.Header().Get("X-Request-ID"))
}

func TestCORS(t *testing.T) {
	h := newHandler(t, server.Options{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/get_paths", nil)
	req.Header.Set("Origin", "http://example.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	restricted := newHandler(t, server.Options{AllowedOrigins: []string{"http://ok.test"}}, nil)
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	restricted.ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	m := metrics.NewCollector("pathfinder")
	h := newHandler(t, server.Options{}, m)

	do(h, http.MethodPost, "/get_paths", `{"start":"A","end":"G"}`)
	do(h, http.MethodPost, "/get_paths", `{"start":"A","end":"Z"}`)

	rec := do(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `pathfinder_path_queries_total{outcome="found"} 1`)
	assert.Contains(t, body, `pathfinder_path_queries_total{outcome="unknown_node"} 1`)
	assert.Contains(t, body, `pathfinder_http_requests_total{method="POST",route="/get_paths",status="400"} 1`)

	rec = do(newHandler(t, server.Options{}, nil), http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>paths</h1>"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "logo.svg"), []byte("<svg/>"), 0o600))
	h := newHandler(t, server.Options{StaticDir: dir}, nil)

	rec := do(h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "<h1>paths</h1>", rec.Body.String())

	rec = do(h, http.MethodGet, "/static/img/logo.svg", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "<svg/>", rec.Body.String())

	rec = do(h, http.MethodGet, "/style.css", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/nowhere", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccessLog(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	cat, err := catalog.New(context.Background(), "")
	require.NoError(t, err)
	h := server.New(cat, server.Options{}, zap.New(obs), nil).Handler()

	do(h, http.MethodGet, "/health", "")

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "/health", fields["route"])
	require.EqualValues(t, http.StatusOK, fields["status"])
	require.NotEmpty(t, fields["requestID"])
}
