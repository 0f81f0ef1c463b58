// Package server exposes the path queries over HTTP.
//
// Routes:
//
//	POST /get_paths   shortest and second-best path between two nodes
//	GET  /graph       adjacency of the served graph
//	GET  /health      liveness probe
//	GET  /metrics     Prometheus exposition (when a collector is configured)
//	GET  /, /style.css, /script.js, /static/*   front-end assets
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/internal/catalog"
	"github.com/katalvlaran/pathfinder/internal/metrics"
)

// GraphSource provides the graph snapshot to answer a request against.
type GraphSource interface {
	Snapshot() *catalog.Snapshot
}

// Options configures a Server.
type Options struct {
	StaticDir      string
	AllowedOrigins []string
	QueryTimeout   time.Duration
}

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	graphs   GraphSource
	log      *zap.Logger
	metrics  *metrics.Collector
	validate *validator.Validate
	opts     Options
}

// New creates a Server. m may be nil, in which case nothing is recorded and
// /metrics is not mounted.
func New(graphs GraphSource, opts Options, log *zap.Logger, m *metrics.Collector) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 5 * time.Second
	}

	return &Server{
		graphs:   graphs,
		log:      log,
		metrics:  m,
		validate: newValidator(),
		opts:     opts,
	}
}

// Handler builds the router with all middleware and routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.accessLog)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", s.health)
	r.Get("/graph", s.graph)
	r.Post("/get_paths", s.getPaths)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Get("/", s.staticFile("index.html"))
	r.Get("/style.css", s.staticFile("style.css"))
	r.Get("/script.js", s.staticFile("script.js"))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.opts.StaticDir))))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}
