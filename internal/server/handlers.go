package server

import (
	"net/http"
	"os"
	"path/filepath"
	"time"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Message: "Server is running"})
}

type graphResponse struct {
	Graph      map[string]map[string]float64 `json:"graph"`
	Components int                           `json:"components"`
	Source     string                        `json:"source"`
	LoadedAt   time.Time                     `json:"loaded_at"`
}

func (s *Server) graph(w http.ResponseWriter, _ *http.Request) {
	snap := s.graphs.Snapshot()
	writeJSON(w, http.StatusOK, graphResponse{
		Graph:      snap.Graph.Adjacency(),
		Components: snap.Components,
		Source:     snap.Source,
		LoadedAt:   snap.LoadedAt,
	})
}

// staticFile serves name from the static directory, or a JSON 404.
func (s *Server) staticFile(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(s.opts.StaticDir, name)
		if fi, err := os.Stat(path); err != nil || fi.IsDir() {
			writeError(w, http.StatusNotFound, "Not Found")
			return
		}
		http.ServeFile(w, r, path)
	}
}
