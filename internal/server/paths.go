package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/alternate"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/internal/catalog"
	"github.com/katalvlaran/pathfinder/internal/metrics"
)

// maxBodyBytes bounds the /get_paths request body.
const maxBodyBytes = 1 << 12

// PathRequest is the /get_paths request body.
type PathRequest struct {
	Start string `json:"start" validate:"required,max=64"`
	End   string `json:"end" validate:"required,max=64"`
}

// PathResponse renders one route. Cost is -1 and Path empty when there is
// no route.
type PathResponse struct {
	Cost float64  `json:"cost"`
	Path []string `json:"path"`
}

// PathsResponse is the /get_paths response body.
type PathsResponse struct {
	Shortest PathResponse `json:"shortest"`
	Second   PathResponse `json:"second"`
}

func toResponse(r dijkstra.Result) PathResponse {
	if math.IsInf(r.Cost, 1) {
		return PathResponse{Cost: -1, Path: []string{}}
	}

	return PathResponse{Cost: r.Cost, Path: r.Path}
}

func (s *Server) getPaths(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.observeQuery(metrics.OutcomeInvalid, 0)
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.observeQuery(metrics.OutcomeInvalid, 0)
		writeError(w, http.StatusUnprocessableEntity, validationDetail(err))
		return
	}

	snap := s.graphs.Snapshot()
	start, err := snap.Lookup(req.Start)
	if err != nil {
		s.observeQuery(metrics.OutcomeUnknownNode, 0)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Start node '%s' not found in graph", start))
		return
	}
	end, err := snap.Lookup(req.End)
	if err != nil {
		s.observeQuery(metrics.OutcomeUnknownNode, 0)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("End node '%s' not found in graph", end))
		return
	}

	began := time.Now()
	pair, err := s.computePaths(r.Context(), snap, start, end)
	elapsed := time.Since(began)
	if err != nil {
		s.observeQuery(metrics.OutcomeTimeout, elapsed)
		s.log.Warn("Path query abandoned",
			zap.String("start", start),
			zap.String("end", end),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		writeError(w, http.StatusServiceUnavailable, "path query timed out")
		return
	}

	outcome := metrics.OutcomeFound
	if !pair.Shortest.Reachable() {
		outcome = metrics.OutcomeNoRoute
	}
	s.observeQuery(outcome, elapsed)
	s.log.Debug("Path query",
		zap.String("start", start),
		zap.String("end", end),
		zap.Float64("shortest_cost", pair.Shortest.Cost),
		zap.Float64("second_cost", pair.Second.Cost),
		zap.Duration("elapsed", elapsed),
	)

	writeJSON(w, http.StatusOK, PathsResponse{
		Shortest: toResponse(pair.Shortest),
		Second:   toResponse(pair.Second),
	})
}

// computePaths runs the search off the request goroutine so that the
// query timeout and client disconnects end the request promptly. The search
// itself runs to completion on its private copies and is then discarded.
func (s *Server) computePaths(ctx context.Context, snap *catalog.Snapshot, start, end string) (alternate.Pair, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	done := make(chan alternate.Pair, 1)
	go func() {
		done <- alternate.Paths(snap.Graph, start, end)
	}()

	select {
	case p := <-done:
		return p, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return alternate.Pair{}, fmt.Errorf("after %s: %w", s.opts.QueryTimeout, ctx.Err())
		}
		return alternate.Pair{}, ctx.Err()
	}
}

func (s *Server) observeQuery(outcome string, d time.Duration) {
	if s.metrics != nil {
		s.metrics.ObservePathQuery(outcome, d)
	}
}
