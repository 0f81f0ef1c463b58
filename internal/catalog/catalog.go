// Package catalog owns the graph the service answers queries against.
//
// The current graph is published as an immutable Snapshot behind an
// atomic pointer: readers grab a snapshot once per request and never see a
// partially loaded graph. Reload replaces the snapshot only when the new
// document parses and validates; otherwise the previous one stays live.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/bfs"
	"github.com/katalvlaran/pathfinder/core"
)

// ErrUnknownNode is returned by Lookup for IDs absent from the graph.
var ErrUnknownNode = errors.New("catalog: unknown node")

// Snapshot is one published version of the graph.
type Snapshot struct {
	Graph      *core.Graph
	Components int
	Source     string
	LoadedAt   time.Time
}

// Lookup normalizes id and checks that it names a vertex of the snapshot.
func (s *Snapshot) Lookup(id string) (string, error) {
	n := Normalize(id)
	if !s.Graph.HasVertex(n) {
		return n, fmt.Errorf("%w: %q", ErrUnknownNode, n)
	}

	return n, nil
}

// Catalog holds the live Snapshot and knows how to rebuild it.
type Catalog struct {
	path     string
	log      *zap.Logger
	onReload func(error)
	now      func() time.Time

	reloadMu sync.Mutex
	current  atomic.Pointer[Snapshot]
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger; the default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// WithReloadHook registers fn to observe every reload attempt after the
// initial load. fn runs after the outcome is published and receives nil on
// success.
func WithReloadHook(fn func(error)) Option {
	return func(c *Catalog) {
		if fn != nil {
			c.onReload = fn
		}
	}
}

// New loads the graph at path (the built-in graph when path is empty) and
// returns a Catalog serving it.
func New(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		path:     path,
		log:      zap.NewNop(),
		onReload: func(error) {},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	snap, err := c.build(ctx)
	if err != nil {
		return nil, err
	}
	c.current.Store(snap)
	c.log.Info("Graph loaded",
		zap.String("source", snap.Source),
		zap.Int("vertices", snap.Graph.VertexCount()),
		zap.Int("edges", snap.Graph.EdgeCount()),
		zap.Int("components", snap.Components),
		zap.Time("loaded_at", snap.LoadedAt),
	)

	return c, nil
}

// Snapshot returns the live snapshot.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Graph returns the live graph.
func (c *Catalog) Graph() *core.Graph {
	return c.current.Load().Graph
}

// Reload rereads the source. On failure the previous snapshot is kept and
// the error returned. Reloads are serialized, so the snapshot published last
// is always built from the file read last.
func (c *Catalog) Reload(ctx context.Context) error {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	snap, err := c.build(ctx)
	if err != nil {
		c.log.Error("Graph reload failed, keeping previous graph",
			zap.String("source", c.source()),
			zap.Error(err),
		)
		c.onReload(err)
		return err
	}

	old := c.current.Swap(snap)
	c.onReload(nil)
	c.log.Info("Graph reloaded",
		zap.String("source", snap.Source),
		zap.Int("vertices", snap.Graph.VertexCount()),
		zap.Int("previous_vertices", old.Graph.VertexCount()),
		zap.Int("components", snap.Components),
		zap.Time("previous_loaded_at", old.LoadedAt),
	)

	return nil
}

// build reads, validates and describes the graph without publishing it.
func (c *Catalog) build(ctx context.Context) (*Snapshot, error) {
	g, err := readGraph(c.path)
	if err != nil {
		return nil, err
	}
	comps, err := bfs.Components(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("catalog: components: %w", err)
	}

	return &Snapshot{
		Graph:      g,
		Components: len(comps),
		Source:     c.source(),
		LoadedAt:   c.now(),
	}, nil
}

func (c *Catalog) source() string {
	if c.path == "" {
		return "builtin"
	}

	return c.path
}
