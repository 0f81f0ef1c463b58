package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/internal/catalog"
	"github.com/katalvlaran/pathfinder/internal/graphtest"
)

const lineGraph = `
graph:
  a: {b: 1}
  b: {a: 1, c: 2}
  c: {b: 2}
`

const splitGraph = `
graph:
  P: {Q: 1}
  Q: {P: 1}
  R: {S: 4}
  S: {R: 4}
`

func writeGraph(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestDefaultGraph_IsSample(t *testing.T) {
	require.Equal(t, graphtest.SampleAdjacency(), catalog.DefaultGraph().Adjacency())
}

func TestParseGraph(t *testing.T) {
	g, err := catalog.ParseGraph([]byte(lineGraph))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	w, ok := g.Weight("B", "C")
	require.True(t, ok)
	require.Equal(t, 2.0, w)

	_, err = catalog.ParseGraph([]byte("graph: {}"))
	require.ErrorIs(t, err, catalog.ErrEmptyGraph)

	_, err = catalog.ParseGraph([]byte("graph: [1, 2]"))
	require.Error(t, err)

	_, err = catalog.ParseGraph([]byte("graph:\n  A: {B: 1}\n  B: {A: 2}\n"))
	require.ErrorIs(t, err, core.ErrAsymmetricEdge)

	_, err = catalog.ParseGraph([]byte("graph:\n  A: {B: -1}\n  B: {A: -1}\n"))
	require.ErrorIs(t, err, core.ErrNegativeWeight)

	_, err = catalog.ParseGraph([]byte("graph:\n  a: {}\n  A: {}\n"))
	require.Error(t, err)

	// Rejected on every attempt, whatever order the neighbors decode in.
	for i := 0; i < 50; i++ {
		_, err = catalog.ParseGraph([]byte("graph:\n  A: {b: 1, B: 2}\n  B: {A: 1}\n"))
		require.ErrorContains(t, err, `neighbor "B" of "A" listed twice`)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "A", catalog.Normalize(" a "))
	assert.Equal(t, "NODE1", catalog.Normalize("node1"))
	assert.Equal(t, "", catalog.Normalize("   "))
}

func TestNew_Builtin(t *testing.T) {
	c, err := catalog.New(context.Background(), "")
	require.NoError(t, err)

	snap := c.Snapshot()
	assert.Equal(t, "builtin", snap.Source)
	assert.Equal(t, 1, snap.Components)
	assert.Equal(t, 10, snap.Graph.VertexCount())
	assert.Same(t, snap.Graph, c.Graph())
	assert.False(t, snap.LoadedAt.IsZero())

	id, err := snap.Lookup(" g")
	require.NoError(t, err)
	assert.Equal(t, "G", id)

	id, err = snap.Lookup("z")
	require.ErrorIs(t, err, catalog.ErrUnknownNode)
	assert.Equal(t, "Z", id)

	require.ErrorIs(t, c.Watch(context.Background(), time.Millisecond), catalog.ErrNothingToWatch)
}

func TestNew_FileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := catalog.New(context.Background(), filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(dir, "bad.yaml")
	writeGraph(t, path, "graph: {A: {B: 1}}")
	_, err = catalog.New(context.Background(), path)
	require.ErrorIs(t, err, core.ErrAsymmetricEdge)
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	writeGraph(t, path, lineGraph)

	obs, logs := observer.New(zap.InfoLevel)
	var mu sync.Mutex
	var seen []error
	c, err := catalog.New(context.Background(), path,
		catalog.WithLogger(zap.New(obs)),
		catalog.WithReloadHook(func(err error) {
			mu.Lock()
			seen = append(seen, err)
			mu.Unlock()
		}),
	)
	require.NoError(t, err)
	first := c.Snapshot()
	require.Equal(t, 1, first.Components)

	writeGraph(t, path, "graph: not-a-map")
	require.Error(t, c.Reload(context.Background()))
	require.Same(t, first, c.Snapshot())
	require.Equal(t, 1, logs.FilterMessage("Graph reload failed, keeping previous graph").Len())

	writeGraph(t, path, splitGraph)
	require.NoError(t, c.Reload(context.Background()))
	require.NotSame(t, first, c.Snapshot())
	require.False(t, c.Snapshot().LoadedAt.Before(first.LoadedAt))
	require.Equal(t, []string{"P", "Q", "R", "S"}, c.Graph().Vertices())
	require.Equal(t, 2, c.Snapshot().Components)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 2)
	require.Error(t, seen[0])
	require.NoError(t, seen[1])
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	writeGraph(t, path, lineGraph)

	reloaded := make(chan error, 8)
	c, err := catalog.New(context.Background(), path,
		catalog.WithReloadHook(func(err error) {
			select {
			case reloaded <- err:
			default:
			}
		}),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Watch(ctx, 20*time.Millisecond))

	writeGraph(t, path, splitGraph)

	// Partial writes may fail to parse first; wait for a successful attempt.
	require.Eventually(t, func() bool {
		select {
		case err := <-reloaded:
			return err == nil
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
	require.True(t, c.Graph().HasVertex("S"))
}

func TestSnapshot_ConcurrentReadsDuringReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	writeGraph(t, path, lineGraph)
	c, err := catalog.New(context.Background(), path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := c.Snapshot()
				if snap.Graph.VertexCount() != 3 && snap.Graph.VertexCount() != 4 {
					panic(errors.New("torn snapshot"))
				}
			}
		}()
	}

	for i := 0; i < 20; i++ {
		body := lineGraph
		if i%2 == 0 {
			body = splitGraph
		}
		writeGraph(t, path, body)
		require.NoError(t, c.Reload(context.Background()))
	}
	close(stop)
	wg.Wait()
}

func TestReload_Serialized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	writeGraph(t, path, lineGraph)

	var inFlight, maxInFlight atomic.Int32
	c, err := catalog.New(context.Background(), path,
		catalog.WithReloadHook(func(error) {
			n := inFlight.Add(1)
			for {
				m := maxInFlight.Load()
				if n <= m || maxInFlight.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inFlight.Add(-1)
		}),
	)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Reload(context.Background())
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), maxInFlight.Load())
}

func TestWatch_BurstEndsOnLastWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	writeGraph(t, path, lineGraph)

	c, err := catalog.New(context.Background(), path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Watch(ctx, 20*time.Millisecond))

	for i := 0; i < 10; i++ {
		body := splitGraph
		if i%2 == 0 {
			body = lineGraph
		}
		writeGraph(t, path, body)
	}

	// The last write is splitGraph; once it is served nothing older may
	// replace it.
	require.Eventually(t, func() bool {
		return c.Graph().HasVertex("S")
	}, 5*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	require.Equal(t, []string{"P", "Q", "R", "S"}, c.Graph().Vertices())
}
