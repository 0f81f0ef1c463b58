package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinder/core"
)

//go:embed default_graph.yaml
var defaultGraphYAML []byte

// ErrEmptyGraph is returned for a graph document without any vertex.
var ErrEmptyGraph = errors.New("catalog: graph document has no vertices")

// graphDocument is the on-disk shape:
//
//	graph:
//	  A: {B: 1, C: 4}
//	  B: {A: 1}
type graphDocument struct {
	Graph map[string]map[string]float64 `yaml:"graph"`
}

// ParseGraph decodes a YAML graph document. Vertex IDs are normalized and
// the result must be symmetric (every edge listed from both ends).
func ParseGraph(data []byte) (*core.Graph, error) {
	var doc graphDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode graph: %w", err)
	}
	if len(doc.Graph) == 0 {
		return nil, ErrEmptyGraph
	}

	adj := make(map[string]map[string]float64, len(doc.Graph))
	for u, nbrs := range doc.Graph {
		nu := Normalize(u)
		if _, dup := adj[nu]; dup {
			return nil, fmt.Errorf("catalog: vertex %q listed twice after normalization", nu)
		}
		row := make(map[string]float64, len(nbrs))
		for v, w := range nbrs {
			nv := Normalize(v)
			if _, dup := row[nv]; dup {
				return nil, fmt.Errorf("catalog: neighbor %q of %q listed twice after normalization", nv, nu)
			}
			row[nv] = w
		}
		adj[nu] = row
	}

	g, err := core.New(adj, core.WithStrictSymmetry())
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	return g, nil
}

// DefaultGraph returns the built-in demo graph.
func DefaultGraph() *core.Graph {
	g, err := ParseGraph(defaultGraphYAML)
	if err != nil {
		panic(err)
	}

	return g
}

// readGraph loads the graph at path, or the built-in one when path is empty.
func readGraph(path string) (*core.Graph, error) {
	if path == "" {
		return ParseGraph(defaultGraphYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	return ParseGraph(data)
}

// Normalize maps user input onto the vertex ID space: trimmed, upper case.
func Normalize(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
