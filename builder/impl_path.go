// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_path.go - Path(n), Cycle(n) and Complete(n) constructors.
//
// Contract:
//   - Path:     n ≥ 2, edges {i-1, i} for i = 1..n-1.
//   - Cycle:    n ≥ 3, Path plus the closing edge {n-1, 0}.
//   - Complete: n ≥ 1, every unordered pair {i, j}.
//   - Weights come from cfg.weightFn, drawn in edge order.

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// Path returns a Constructor for the simple path 0—1—…—(n-1).
func Path(n int) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(acc, cfg, methodPath, n)
	}
}

// Cycle returns a Constructor for the ring 0—1—…—(n-1)—0.
func Cycle(n int) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := chain(acc, cfg, methodCycle, n); err != nil {
			return err
		}
		if err := acc.addEdge(cfg.idFn(n-1), cfg.idFn(0), cfg.weightFn(cfg.rng)); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return nil
	}
}

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			acc.addVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := acc.addEdge(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}

// chain adds vertices 0..n-1 and the edges {i-1, i}.
func chain(acc *accumulator, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		acc.addVertex(cfg.idFn(i))
	}
	for i := 1; i < n; i++ {
		u, v := cfg.idFn(i-1), cfg.idFn(i)
		if err := acc.addEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
