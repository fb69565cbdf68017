// Package pathprobe explores single-source shortest paths on small weighted
// graphs and reports how much work each exploration strategy does.
//
// What is pathprobe?
//
//	One relaxation rule, three frontier disciplines:
//		• Depth-first (LIFO stack)
//		• Breadth-first (FIFO queue)
//		• Uniform-cost (min-heap keyed by cost at push time)
//	Every run reports the path, its hop count and length, and the number
//	of frontier pushes and pops, so the strategies can be compared on the
//	same query.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      - immutable adjacency-list Graph, cost-matrix loader/writer
//	traverse/  - Search (DFS/BFS/UCS), relaxation, path reconstruction
//	query/     - Runner (timing, logs, spans, metrics), command parser, shell
//	builder/   - random connected and shaped graph generators
//	config/    - YAML configuration
//	logging/   - slog logger construction
//	cmd/pathprobe - the CLI: shell, query, gen
//
// Quick ASCII example:
//
//	    0──1
//	    │  │1
//	   5│  2──3
//	    └──┘ 1
//
//	ucs 0 3 → 0 1 2 3, 3 hops, length 3.
//
//	go install github.com/katalvlaran/pathprobe/cmd/pathprobe@latest
package pathprobe
