package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphsearch/bfs"
	"github.com/katalvlaran/graphsearch/core"
)

// BenchmarkBFS_Complete runs BFS over K_10. Lists stay sorted after the
// first iteration, so this measures the sorted fast path.
func BenchmarkBFS_Complete(b *testing.B) {
	g, _ := core.NewGraph(core.DefaultCapacity)
	for u := 0; u < g.Capacity(); u++ {
		for v := u + 1; v < g.Capacity(); v++ {
			_ = g.AddEdge(u, v)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
