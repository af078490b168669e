package bfs_test

import (
	"testing"

	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// BenchmarkSearch_OpenGrid runs BFS corner to corner on an open M×M grid.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	const M = 100
	g := mustGrid(b, uniform(M, M))
	start, goal := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: M - 1, Col: M - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, start, goal)
	}
}
