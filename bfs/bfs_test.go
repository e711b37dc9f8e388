package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsearch/bfs"
	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/dfs"
)

// buildGraph adds edges in order to a graph of the given capacity.
func buildGraph(t *testing.T, capacity int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(capacity)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func triangle(t *testing.T) *core.Graph {
	return buildGraph(t, core.DefaultCapacity, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2})
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := buildGraph(t, 3)
	_, err := bfs.BFS(g, 3)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = bfs.BFS(g, -1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_Triangle covers the canonical scenario and its sorting side effect.
func TestBFS_Triangle(t *testing.T) {
	g := triangle(t)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Empty(t, res.Dropped)

	for v, want := range map[int][]int{0: {1, 2}, 1: {0, 2}, 2: {0, 1}} {
		got, _ := g.Neighbors(v)
		assert.Equal(t, want, got, "list of %d after BFS", v)
	}
	assert.Contains(t, g.String(), "vertex 0\n head -> 1-> 2\n")
}

// TestBFS_SortChangesLaterDFS shows that BFS reorders lists for DFS.
func TestBFS_SortChangesLaterDFS(t *testing.T) {
	g := triangle(t)
	before, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, before.Order)

	_, err = bfs.BFS(g, 0)
	require.NoError(t, err)

	after, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, after.Order)
}

// TestBFS_OnlyDequeuedListsAreSorted leaves unreached lists alone.
func TestBFS_OnlyDequeuedListsAreSorted(t *testing.T) {
	g := buildGraph(t, 6, [2]int{0, 2}, [2]int{0, 1}, [2]int{4, 3}, [2]int{4, 5})
	_, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	ns, _ := g.Neighbors(4)
	assert.Equal(t, []int{5, 3}, ns)
	ns, _ = g.Neighbors(0)
	assert.Equal(t, []int{1, 2}, ns)
}

// TestBFS_LevelOrder checks that nearer vertices are emitted first.
func TestBFS_LevelOrder(t *testing.T) {
	g := buildGraph(t, 10,
		[2]int{0, 9}, [2]int{0, 4}, [2]int{9, 1}, [2]int{4, 7}, [2]int{1, 3},
		[2]int{7, 3}, [2]int{3, 8}, [2]int{5, 6},
	)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 9, 7, 1, 3, 8}, res.Order)

	pos := make(map[int]int, len(res.Order))
	for i, v := range res.Order {
		pos[v] = i
	}
	for _, a := range res.Order {
		for _, b := range res.Order {
			if res.Depth[a] < res.Depth[b] {
				assert.Less(t, pos[a], pos[b], "%d (d=%d) before %d (d=%d)", a, res.Depth[a], b, res.Depth[b])
			}
		}
	}
	assert.Equal(t, -1, res.Depth[5])
	assert.Equal(t, 3, res.Depth[3])
}

func TestBFS_EachReachableOnce(t *testing.T) {
	g := buildGraph(t, 5, [2]int{0, 1}, [2]int{0, 1}, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 0})
	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Order)
}

func TestBFS_Disconnected(t *testing.T) {
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{2, 3})
	res, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

func TestBFS_PathTo(t *testing.T) {
	g := buildGraph(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 3})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	_, err = res.PathTo(5)
	assert.ErrorContains(t, err, "no path")
	_, err = res.PathTo(99)
	assert.Error(t, err)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence.
func TestBFS_Hooks(t *testing.T) {
	g := buildGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})

	var events []string
	entry := func(kind string, v, d int) string { return fmt.Sprintf("%s:%d@%d", kind, v, d) }
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(v, d int) { events = append(events, entry("e", v, d)) }),
		bfs.WithOnDequeue(func(v, d int) { events = append(events, entry("d", v, d)) }),
		bfs.WithOnVisit(func(v, d int) error { events = append(events, entry("v", v, d)); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t,
		"e:0@0 d:0@0 v:0@0 e:1@1 d:1@1 v:1@1 e:2@2 d:2@2 v:2@2",
		strings.Join(events, " "),
	)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	g := triangle(t)
	boom := errors.New("boom")
	res, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestBFS_Cancellation(t *testing.T) {
	g := triangle(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}
