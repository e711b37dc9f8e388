package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphsearch/builder"
)

type demoFlags struct {
	topology string
	size     int
	start    int
	print    bool
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	var d demoFlags

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a fixture topology and run DFS and BFS over it",
		Long: fmt.Sprintf(`demo initializes a graph, adds the edges of a fixture topology
(%s) over the first --size vertices, then runs a depth-first and a
breadth-first search from --start and prints the adjacency lists.`, strings.Join(builder.Topologies, ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, root, func(ctx context.Context, rt *app) error {
				return runDemo(ctx, cmd.OutOrStdout(), rt, d)
			})
		},
	}

	cmd.Flags().StringVar(&d.topology, "topology", "path", "fixture topology: "+strings.Join(builder.Topologies, ", "))
	cmd.Flags().IntVar(&d.size, "size", 5, "number of vertices the topology spans")
	cmd.Flags().IntVar(&d.start, "start", 0, "start vertex for both searches")
	cmd.Flags().BoolVar(&d.print, "print", true, "print the adjacency lists after the searches")

	return cmd
}

func runDemo(ctx context.Context, out io.Writer, rt *app, d demoFlags) error {
	cons, err := builder.ByName(d.topology, d.size)
	if err != nil {
		return err
	}
	g, err := rt.session.Init()
	if err != nil {
		return err
	}
	if err = builder.Apply(g, nil, cons); err != nil {
		return err
	}
	rt.logger.Info("demo graph built",
		slog.String("topology", d.topology),
		slog.Int("size", d.size),
		slog.Int("edges", g.EdgeCount()),
	)

	dfsOrder, err := rt.session.DFS(ctx, d.start, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "DFS traversal starting from vertex %d: %s\n", d.start, joinInts(dfsOrder))

	bfsOrder, err := rt.session.BFS(ctx, d.start, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "BFS traversal starting from vertex %d: %s\n", d.start, joinInts(bfsOrder))

	if d.print {
		return rt.session.Print(out)
	}

	return nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
