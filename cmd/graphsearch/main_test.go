package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsearch/config"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_StdinScript(t *testing.T) {
	out, _, err := execute(t, "z e 0 1 e 0 2 d 0 b 0 q", "--capacity", "3")
	require.NoError(t, err)
	assert.Equal(t, "Graph initialized to 3 vertices.\n"+
		"Edge added between vertex 0 and vertex 1.\n"+
		"Edge added between vertex 0 and vertex 2.\n"+
		"DFS traversal starting from vertex 0: 0 2 1\n"+
		"BFS traversal starting from vertex 0: 0 1 2\n"+
		"Exiting program.\n", out)
}

func TestRoot_DefaultCapacity(t *testing.T) {
	out, _, err := execute(t, "z v")
	require.NoError(t, err)
	assert.Equal(t, "Graph initialized to 10 vertices.\n"+
		"The vertices are automatically managed up to 10.\n", out)
}

func TestRoot_ScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmds.txt")
	require.NoError(t, os.WriteFile(path, []byte("z\ne 1 0\np\nq\n"), 0o644))

	out, _, err := execute(t, "ignored", "--capacity", "2", "--script", path)
	require.NoError(t, err)
	assert.Equal(t, "Graph initialized to 2 vertices.\n"+
		"Edge added between vertex 1 and vertex 0.\n"+
		"\n Adjacency list of vertex 0\n head -> 1\n"+
		"\n Adjacency list of vertex 1\n head -> 0\n"+
		"Exiting program.\n", out)
}

func TestRoot_MissingScript(t *testing.T) {
	_, _, err := execute(t, "", "--script", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open script")
}

func TestRoot_ConfigFileAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: 4\n"), 0o644))

	out, _, err := execute(t, "z", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "Graph initialized to 4 vertices.\n", out)

	out, _, err = execute(t, "z", "--config", path, "--capacity", "6")
	require.NoError(t, err)
	assert.Equal(t, "Graph initialized to 6 vertices.\n", out)
}

func TestRoot_InvalidSettings(t *testing.T) {
	_, _, err := execute(t, "", "--color", "sometimes")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "", "--capacity", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_JSONLogs(t *testing.T) {
	_, stderr, err := execute(t, "z q", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"command loop started"`)
	assert.Contains(t, stderr, `"msg":"graph initialized"`)
}

func TestRoot_Telemetry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "otel.jsonl")
	_, _, err := execute(t, "z e 0 1 d 0 q", "--capacity", "2", "--telemetry-out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Session.dfs")
	assert.Contains(t, string(data), "graphsearch_traversals_total")
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "", "demo", "--topology", "star", "--size", "4", "--print=false")
	require.NoError(t, err)
	assert.Equal(t, "DFS traversal starting from vertex 0: 0 3 2 1\n"+
		"BFS traversal starting from vertex 0: 0 1 2 3\n", out)
}

func TestDemo_PrintsSortedLists(t *testing.T) {
	out, _, err := execute(t, "", "demo", "--capacity", "3", "--topology", "path", "--size", "3", "--start", "1")
	require.NoError(t, err)
	assert.Equal(t, "DFS traversal starting from vertex 1: 1 2 0\n"+
		"BFS traversal starting from vertex 1: 1 0 2\n"+
		"\n Adjacency list of vertex 0\n head -> 1\n"+
		"\n Adjacency list of vertex 1\n head -> 0-> 2\n"+
		"\n Adjacency list of vertex 2\n head -> 1\n", out)
}

func TestDemo_Errors(t *testing.T) {
	_, _, err := execute(t, "", "demo", "--topology", "torus")
	require.Error(t, err)

	_, _, err = execute(t, "", "demo", "--capacity", "3", "--size", "5")
	require.Error(t, err)

	_, _, err = execute(t, "", "demo", "--start", "42")
	require.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "graphsearch.yaml")
	out, _, err := execute(t, "", "config", "init", path)
	require.NoError(t, err)
	assert.Equal(t, "Wrote default configuration to "+path+"\n", out)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
