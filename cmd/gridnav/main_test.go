package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// genExample writes the example scenario into a temp dir and returns its path.
func genExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patrol.yaml")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-scenario", path, "-gen"}, &stdout, &stderr))
	require.FileExists(t, path)
	return path
}

// TestRun_Algorithms runs every algorithm on the example scenario. The
// static searches take the short route through the patrolled row; A* and
// the replanner avoid it.
func TestRun_Algorithms(t *testing.T) {
	path := genExample(t)
	cases := []struct {
		algo     string
		cost     string
		expanded string
	}{
		{"bfs", "cost: 12", "nodes expanded: 28"},
		{"ucs", "cost: 12", "nodes expanded: 30"},
		{"astar", "cost: 16", "nodes expanded: 21"},
		{"dynamic", "cost: 16", "nodes expanded: 126"},
	}
	for _, tc := range cases {
		t.Run(tc.algo, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.NoError(t, run([]string{"-scenario", path, "-algo", tc.algo}, &stdout, &stderr))
			out := stdout.String()
			require.Contains(t, out, "start: (0,0)")
			require.Contains(t, out, "goal: (4,8)")
			require.Contains(t, out, tc.cost+"\n")
			require.Contains(t, out, tc.expanded+"\n")
			require.Contains(t, out, "path on grid:")
			require.Contains(t, stderr.String(), "run_id=")
		})
	}
}

func TestRun_DynamicOnStaticMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "static.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: tiny\nmap:\n  - \"S.G\"\n"), 0o644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-scenario", path, "-algo", "dynamic"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "map has no dynamic obstacles")
	require.Contains(t, stdout.String(), "path: (0,0) -> (0,1) -> (0,2)\n")
	require.Contains(t, stdout.String(), "cost: 2\n")
}

func TestRun_NoPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walled.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map:\n  - \"S#G\"\n"), 0o644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-scenario", path, "-algo", "ucs"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "no path found")
	require.Contains(t, stdout.String(), "nodes expanded: 1\n")
	require.Contains(t, stderr.String(), `msg="goal statically unreachable"`)
	require.Contains(t, stderr.String(), "goal=(0,2)")
}

func TestRun_MetricsOut(t *testing.T) {
	path := genExample(t)
	prom := filepath.Join(t.TempDir(), "gridnav.prom")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-scenario", path, "-algo", "dynamic", "-metrics-out", prom}, &stdout, &stderr))

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	require.Contains(t, string(data), `gridnav_search_total{algorithm="dynamic",outcome="found"} 1`)
	require.Contains(t, string(data), `gridnav_replan_steps_total{kind="move"} 12`)
}

func TestRun_ReachableGoalNoWarning(t *testing.T) {
	path := genExample(t)
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-scenario", path, "-algo", "bfs"}, &stdout, &stderr))
	require.NotContains(t, stderr.String(), "statically unreachable")
}

// TestRun_StepBudgetExact: the example needs 12 moves, so a budget of 12
// still reaches the goal.
func TestRun_StepBudgetExact(t *testing.T) {
	path := genExample(t)
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-scenario", path, "-algo", "dynamic", "-max-steps", "12"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "cost: 16\n")
}

// TestRun_StepBudgetExceeded reports the partial run and still exports metrics.
func TestRun_StepBudgetExceeded(t *testing.T) {
	path := genExample(t)
	prom := filepath.Join(t.TempDir(), "gridnav.prom")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-scenario", path, "-algo", "dynamic", "-max-steps", "3", "-metrics-out", prom}, &stdout, &stderr)
	require.ErrorIs(t, err, errStepBudget)
	require.Contains(t, stdout.String(), "run aborted:")
	require.Contains(t, stdout.String(), "cost so far: 4\n")

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	require.Contains(t, string(data), `gridnav_search_total{algorithm="dynamic",outcome="aborted"} 1`)
	require.Contains(t, string(data), `gridnav_replan_steps_total{kind="move"} 4`)
}

func TestRun_BadInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Error(t, run([]string{"-algo", "dfs"}, &stdout, &stderr))
	require.Error(t, run([]string{"-scenario", filepath.Join(t.TempDir(), "nope.yaml")}, &stdout, &stderr))
}
