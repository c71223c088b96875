package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gridpath/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequest(t *testing.T) {
	name := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(name, []byte(`{
		"tiles": [[1, 2], [3, 4]],
		"start": {"x": 0, "y": 0},
		"goal": {"x": 1, "y": 1},
		"strategy": "astar-div",
		"connectivity": 8
	}`), 0o600))

	req, err := readRequest(name)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, req.Tiles)
	assert.Equal(t, planner.Cell{X: 1, Y: 1}, req.Goal)
	assert.Equal(t, "astar-div", req.Strategy)
	assert.Equal(t, 8, req.Connectivity)

	_, err = readRequest(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestPrintResponse(t *testing.T) {
	cost, optimal, gap := 6.0, 4.0, 0.5
	var buf bytes.Buffer
	printResponse(&buf, &planner.Response{
		Strategy:    "naive",
		Path:        []planner.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		Cost:        &cost,
		Expanded:    3,
		OptimalCost: &optimal,
		Gap:         &gap,
	})
	assert.Equal(t, "0,0\n1,0\n1,1\nstrategy=naive steps=2 cost=6 expanded=3 optimal=4 gap=0.5000\n", buf.String())

	buf.Reset()
	printResponse(&buf, &planner.Response{Strategy: "naive", Path: []planner.Cell{{}}})
	assert.Equal(t, "0,0\nstrategy=naive steps=0 cost=blocked expanded=0\n", buf.String())
}
