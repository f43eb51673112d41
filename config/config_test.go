package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VictorJude046/A-Path-finding-project/occupancy"
	"github.com/VictorJude046/A-Path-finding-project/parameter"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.DefaultRows, cfg.Grid.Rows)
	assert.Equal(t, parameter.DefaultCols, cfg.Grid.Cols)
	assert.Equal(t, occupancy.MoveValidated, cfg.MovePolicy())
	assert.Equal(t, LayoutEmpty, cfg.Layout.Kind)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
grid:
  rows: 12
movement:
  policy: unchecked
layout:
  kind: maze
  seed: 42
animation:
  step_interval: 50ms
`))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Grid.Rows)
	assert.Equal(t, parameter.DefaultCols, cfg.Grid.Cols, "unset keys keep defaults")
	assert.Equal(t, occupancy.MoveUnchecked, cfg.MovePolicy())
	assert.Equal(t, LayoutMaze, cfg.Layout.Kind)
	assert.Equal(t, int64(42), cfg.Layout.Seed)
	assert.Equal(t, 50*time.Millisecond, cfg.Animation.StepInterval)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "grid:\n  depth: 3\n",
		"zero rows":       "grid:\n  rows: 0\n",
		"bad policy":      "movement:\n  policy: lenient\n",
		"bad layout":      "layout:\n  kind: cave\n",
		"braiding range":  "layout:\n  braiding: 1.5\n",
		"density range":   "layout:\n  density: 1\n",
		"negative budget": "search:\n  max_expansions: -1\n",
		"bad log format":  "log:\n  format: xml\n",
		"zero interval":   "animation:\n  step_interval: 0s\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "fieldbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  cols: 9\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Grid.Cols)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_GridSizeLimit(t *testing.T) {
	cfg := Default()
	cfg.Grid.Rows, cfg.Grid.Cols = parameter.MaxGridCells, 1
	assert.NoError(t, cfg.Validate())

	cfg.Grid.Rows, cfg.Grid.Cols = parameter.MaxGridCells, 2
	assert.Error(t, cfg.Validate())

	// Product would wrap around int
	cfg.Grid.Rows, cfg.Grid.Cols = math.MaxInt/2+1, 4
	assert.Error(t, cfg.Validate())
}
