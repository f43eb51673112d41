package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/VictorJude046/A-Path-finding-project/occupancy"
	"github.com/VictorJude046/A-Path-finding-project/parameter"
)

// Layout kinds
const (
	LayoutEmpty   = "empty"
	LayoutMaze    = "maze"
	LayoutScatter = "scatter"
)

// Config is the full runtime configuration
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Placement PlacementConfig `yaml:"placement"`
	Movement  MovementConfig  `yaml:"movement"`
	Search    SearchConfig    `yaml:"search"`
	Layout    LayoutConfig    `yaml:"layout"`
	Animation AnimationConfig `yaml:"animation"`
	Audio     AudioConfig     `yaml:"audio"`
	Log       LogConfig       `yaml:"log"`
}

// GridConfig sets world dimensions; CellSize is renderer-only (terminal columns per cell)
type GridConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	CellSize int `yaml:"cell_size"`
}

type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

type MovementConfig struct {
	Policy string `yaml:"policy"` // validated | unchecked
}

type SearchConfig struct {
	MaxExpansions int `yaml:"max_expansions"` // 0 = unlimited
}

type LayoutConfig struct {
	Kind     string  `yaml:"kind"` // empty | maze | scatter
	Seed     int64   `yaml:"seed"`
	Braiding float64 `yaml:"braiding"`
	Density  float64 `yaml:"density"`
}

type AnimationConfig struct {
	StepInterval time.Duration `yaml:"step_interval"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
	File   string `yaml:"file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Rows:     parameter.DefaultRows,
			Cols:     parameter.DefaultCols,
			CellSize: parameter.DefaultCellSize,
		},
		Placement: PlacementConfig{MaxAttempts: parameter.DefaultPlacementAttempts},
		Movement:  MovementConfig{Policy: occupancy.MoveValidated.String()},
		Search:    SearchConfig{MaxExpansions: parameter.DefaultMaxExpansions},
		Layout: LayoutConfig{
			Kind:     LayoutEmpty,
			Braiding: parameter.DefaultMazeBraiding,
			Density:  parameter.DefaultScatterDensity,
		},
		Animation: AnimationConfig{StepInterval: parameter.DefaultStepInterval},
		Audio:     AudioConfig{Enabled: true},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over the defaults
// An empty path returns defaults, a missing file is an error
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
// Unknown keys are rejected
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enum values
func (c *Config) Validate() error {
	var errs []error

	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid: rows and cols must be positive, got %dx%d", c.Grid.Rows, c.Grid.Cols))
	} else if c.Grid.Rows > parameter.MaxGridCells/c.Grid.Cols {
		errs = append(errs, fmt.Errorf("grid: %dx%d exceeds limit of %d cells", c.Grid.Rows, c.Grid.Cols, parameter.MaxGridCells))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid: cell_size must be positive, got %d", c.Grid.CellSize))
	}
	if c.Placement.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("placement: max_attempts must be positive, got %d", c.Placement.MaxAttempts))
	}
	if _, err := occupancy.ParseMovePolicy(c.Movement.Policy); err != nil {
		errs = append(errs, fmt.Errorf("movement: %w", err))
	}
	if c.Search.MaxExpansions < 0 {
		errs = append(errs, fmt.Errorf("search: max_expansions must not be negative, got %d", c.Search.MaxExpansions))
	}

	switch c.Layout.Kind {
	case LayoutEmpty, LayoutMaze, LayoutScatter:
	default:
		errs = append(errs, fmt.Errorf("layout: unknown kind %q", c.Layout.Kind))
	}
	if c.Layout.Braiding < 0 || c.Layout.Braiding > 1 {
		errs = append(errs, fmt.Errorf("layout: braiding must be within [0,1], got %g", c.Layout.Braiding))
	}
	if c.Layout.Density < 0 || c.Layout.Density >= 1 {
		errs = append(errs, fmt.Errorf("layout: density must be within [0,1), got %g", c.Layout.Density))
	}

	if c.Animation.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("animation: step_interval must be positive, got %v", c.Animation.StepInterval))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log: unknown format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// MovePolicy returns the parsed movement policy, Validate must have passed
func (c *Config) MovePolicy() occupancy.MovePolicy {
	p, _ := occupancy.ParseMovePolicy(c.Movement.Policy)
	return p
}
