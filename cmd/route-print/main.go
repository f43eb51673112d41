package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/VictorJude046/A-Path-finding-project/config"
	"github.com/VictorJude046/A-Path-finding-project/core"
	"github.com/VictorJude046/A-Path-finding-project/logger"
	"github.com/VictorJude046/A-Path-finding-project/world"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (defaults when empty)")
	from := flag.String("from", "0,0", "Robot cell as x,y")
	to := flag.String("to", "", "Destination cell as x,y (default: far corner)")
	objects := flag.Int("objects", 0, "Random objects to spawn before planning")
	seed := flag.Int64("seed", 0, "Random seed (0 = clock)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	w, err := world.NewWithRand(cfg, rand.New(rand.NewSource(*seed)))
	if err != nil {
		fatal(err)
	}

	start, err := parsePoint(*from)
	if err != nil {
		fatal(fmt.Errorf("-from: %w", err))
	}
	goal := core.Point{X: w.Cols() - 1, Y: w.Rows() - 1}
	if *to != "" {
		if goal, err = parsePoint(*to); err != nil {
			fatal(fmt.Errorf("-to: %w", err))
		}
	}

	if _, err := w.PlaceAgent(start); err != nil {
		fatal(err)
	}
	for i := 0; i < *objects; i++ {
		if _, err := w.SpawnObject(); err != nil {
			fmt.Fprintf(os.Stderr, "Spawned %d of %d objects: %v\n", i, *objects, err)
			break
		}
	}

	path, err := w.SetDestination(goal)
	draw(os.Stdout, w.View())

	switch {
	case err == nil:
		fmt.Printf("Route: %d steps\n", len(path))
	case errors.Is(err, core.ErrNoPathFound):
		fmt.Println("Status: Unreachable")
		os.Exit(2)
	default:
		fatal(err)
	}
}

// draw prints the grid, S is the robot, E the destination
func draw(out io.Writer, v world.View) {
	glyphs := make([][]rune, v.Rows)
	for y := range glyphs {
		glyphs[y] = []rune(strings.Repeat(" ", v.Cols))
	}
	for _, p := range v.Obstacles {
		glyphs[p.Y][p.X] = '█'
	}
	for _, p := range v.Route {
		glyphs[p.Y][p.X] = '•'
	}
	for _, e := range v.Entities {
		glyphs[e.Pos.Y][e.Pos.X] = 'o'
	}
	if v.HasAgent {
		glyphs[v.Agent.Pos.Y][v.Agent.Pos.X] = 'S'
	}
	if v.HasDestination {
		glyphs[v.Destination.Y][v.Destination.X] = 'E'
	}

	border := "+" + strings.Repeat("-", v.Cols) + "+"
	fmt.Fprintln(out, border)
	for _, row := range glyphs {
		fmt.Fprintf(out, "|%s|\n", string(row))
	}
	fmt.Fprintln(out, border)
}

func parsePoint(s string) (core.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Point{}, err
	}
	return core.Point{X: x, Y: y}, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "route-print: %v\n", err)
	os.Exit(1)
}
