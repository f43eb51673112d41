package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/VictorJude046/A-Path-finding-project/audio"
	"github.com/VictorJude046/A-Path-finding-project/config"
	"github.com/VictorJude046/A-Path-finding-project/logger"
	"github.com/VictorJude046/A-Path-finding-project/world"
)

var (
	configPath = flag.String("config", "", "Path to YAML config (defaults when empty)")
	seedFlag   = flag.Int64("seed", 0, "Random seed for placement (0 = clock)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Log to file only, stderr belongs to the screen
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format, logOut)
	log := logger.For("fieldbot")

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w, err := world.NewWithRand(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create world: %v\n", err)
		os.Exit(1)
	}

	cues := audio.NewCues()
	if cfg.Audio.Enabled {
		if err := cues.Initialize(); err != nil {
			// Non-fatal, runs silent
			log.WithError(err).Warn("Audio unavailable")
		}
	}
	defer cues.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	crashScreen = screen
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	app := newApp(screen, w, cues, cfg)
	log.WithField("seed", seed).Info("Session started")
	app.run()
	screen.Fini()
	log.Info("Session ended")
}
