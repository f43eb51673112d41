package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/VictorJude046/A-Path-finding-project/audio"
	"github.com/VictorJude046/A-Path-finding-project/config"
	"github.com/VictorJude046/A-Path-finding-project/core"
	"github.com/VictorJude046/A-Path-finding-project/logger"
	"github.com/VictorJude046/A-Path-finding-project/occupancy"
	"github.com/VictorJude046/A-Path-finding-project/world"
)

// clickMode decides what a left click on a free cell does
type clickMode uint8

const (
	modeAgent clickMode = iota
	modeDestination
)

func (m clickMode) String() string {
	if m == modeDestination {
		return "DEST"
	}
	return "ROBOT"
}

type app struct {
	screen tcell.Screen
	world  *world.World
	cues   *audio.Cues

	cellSize int
	interval time.Duration

	mode clickMode

	// Mouse state, tcell reports button masks rather than press/release
	buttons  tcell.ButtonMask
	dragging occupancy.EntityID
	hover    core.Point
	hovering bool

	walking bool
	status  string
	failed  bool

	log *logrus.Entry
}

func newApp(screen tcell.Screen, w *world.World, cues *audio.Cues, cfg *config.Config) *app {
	return &app{
		screen:   screen,
		world:    w,
		cues:     cues,
		cellSize: cfg.Grid.CellSize,
		interval: cfg.Animation.StepInterval,
		status:   "r robot · d destination · o object · p walk · right-click obstacle · q quit",
		log:      logger.For("driver"),
	}
}

func (a *app) run() {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	goSafe(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	})

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			if a.walking {
				a.step()
				a.draw()
			}
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'r':
		a.mode = modeAgent
		a.info("Click to place the robot")
	case 'd':
		a.mode = modeDestination
		a.info("Click to set the destination")
	case 'o':
		e, err := a.world.SpawnObject()
		if a.check(err) {
			a.info(fmt.Sprintf("Object %s %s at (%d,%d)", e.Look.Color, e.Look.Shape, e.Pos.X, e.Pos.Y))
		}
	case 'c':
		path, err := a.world.Recompute()
		if a.check(err) {
			a.info(fmt.Sprintf("Route: %d steps", len(path)))
		}
	case 'p':
		if len(a.world.View().Route) == 0 {
			a.fail("No route to walk, set a destination first")
			return true
		}
		a.walking = true
		a.info("Walking")
	}
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	btns := ev.Buttons()
	prev := a.buttons
	a.buttons = btns

	cell, inside := a.cellAt(ev.Position())
	a.hover, a.hovering = cell, inside

	pressed := btns&^prev
	released := prev&^btns

	switch {
	case pressed&tcell.Button1 != 0 && inside:
		a.leftClick(cell)

	case btns&tcell.Button1 != 0 && a.dragging != "" && inside:
		if err := a.world.DragEntity(a.dragging, cell); err != nil {
			a.reject(err)
		}

	case released&tcell.Button1 != 0:
		a.dragging = ""

	case pressed&tcell.Button2 != 0 && inside:
		res, err := a.world.ToggleObstacle(cell)
		if a.check(err) && res.Changed {
			a.info(fmt.Sprintf("Obstacle at (%d,%d)", cell.X, cell.Y))
		}
	}
}

// leftClick grabs an entity under the cursor, otherwise applies the click mode
func (a *app) leftClick(cell core.Point) {
	if e, ok := a.world.EntityAt(cell); ok {
		a.dragging = e.ID
		a.walking = false
		return
	}

	switch a.mode {
	case modeAgent:
		a.walking = false
		if _, err := a.world.PlaceAgent(cell); a.check(err) {
			a.info(fmt.Sprintf("Robot at (%d,%d)", cell.X, cell.Y))
		}
	case modeDestination:
		a.walking = false
		path, err := a.world.SetDestination(cell)
		if a.check(err) {
			a.info(fmt.Sprintf("Route: %d steps, press p to walk", len(path)))
		}
	}
}

func (a *app) step() {
	res, err := a.world.Step()
	if err != nil {
		a.walking = false
		a.reject(err)
		return
	}
	if res.Arrived {
		a.walking = false
		a.cues.Play(audio.CueArrive)
		a.info("Arrived")
		return
	}
	a.cues.Play(audio.CueStep)
}

// check reports err to the status line, returns true when err is nil
func (a *app) check(err error) bool {
	if err == nil {
		return true
	}
	a.reject(err)
	return false
}

func (a *app) reject(err error) {
	a.cues.Play(audio.CueReject)
	switch {
	case errors.Is(err, core.ErrCellOccupiedByAgent):
		a.fail("Robot is standing there")
	case errors.Is(err, core.ErrCellBlocked):
		a.fail("Cell is blocked")
	case errors.Is(err, core.ErrNoAgent):
		a.fail("Place the robot first (r)")
	case errors.Is(err, core.ErrNoPathFound):
		a.fail("No route to destination")
	case errors.Is(err, core.ErrNoSpaceAvailable):
		a.fail("No free cell for an object")
	default:
		a.fail(err.Error())
	}
	a.log.WithError(err).Debug("Rejected")
}

func (a *app) info(msg string) {
	a.status, a.failed = msg, false
}

func (a *app) fail(msg string) {
	a.status, a.failed = msg, true
}
