package retrospector

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrSetup reports a fatal one-time setup failure from [Run]: a nil app or
// an unusable surface configuration. Setup failures are returned
// synchronously and never retried.
var ErrSetup = errors.New("setup failed")

// App is implemented by game objects. The frame loop calls Update then
// Render exactly once per tick, in that order, on a single goroutine.
//
// Update receives the elapsed time in milliseconds since the loop started
// (monotonically non-decreasing across ticks) and a key-state snapshot
// fixed for the whole tick. Render receives the canvas surface. Faults
// inside either callback are the application's responsibility; the loop
// does not catch them.
type App interface {
	Update(elapsedTime float64, keys *KeyState)
	Render(r *Renderer)
}

// Config configures the surface a [Run] loop draws to.
type Config struct {
	// Title identifies the target surface (the window title on desktop,
	// the canvas on wasm builds).
	Title string
	// Width and Height are the surface dimensions in pixels.
	Width  int
	Height int
}

// Run performs one-time setup (validate config, size and title the
// surface, wire key events, construct the key state) and enters the frame
// loop. Setup failures are reported synchronously with [ErrSetup]; after
// setup, Run blocks until the host environment is torn down. There is no
// stop API.
func Run(app App, config Config) error {
	if app == nil {
		return fmt.Errorf("retrospector: nil app: %w", ErrSetup)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("retrospector: surface size %dx%d: %w", config.Width, config.Height, ErrSetup)
	}
	debugf("run: surface %q %dx%d", config.Title, config.Width, config.Height)

	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowSize(config.Width, config.Height)
	// Update never fails, so an error out of the host loop is a failure to
	// bring the surface up.
	if err := ebiten.RunGame(newGame(app, config)); err != nil {
		return fmt.Errorf("retrospector: run: %w: %w", ErrSetup, err)
	}
	return nil
}

// game adapts an App to the host's frame scheduling. It owns the key
// tracker, the per-tick snapshot, and the renderer, keeping the whole loop
// on ebiten's single update goroutine.
type game struct {
	app      App
	keys     KeyState
	snapshot KeyState
	renderer *Renderer
	width    int
	height   int
	start    time.Time
	started  bool
	keyBuf   []ebiten.Key
}

func newGame(app App, config Config) *game {
	return &game{
		app:      app,
		renderer: NewRenderer(nil, float64(config.Width), float64(config.Height)),
		width:    config.Width,
		height:   config.Height,
	}
}

// Update drains this tick's key transitions into the tracker, fixes a
// snapshot, and invokes the app's update. The snapshot makes transitions
// arriving after this point visible only from the next tick.
func (g *game) Update() error {
	if !g.started {
		g.start = time.Now()
		g.started = true
	}

	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, code := range g.keyBuf {
		g.keys.Press(code)
	}
	g.keyBuf = inpututil.AppendJustReleasedKeys(g.keyBuf[:0])
	for _, code := range g.keyBuf {
		g.keys.Release(code)
	}

	g.snapshot = g.keys.Snapshot()
	elapsed := float64(time.Since(g.start)) / float64(time.Millisecond)
	g.app.Update(elapsed, &g.snapshot)
	return nil
}

// Draw binds the renderer to this frame's screen and invokes the app's
// render.
func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.bind(screen)
	g.app.Render(g.renderer)
}

// Layout fixes the logical canvas size regardless of the outer window.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
