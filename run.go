package loopback

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title   string
	ShowFPS bool

	// StartMode is the draw mode at startup. Keys 1/2/3 switch between
	// Dual, Edit, and View at runtime.
	StartMode DrawMode

	// Runner optionally replays a scripted input sequence (see
	// LoadTestScript) before live input takes over.
	Runner *TestRunner
}

// Game drives a World from the Ebitengine loop: it samples input, runs one
// World tick per update, and presents the finished byte buffer. Implement
// ebiten.Game yourself instead if you need to compose the editor with other
// content.
type Game struct {
	world   *World
	sampler Sampler
	runner  *TestRunner
	mode    DrawMode
	showFPS bool

	lastUpdate time.Duration // timing fed to the debug log
}

// NewGame wraps a world for the Ebitengine loop.
func NewGame(world *World, cfg RunConfig) *Game {
	return &Game{
		world:   world,
		runner:  cfg.Runner,
		mode:    cfg.StartMode,
		showFPS: cfg.ShowFPS,
	}
}

// Mode returns the current draw mode.
func (g *Game) Mode() DrawMode { return g.mode }

// Update samples input and advances the world by one tick.
// Escape terminates; 1/2/3 select Dual/Edit/View.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.Key1):
		g.mode = ModeDual
	case ebiten.IsKeyPressed(ebiten.Key2):
		g.mode = ModeEdit
	case ebiten.IsKeyPressed(ebiten.Key3):
		g.mode = ModeView
	}

	if g.runner != nil && !g.runner.Done() {
		g.runner.Step(&g.sampler)
	}

	// In View mode input dispatch to the objects is suppressed entirely.
	if g.mode == ModeView {
		return nil
	}

	g.world.SetTickDelta(1.0 / float32(ebiten.TPS()))
	t0 := time.Now()
	smp := g.sampler.Sample()
	g.world.Update(smp.Cursor, smp.Click)
	g.lastUpdate = time.Since(t0)
	return nil
}

// Draw renders the world's next frame and presents it wholesale.
func (g *Game) Draw(screen *ebiten.Image) {
	t0 := time.Now()
	frame := g.world.Draw(g.mode)
	g.world.debugLog(g.lastUpdate, time.Since(t0))
	screen.WritePixels(frame)

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nmode: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.mode))
	}
}

// Layout pins the logical buffer size regardless of the window size;
// Ebitengine scales the presentation surface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Size()
}

// Run opens a window sized to the world's buffer and runs the editor loop
// until the window closes or Escape is pressed.
func Run(world *World, cfg RunConfig) error {
	w, h := world.Size()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(NewGame(world, cfg)); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
