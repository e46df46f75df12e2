package loopback

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Spawn randomization: new viewports arrive near the buffer center, slightly
// rotated and at roughly half scale, then fade in.
const (
	spawnScaleBase   = 0.545
	spawnScaleJitter = 0.1
	spawnRotJitter   = 0.1
	spawnPosJitter   = 0.125 // fraction of the buffer dimension
	spawnFadeSecs    = 0.4
)

const seedScale = 0.6

// World owns the ordered collection of viewport objects, the spawn hot-zone,
// and the double-buffered framebuffers. One logical tick is one Update (an
// input sample dispatched to the objects) followed by one Draw (the
// recursive feedback resample plus the editing overlay).
//
// Everything is single-threaded and synchronous: the World never reads the
// clock, runs no background work, and is only ever touched from the caller's
// tick.
type World struct {
	width  int
	height int

	objects    []*ViewportObject // index 0 = front: first hit, drawn on top
	spawnZone  Rect
	spawnHover bool

	front []byte // last completed frame (previous frame during Draw)
	back  []byte // scratch target for the next Draw
	clear []byte // prebuilt background, copied wholesale each frame

	background Color
	palette    Palette
	alpha      uint8 // blend opacity given to spawned objects
	rng        *rand.Rand
	tickDelta  float32

	debug bool
	stats frameStats
}

// NewWorld creates a world sized and colored per cfg, seeded with one
// centered viewport object at scale 0.6, rotation 0.
func NewWorld(cfg Config) *World {
	w := &World{
		width:      cfg.Width,
		height:     cfg.Height,
		spawnZone:  Rect{X: cfg.SpawnZoneX, Y: cfg.SpawnZoneY, Width: cfg.SpawnZoneSize, Height: cfg.SpawnZoneSize},
		background: ColorBackground,
		palette:    DefaultPalette(),
		alpha:      cfg.ObjectAlpha,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		tickDelta:  1.0 / 60.0,
		debug:      cfg.Debug,
	}

	n := cfg.Width * cfg.Height * 4
	w.front = make([]byte, n)
	w.back = make([]byte, n)
	w.clear = make([]byte, n)
	for i := 0; i < n; i += 4 {
		w.clear[i] = w.background.R
		w.clear[i+1] = w.background.G
		w.clear[i+2] = w.background.B
		w.clear[i+3] = 0xff
	}
	copy(w.front, w.clear)
	copy(w.back, w.clear)

	seed := NewViewportObject(Transform{
		Position: V2(float64(cfg.Width)/2, float64(cfg.Height)/2),
		Scale:    seedScale,
		Alpha:    cfg.ObjectAlpha,
	}, float64(cfg.Width), float64(cfg.Height))
	w.objects = append(w.objects, seed)
	return w
}

// Size returns the fixed logical buffer dimensions.
func (w *World) Size() (int, int) {
	return w.width, w.height
}

// Objects returns the live objects, front first. The returned slice MUST NOT
// be mutated.
func (w *World) Objects() []*ViewportObject {
	return w.objects
}

// SpawnHovered reports whether the cursor was over the spawn zone on the
// last Update.
func (w *World) SpawnHovered() bool { return w.spawnHover }

// SetTickDelta sets the seconds-per-tick used to advance spawn tweens. The
// caller owns time; the World never reads the clock itself.
func (w *World) SetTickDelta(dt float32) { w.tickDelta = dt }

// SetDebugMode enables per-frame stats logging to stderr.
func (w *World) SetDebugMode(enabled bool) { w.debug = enabled }

// Update dispatches one input sample for this tick: objects are hit-tested
// front-to-back, the first consumer is promoted to the front, dead objects
// are swept after the pass, and a press on the spawn zone appends one new
// object at the back (it becomes topmost only once interacted with).
func (w *World) Update(cursor Vec2, click ClickState) {
	for _, o := range w.objects {
		o.advance(w.tickDelta)
	}

	for i, o := range w.objects {
		if o.HandleInput(cursor, click) {
			w.promote(i)
			break
		}
	}

	// Sweep after the dispatch loop; removing mid-iteration is unsafe.
	live := w.objects[:0]
	for _, o := range w.objects {
		if !o.Dead() {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(w.objects); i++ {
		w.objects[i] = nil
	}
	w.objects = live

	w.spawnHover = w.spawnZone.Contains(cursor.X, cursor.Y)
	if w.spawnHover && click == ClickPressed {
		w.spawn()
	}
}

// promote moves the object at index i to the front, preserving the relative
// order of the others.
func (w *World) promote(i int) {
	if i == 0 {
		return
	}
	o := w.objects[i]
	copy(w.objects[1:i+1], w.objects[:i])
	w.objects[0] = o
}

// spawn appends one randomized viewport object near the buffer center and
// starts its fade-in tween.
func (w *World) spawn() {
	jx := (w.rng.Float64() - 0.5) * float64(w.width) * spawnPosJitter
	jy := (w.rng.Float64() - 0.5) * float64(w.height) * spawnPosJitter
	o := NewViewportObject(Transform{
		Position: V2(float64(w.width)/2+jx, float64(w.height)/2+jy),
		Rotation: (w.rng.Float64() - 0.5) * spawnRotJitter,
		Scale:    spawnScaleBase + (w.rng.Float64()-0.5)*spawnScaleJitter,
	}, float64(w.width), float64(w.height))
	o.fade = gween.New(0, float32(w.alpha), spawnFadeSecs, ease.OutQuad)
	w.objects = append(w.objects, o)
}

// Draw renders the next frame and returns it. The previous frame is fed
// through every live transform (feedback pass, skipped in Edit mode), then
// the editing chrome is drawn on top (overlay pass, skipped in View mode).
// The internal buffers swap on return, so the frame just produced is the
// feedback source of the next tick.
func (w *World) Draw(mode DrawMode) []byte {
	out := w.back
	copy(out, w.clear)
	g := NewPixelGrid(out, w.width, w.height)

	w.stats = frameStats{objects: len(w.objects)}

	if mode != ModeEdit {
		w.feedback(g)
	}
	if mode != ModeView {
		w.overlay(g)
	}

	w.back, w.front = w.front, out
	return out
}

// Frame returns the last completed frame.
func (w *World) Frame() []byte {
	return w.front
}

// feedback composites every non-background pixel of the previous frame
// through every live transform. Objects are iterated back-to-front so the
// front object blends last and lands on top. Each transform maps the pixel's
// center-relative position, so a viewport shows a scaled, rotated, panned
// copy of the whole previous frame centered at its own position.
func (w *World) feedback(g PixelGrid) {
	prev := w.front
	halfW := float64(w.width) / 2
	halfH := float64(w.height) / 2
	bg := w.background

	i := 0
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			r, gr, b := prev[i], prev[i+1], prev[i+2]
			i += 4
			if r == bg.R && gr == bg.G && b == bg.B {
				continue
			}
			w.stats.fedPixels++
			p := V2(float64(x)-halfW, float64(y)-halfH)
			c := Color{r, gr, b}
			for j := len(w.objects) - 1; j >= 0; j-- {
				g.SetTransformed(p, w.objects[j].Transform, c)
				w.stats.blendOps++
			}
		}
	}
}

// overlay draws the spawn affordance and every object's chrome, back to
// front so the front object's handles read on top.
func (w *World) overlay(g PixelGrid) {
	c := ColorSpawn
	if w.spawnHover {
		c = ColorSpawnHover
	}
	for y := w.spawnZone.Y; y <= w.spawnZone.Y+w.spawnZone.Height; y++ {
		for x := w.spawnZone.X; x <= w.spawnZone.X+w.spawnZone.Width; x++ {
			g.Set(V2(x, y), c)
		}
	}

	for i := len(w.objects) - 1; i >= 0; i-- {
		w.objects[i].Draw(g, w.palette)
	}
}
