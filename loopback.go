package loopback

// Color is an 8-bit RGB color. The framebuffer is RGBA but the editor keeps
// the alpha byte opaque; transparency exists only as per-viewport blend
// opacity (see Transform.Alpha).
type Color struct {
	R, G, B uint8
}

// Default editor colors, taken from the clear/accent palette of the first
// feedback prototypes.
var (
	ColorBackground = Color{0x48, 0xb2, 0xe8} // frame clear color, also the feedback sentinel
	ColorBorder     = Color{0x5e, 0x48, 0xe8} // viewport border grid-lines
	ColorIdle       = Color{0x8f, 0x7f, 0xf0} // handle at rest
	ColorHover      = Color{0xd8, 0xd0, 0xfb} // handle under the cursor
	ColorGrab       = Color{0xff, 0xff, 0xff} // handle being dragged
	ColorSpawn      = Color{0x3a, 0x8f, 0xba} // spawn zone at rest
	ColorSpawnHover = Color{0x2e, 0x6e, 0x8f} // spawn zone under the cursor
)

// Palette is the four-tier handle color set used by the overlay pass:
// neutral border chrome, hoverable-at-rest, hovering, and grabbing.
type Palette struct {
	Border Color
	Idle   Color
	Hover  Color
	Grab   Color
}

// DefaultPalette returns the built-in overlay palette.
func DefaultPalette() Palette {
	return Palette{
		Border: ColorBorder,
		Idle:   ColorIdle,
		Hover:  ColorHover,
		Grab:   ColorGrab,
	}
}

// Rect is an axis-aligned rectangle in buffer coordinates. The coordinate
// system has its origin at the top-left of the framebuffer, with X
// increasing right and Y increasing down.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ClickState classifies the primary button for one logical tick.
// ClickPressed fires exactly once on the down-transition and ClickReleased
// exactly once on the up-transition; ClickHeld covers the ticks in between.
type ClickState uint8

const (
	ClickIdle     ClickState = iota // button up, no transition
	ClickPressed                    // down-transition this tick
	ClickHeld                       // button down, no transition
	ClickReleased                   // up-transition this tick
)

// String returns the name of the click state, for test failures and logs.
func (c ClickState) String() string {
	switch c {
	case ClickIdle:
		return "Idle"
	case ClickPressed:
		return "Pressed"
	case ClickHeld:
		return "Held"
	case ClickReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// DrawMode selects which passes World.Draw runs.
type DrawMode uint8

const (
	ModeDual DrawMode = iota // feedback + overlay (default)
	ModeEdit                 // overlay only; the feedback image freezes
	ModeView                 // feedback only; the caller also suppresses input dispatch
)

// String returns the name of the draw mode.
func (m DrawMode) String() string {
	switch m {
	case ModeDual:
		return "Dual"
	case ModeEdit:
		return "Edit"
	case ModeView:
		return "View"
	default:
		return "Unknown"
	}
}
