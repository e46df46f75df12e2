package loopback

import "math"

// Handle identifies one manipulation region of a viewport object. At most
// one handle is hovered and at most one is grabbed at any time; a handle is
// only ever grabbed while hovered on the tick of the press.
type Handle uint8

const (
	HandleNone      Handle = iota // no handle
	HandleRotate                  // arc band at the top edge; drag to rotate
	HandleTranslate               // cross at the center; drag to move
	HandleScale                   // square at the bottom-right corner; drag to resize
	HandleDelete                  // square at the top-left corner; press to remove
)

// String returns the name of the handle, for test failures and logs.
func (h Handle) String() string {
	switch h {
	case HandleNone:
		return "None"
	case HandleRotate:
		return "Rotate"
	case HandleTranslate:
		return "Translate"
	case HandleScale:
		return "Scale"
	case HandleDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// handleSize is the on-screen edge length of a handle hit zone, in buffer
// pixels. Zones are specified in local space, so the local extent is this
// divided by the object's current scale (capped so zones stay disjoint on
// small or heavily shrunken canvases).
const handleSize = 20.0

// handleUnit returns the local-space size of one handle unit for a canvas of
// halfW × halfH local half-extents at the given scale.
func handleUnit(halfW, halfH, scale float64) float64 {
	u := handleSize / scale
	limit := math.Min(halfW, halfH) / 5
	if u > limit {
		u = limit
	}
	return u
}

// hitTestHandle maps a local-space point to the handle whose zone contains
// it, testing in priority order: Rotate, Translate, Scale, Delete. The
// caller has already established that the point lies inside the canvas
// bounds (±halfW, ±halfH).
//
// Zone layout (u = handleUnit):
//
//	Rotate:    band along the top edge, |x| <= 3u, y within u of -halfH
//	Translate: cross at the center, arms 2u long and u/2 wide
//	Scale:     u × u square in the bottom-right corner
//	Delete:    u × u square in the top-left corner
//
// With u capped at min(halfW, halfH)/5 the four zones are pairwise disjoint
// at every legal scale.
func hitTestHandle(local Vec2, halfW, halfH, scale float64) Handle {
	u := handleUnit(halfW, halfH, scale)

	if math.Abs(local.X) <= 3*u && local.Y <= -halfH+u {
		return HandleRotate
	}
	if (math.Abs(local.X) <= u/2 && math.Abs(local.Y) <= 2*u) ||
		(math.Abs(local.Y) <= u/2 && math.Abs(local.X) <= 2*u) {
		return HandleTranslate
	}
	if local.X >= halfW-u && local.Y >= halfH-u {
		return HandleScale
	}
	if local.X <= -halfW+u && local.Y <= -halfH+u {
		return HandleDelete
	}
	return HandleNone
}

// tint picks the palette tier for handle h given the current hover and grab.
func (p Palette) tint(h, hovered, grabbed Handle) Color {
	switch h {
	case grabbed:
		return p.Grab
	case hovered:
		return p.Hover
	default:
		return p.Idle
	}
}
