package loopback

import (
	"math"

	"github.com/tanema/gween"
)

const (
	minScale = 0.1
	maxScale = 1.0
)

// ViewportObject is one manipulable viewport: a Transform plus the
// interaction state of its manipulation handles. The World owns the ordered
// collection of objects; the object itself only knows its own canvas bounds
// (the framebuffer dimensions, since a viewport resamples the whole frame).
type ViewportObject struct {
	Transform Transform

	canvasW float64
	canvasH float64

	hover           Handle
	grab            Handle
	controlsVisible bool
	scaleAnchor     Vec2 // buffer-space press position of a scale grab
	hasScaleAnchor  bool
	dead            bool

	fade *gween.Tween // spawn fade-in; nil once finished
}

// NewViewportObject creates an object over a canvasW × canvasH buffer.
// Scale is clamped into [0.1, 1.0] on the way in.
func NewViewportObject(t Transform, canvasW, canvasH float64) *ViewportObject {
	t.Scale = clamp(t.Scale, minScale, maxScale)
	return &ViewportObject{
		Transform: t,
		canvasW:   canvasW,
		canvasH:   canvasH,
	}
}

// Hovered returns the handle currently under the cursor, or HandleNone.
func (o *ViewportObject) Hovered() Handle { return o.hover }

// Grabbed returns the handle currently being dragged, or HandleNone.
func (o *ViewportObject) Grabbed() Handle { return o.grab }

// ControlsVisible reports whether the cursor was inside the object's canvas
// on the last input sample, which is what makes the handles show.
func (o *ViewportObject) ControlsVisible() bool { return o.controlsVisible }

// Dead reports whether the delete handle has been pressed. The World removes
// dead objects at the end of the dispatch pass.
func (o *ViewportObject) Dead() bool { return o.dead }

// halfExtents returns the local-space canvas half-extents.
func (o *ViewportObject) halfExtents() (float64, float64) {
	return o.canvasW / 2, o.canvasH / 2
}

// HandleInput hit-tests one input sample against the object and advances its
// hover/grab state machine. It reports whether the object consumed the
// sample: true whenever a grab is active or the cursor is inside the canvas,
// so the front object absorbs input even over empty interior space and
// nothing clicks through to objects behind it.
func (o *ViewportObject) HandleInput(cursor Vec2, click ClickState) bool {
	// An active grab short-circuits: the handle's effect is recomputed from
	// the raw cursor, and no new hover is evaluated until release.
	if o.grab != HandleNone {
		o.dragGrabbed(cursor)
		if click == ClickReleased {
			o.grab = HandleNone
			o.hasScaleAnchor = false
		}
		return true
	}

	local := o.Transform.ApplyInverse(cursor)
	halfW, halfH := o.halfExtents()
	if math.Abs(local.X) > halfW || math.Abs(local.Y) > halfH {
		o.controlsVisible = false
		o.hover = HandleNone
		return false
	}

	o.controlsVisible = true
	o.hover = hitTestHandle(local, halfW, halfH, o.Transform.Scale)

	if click == ClickPressed && o.hover != HandleNone {
		switch o.hover {
		case HandleDelete:
			// Delete acts on press; there is nothing to drag.
			o.dead = true
		case HandleScale:
			o.scaleAnchor = cursor
			o.hasScaleAnchor = true
			o.grab = HandleScale
		default:
			o.grab = o.hover
		}
	}
	return true
}

// dragGrabbed applies the grabbed handle's effect for one tick, from the
// raw buffer-space cursor.
func (o *ViewportObject) dragGrabbed(cursor Vec2) {
	d := cursor.Sub(o.Transform.Position)
	switch o.grab {
	case HandleRotate:
		// Angle of the cursor around the center, zero with the handle edge
		// pointing straight up, increasing clockwise on screen. The atan2
		// branch cut sits at straight-down, far from the handle, so the
		// rotation stays continuous while dragging.
		o.Transform.Rotation = math.Atan2(d.X, -d.Y)
	case HandleTranslate:
		o.Transform.Position = cursor
	case HandleScale:
		halfW, halfH := o.halfExtents()
		ref := math.Hypot(halfW, halfH)
		s := d.Magnitude() * (o.canvasW / o.canvasH) / ref
		o.Transform.Scale = clamp(s, minScale, maxScale)
	}
}

// advance steps the spawn fade-in by dt seconds.
func (o *ViewportObject) advance(dt float32) {
	if o.fade == nil {
		return
	}
	v, done := o.fade.Update(dt)
	o.Transform.Alpha = uint8(v)
	if done {
		o.fade = nil
	}
}

// Draw renders the object's overlay chrome into g: the border grid-lines
// always, and the manipulation handles when the controls are visible. All
// geometry is specified in local space and mapped through the transform, so
// the chrome rotates and scales with the viewport.
func (o *ViewportObject) Draw(g PixelGrid, pal Palette) {
	halfW, halfH := o.halfExtents()

	// Border rectangle plus rule-of-thirds grid-lines.
	o.line(g, V2(-halfW, -halfH), V2(halfW, -halfH), pal.Border)
	o.line(g, V2(halfW, -halfH), V2(halfW, halfH), pal.Border)
	o.line(g, V2(halfW, halfH), V2(-halfW, halfH), pal.Border)
	o.line(g, V2(-halfW, halfH), V2(-halfW, -halfH), pal.Border)
	for _, f := range []float64{-1.0 / 3, 1.0 / 3} {
		o.line(g, V2(halfW*f, -halfH), V2(halfW*f, halfH), pal.Border)
		o.line(g, V2(-halfW, halfH*f), V2(halfW, halfH*f), pal.Border)
	}

	if !o.controlsVisible {
		return
	}
	u := handleUnit(halfW, halfH, o.Transform.Scale)

	// Rotate: band along the top edge.
	c := pal.tint(HandleRotate, o.hover, o.grab)
	o.line(g, V2(-3*u, -halfH+u/2), V2(3*u, -halfH+u/2), c)

	// Translate: cross at the center.
	c = pal.tint(HandleTranslate, o.hover, o.grab)
	o.line(g, V2(-2*u, 0), V2(2*u, 0), c)
	o.line(g, V2(0, -2*u), V2(0, 2*u), c)

	// Scale: square at the bottom-right corner.
	c = pal.tint(HandleScale, o.hover, o.grab)
	o.line(g, V2(halfW-u, halfH-u), V2(halfW, halfH-u), c)
	o.line(g, V2(halfW, halfH-u), V2(halfW, halfH), c)
	o.line(g, V2(halfW, halfH), V2(halfW-u, halfH), c)
	o.line(g, V2(halfW-u, halfH), V2(halfW-u, halfH-u), c)

	// Delete: diagonal cross in the top-left corner.
	c = pal.tint(HandleDelete, o.hover, o.grab)
	o.line(g, V2(-halfW, -halfH), V2(-halfW+u, -halfH+u), c)
	o.line(g, V2(-halfW+u, -halfH), V2(-halfW, -halfH+u), c)
}

// line draws a local-space segment into g through the object's transform,
// sampling densely enough that adjacent samples land on adjacent screen
// pixels.
func (o *ViewportObject) line(g PixelGrid, from, to Vec2, c Color) {
	d := to.Sub(from)
	steps := int(d.Magnitude()*o.Transform.Scale) + 1
	for i := 0; i <= steps; i++ {
		p := from.Add(d.Scale(float64(i) / float64(steps)))
		g.Set(o.Transform.Apply(p), c)
	}
}
