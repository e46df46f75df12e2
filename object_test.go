package loopback

import (
	"math"
	"testing"
)

// newCenteredObject mirrors the world's seed object: centered in an 800×600
// buffer at scale 0.6, rotation 0.
func newCenteredObject() *ViewportObject {
	return NewViewportObject(Transform{
		Position: V2(400, 300),
		Scale:    0.6,
		Alpha:    128,
	}, 800, 600)
}

func TestObjectTranslateDragScenario(t *testing.T) {
	o := newCenteredObject()

	// Press on the center: the translate cross is under the cursor.
	if !o.HandleInput(V2(400, 300), ClickPressed) {
		t.Fatal("press at center not consumed")
	}
	if o.Grabbed() != HandleTranslate {
		t.Fatalf("grabbed = %v, want Translate", o.Grabbed())
	}

	// Drag right: position follows the raw cursor.
	if !o.HandleInput(V2(450, 300), ClickHeld) {
		t.Fatal("held drag not consumed")
	}
	assertVec(t, "position after drag", o.Transform.Position, V2(450, 300), epsilon)

	// Release: grab clears, position stays.
	if !o.HandleInput(V2(450, 300), ClickReleased) {
		t.Fatal("release not consumed")
	}
	if o.Grabbed() != HandleNone {
		t.Errorf("grab not cleared on release: %v", o.Grabbed())
	}
	assertVec(t, "position after release", o.Transform.Position, V2(450, 300), epsilon)
}

func TestObjectAbsorbsInsideCanvas(t *testing.T) {
	o := newCenteredObject()

	// Local (250, -100) is inside the canvas but on no handle.
	cursor := o.Transform.Apply(V2(250, -100))
	if !o.HandleInput(cursor, ClickPressed) {
		t.Fatal("press over empty interior must still be consumed")
	}
	if o.Hovered() != HandleNone {
		t.Errorf("hover = %v, want None", o.Hovered())
	}
	if o.Grabbed() != HandleNone {
		t.Errorf("grab = %v, want None", o.Grabbed())
	}
	if !o.ControlsVisible() {
		t.Error("controls should show while the cursor is inside the canvas")
	}
}

func TestObjectIgnoresOutsideCanvas(t *testing.T) {
	o := newCenteredObject()

	// First hover inside so the controls are showing.
	o.HandleInput(V2(400, 300), ClickIdle)
	if !o.ControlsVisible() {
		t.Fatal("controls should show while hovering inside")
	}

	// Local x just past the canvas edge.
	cursor := o.Transform.Apply(V2(410, 0))
	if o.HandleInput(cursor, ClickPressed) {
		t.Fatal("input outside the canvas must not be consumed")
	}
	if o.ControlsVisible() {
		t.Error("controls should hide once the cursor leaves the canvas")
	}
	if o.Hovered() != HandleNone {
		t.Errorf("hover = %v, want None", o.Hovered())
	}
}

func TestObjectDeletePressKillsImmediately(t *testing.T) {
	o := newCenteredObject()
	halfW, halfH := o.halfExtents()
	u := handleUnit(halfW, halfH, o.Transform.Scale)

	cursor := o.Transform.Apply(V2(-halfW+u/2, -halfH+u/2))
	if !o.HandleInput(cursor, ClickPressed) {
		t.Fatal("delete press not consumed")
	}
	if !o.Dead() {
		t.Error("delete press must set the dead flag")
	}
	if o.Grabbed() != HandleNone {
		t.Errorf("delete must not enter a grab state, got %v", o.Grabbed())
	}
}

func TestObjectScaleDrag(t *testing.T) {
	o := newCenteredObject()
	halfW, halfH := o.halfExtents()
	u := handleUnit(halfW, halfH, o.Transform.Scale)

	press := o.Transform.Apply(V2(halfW-u/2, halfH-u/2))
	if !o.HandleInput(press, ClickPressed) {
		t.Fatal("scale press not consumed")
	}
	if o.Grabbed() != HandleScale {
		t.Fatalf("grabbed = %v, want Scale", o.Grabbed())
	}
	if !o.hasScaleAnchor {
		t.Error("scale grab must record the press position as an anchor")
	}

	// |d| = 300, reference half-diagonal 500, aspect 800/600:
	// scale = 300 * (4/3) / 500 = 0.8.
	o.HandleInput(V2(700, 300), ClickHeld)
	assertNear(t, "scale", o.Transform.Scale, 0.8, 1e-9)

	// Far cursor clamps high, near cursor clamps low.
	o.HandleInput(V2(400, 2300), ClickHeld)
	assertNear(t, "scale clamped high", o.Transform.Scale, 1.0, epsilon)
	o.HandleInput(V2(410, 300), ClickHeld)
	assertNear(t, "scale clamped low", o.Transform.Scale, 0.1, epsilon)

	o.HandleInput(V2(410, 300), ClickReleased)
	if o.hasScaleAnchor {
		t.Error("scale anchor must clear on release")
	}
}

func TestObjectRotateDrag(t *testing.T) {
	o := newCenteredObject()
	halfW, halfH := o.halfExtents()
	u := handleUnit(halfW, halfH, o.Transform.Scale)

	press := o.Transform.Apply(V2(0, -halfH+u/2))
	if !o.HandleInput(press, ClickPressed) {
		t.Fatal("rotate press not consumed")
	}
	if o.Grabbed() != HandleRotate {
		t.Fatalf("grabbed = %v, want Rotate", o.Grabbed())
	}

	// Cursor straight above the center: rotation settles at 0.
	o.HandleInput(V2(400, 100), ClickHeld)
	assertNear(t, "rotation above", o.Transform.Rotation, 0, 1e-9)

	// Cursor to the right: quarter turn clockwise.
	o.HandleInput(V2(600, 300), ClickHeld)
	assertNear(t, "rotation right", o.Transform.Rotation, math.Pi/2, 1e-9)
}

// Sweeping the cursor clockwise around the object must produce a
// monotonically increasing rotation with no jumps between samples.
func TestObjectRotateSweepIsContinuous(t *testing.T) {
	o := newCenteredObject()
	halfW, halfH := o.halfExtents()
	u := handleUnit(halfW, halfH, o.Transform.Scale)
	o.HandleInput(o.Transform.Apply(V2(0, -halfH+u/2)), ClickPressed)

	prev := math.Inf(-1)
	// Sweep from straight-up clockwise almost all the way around, staying
	// off the branch cut at straight-down.
	for a := -math.Pi / 2; a < math.Pi/2-0.05; a += 0.05 {
		c := V2(400+200*math.Sin(a), 300-200*math.Cos(a))
		o.HandleInput(c, ClickHeld)
		if o.Transform.Rotation < prev {
			t.Fatalf("rotation not monotonic at sweep angle %v: %v < %v", a, o.Transform.Rotation, prev)
		}
		if prev != math.Inf(-1) && o.Transform.Rotation-prev > 0.2 {
			t.Fatalf("rotation jumped at sweep angle %v: %v -> %v", a, prev, o.Transform.Rotation)
		}
		prev = o.Transform.Rotation
	}
}

// While a grab is active, no new hover is computed and the object keeps
// consuming input even with the cursor far outside its canvas.
func TestObjectGrabShortCircuits(t *testing.T) {
	o := newCenteredObject()
	o.HandleInput(V2(400, 300), ClickPressed) // grab translate

	if !o.HandleInput(V2(-5000, -5000), ClickHeld) {
		t.Fatal("grabbed object must consume input wherever the cursor goes")
	}
	if o.Hovered() != HandleTranslate {
		t.Errorf("hover recomputed during grab: %v", o.Hovered())
	}
	if o.Grabbed() != HandleTranslate {
		t.Errorf("grab lost during drag: %v", o.Grabbed())
	}
}

func TestObjectScaleClampOnConstruction(t *testing.T) {
	o := NewViewportObject(Transform{Position: V2(0, 0), Scale: 7}, 800, 600)
	assertNear(t, "constructed scale", o.Transform.Scale, 1.0, epsilon)
	o = NewViewportObject(Transform{Position: V2(0, 0), Scale: 0.001}, 800, 600)
	assertNear(t, "constructed scale", o.Transform.Scale, 0.1, epsilon)
}
