package loopback

// Transform is a positioned, rotated, uniformly scaled, semi-transparent
// viewport mapping. Apply maps a point from viewport-local space into buffer
// space; ApplyInverse is its exact algebraic inverse.
//
// Composition order:
//
//	Apply:        Scale -> Rotate -> Translate
//	ApplyInverse: Untranslate -> Unrotate -> Unscale
//
// Hit-testing and the rotate-handle angle math depend on this exact order;
// do not reorder.
type Transform struct {
	Position Vec2
	Rotation float64 // radians, unranged; positive appears clockwise (y-down)
	Scale    float64
	Alpha    uint8 // blend opacity, 0 (invisible) to 255 (opaque)
}

// Apply maps a local-space point to buffer space.
func (t Transform) Apply(p Vec2) Vec2 {
	return p.Scale(t.Scale).Rotate(t.Rotation).Add(t.Position)
}

// ApplyInverse maps a buffer-space point to local space. Zero Scale is a
// precondition violation; the interaction layer clamps Scale to [0.1, 1.0]
// so it can never occur through the editor.
func (t Transform) ApplyInverse(p Vec2) Vec2 {
	return p.Sub(t.Position).Rotate(-t.Rotation).ScaleDiv(t.Scale)
}
