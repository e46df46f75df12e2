package loopback

// PixelGrid is a non-owning view over an RGBA framebuffer: width*height*4
// bytes, row-major, 4 bytes per pixel. The World constructs one fresh over
// whichever buffer is the current draw target; the view itself holds no
// state beyond the slice and dimensions.
//
// All writes clamp coordinates into bounds. Nothing here can fail.
type PixelGrid struct {
	pix    []byte
	width  int
	height int
}

// NewPixelGrid wraps pix as a width × height grid. pix must be exactly
// width*height*4 bytes long.
func NewPixelGrid(pix []byte, width, height int) PixelGrid {
	return PixelGrid{pix: pix, width: width, height: height}
}

// Width returns the grid width in pixels.
func (g PixelGrid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g PixelGrid) Height() int { return g.height }

// index clamps p componentwise into [0, width-1] × [0, height-1] and returns
// the row-major byte offset of that pixel.
func (g PixelGrid) index(p Vec2) int {
	x := int(clamp(p.X, 0, float64(g.width-1)))
	y := int(clamp(p.Y, 0, float64(g.height-1)))
	return (y*g.width + x) * 4
}

// Set writes c directly at p, clamped into bounds. The alpha byte is set
// opaque. Used for UI chrome: borders, handles, the spawn affordance.
func (g PixelGrid) Set(p Vec2, c Color) {
	i := g.index(p)
	g.pix[i] = c.R
	g.pix[i+1] = c.G
	g.pix[i+2] = c.B
	g.pix[i+3] = 0xff
}

// SetTransformed maps p through t, clamps, and alpha-blends c over the
// destination using t.Alpha: out = dst*(1-a) + src*a in normalized float
// space, rounded back to a byte. The destination is read before it is
// written, so repeated application of several transforms over the same pixel
// compounds in the caller's iteration order.
func (g PixelGrid) SetTransformed(p Vec2, t Transform, c Color) {
	i := g.index(t.Apply(p))
	a := float64(t.Alpha) / 255.0
	g.pix[i] = blendChannel(g.pix[i], c.R, a)
	g.pix[i+1] = blendChannel(g.pix[i+1], c.G, a)
	g.pix[i+2] = blendChannel(g.pix[i+2], c.B, a)
	g.pix[i+3] = 0xff
}

// At returns the color at p, clamped into bounds.
func (g PixelGrid) At(p Vec2) Color {
	i := g.index(p)
	return Color{g.pix[i], g.pix[i+1], g.pix[i+2]}
}

// blendChannel composites one channel: standard "over" with an opaque
// background, performed in [0, 1] float space.
func blendChannel(dst, src uint8, a float64) uint8 {
	d := float64(dst) / 255.0
	s := float64(src) / 255.0
	return uint8((d*(1-a)+s*a)*255.0 + 0.5)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
