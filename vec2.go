package loopback

import "math"

// Vec2 is a 2D vector. Operations are value-to-value: no receiver is ever
// mutated.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Div returns the component-wise quotient a / b.
func (a Vec2) Div(b Vec2) Vec2 {
	return Vec2{a.X / b.X, a.Y / b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// ScaleDiv returns the scalar quotient a / s.
func (a Vec2) ScaleDiv(s float64) Vec2 {
	return Vec2{a.X / s, a.Y / s}
}

// Rotate returns the vector rotated by angle radians. With the buffer's
// y-down coordinate convention a positive angle appears clockwise on screen.
func (a Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: a.X*cos - a.Y*sin,
		Y: a.Y*cos + a.X*sin,
	}
}

// Magnitude returns the length of the vector.
func (a Vec2) Magnitude() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Normalized returns the unit vector pointing in the same direction.
// The zero vector is a precondition violation; the result is undefined.
func (a Vec2) Normalized() Vec2 {
	m := a.Magnitude()
	return Vec2{a.X / m, a.Y / m}
}
