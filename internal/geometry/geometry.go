package geometry

import "math"

// Point is a 2D coordinate, world or screen space depending on context.
type Point struct {
	X float64
	Y float64
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Transform is the pan+zoom mapping between world and screen space.
type Transform struct {
	Zoom float64
	Pan  Point
}

// WorldToScreen maps a world point to screen space: screen = world*zoom + pan.
func WorldToScreen(w Point, t Transform) Point {
	return Point{
		X: w.X*t.Zoom + t.Pan.X,
		Y: w.Y*t.Zoom + t.Pan.Y,
	}
}

// ScreenToWorld maps a screen point to world space. Exact algebraic inverse
// of WorldToScreen for any zoom != 0.
func ScreenToWorld(s Point, t Transform) Point {
	return Point{
		X: (s.X - t.Pan.X) / t.Zoom,
		Y: (s.Y - t.Pan.Y) / t.Zoom,
	}
}

// OrbitAngle returns the angle of the index-th of siblings orbit slots,
// measured from the positive X axis.
func OrbitAngle(index, siblings int) float64 {
	return 2 * math.Pi * float64(index) / float64(siblings)
}

// OrbitPosition places the index-th of siblings favorites on a circle of the
// given radius around the group anchor. A group with zero favorites has no
// orbit positions; ok is false and the caller must skip the favorite rather
// than propagate a NaN position.
func OrbitPosition(anchor Point, index, siblings int, radius float64) (Point, bool) {
	if siblings <= 0 {
		return Point{}, false
	}
	theta := OrbitAngle(index, siblings)
	return Point{
		X: anchor.X + radius*math.Cos(theta),
		Y: anchor.Y + radius*math.Sin(theta),
	}, true
}
