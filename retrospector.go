package retrospector

// Location is a position on the canvas in pixel coordinates. The origin is
// the top-left corner, with DY increasing downward. Locations are plain
// values and are always passed by value into draw calls.
type Location struct {
	DX, DY float64
}

// Rect is an axis-aligned rectangle in canvas pixel coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap. Adjacent rectangles
// (sharing only an edge) are considered intersecting, so a sprite box
// touching the canvas edge still counts as visible.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}
