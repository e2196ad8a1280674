package obj

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether r and other share a region of non-zero area.
// Rectangles that only touch along an edge or corner do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.MaxX() &&
		other.X < r.MaxX() &&
		r.Y < other.MaxY() &&
		other.Y < r.MaxY()
}

func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}
