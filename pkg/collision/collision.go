package collision

import "github.com/golangdaddy/lanerush/pkg/vehicle"

// Rect is an axis-aligned rectangle with its origin at the top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// RectOf returns the bounding box of a vehicle
func RectOf(v *vehicle.Vehicle) Rect {
	return Rect{X: v.X, Y: v.Y, W: v.Width, H: v.Height}
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Inset shrinks the rectangle by margin on every side. A margin larger than
// half a side collapses that side to zero around the centre.
func (r Rect) Inset(margin float64) Rect {
	out := Rect{X: r.X + margin, Y: r.Y + margin, W: r.W - 2*margin, H: r.H - 2*margin}
	if out.W < 0 {
		out.X, out.W = r.X+r.W/2, 0
	}
	if out.H < 0 {
		out.Y, out.H = r.Y+r.H/2, 0
	}
	return out
}

// Intersects reports overlap on all four axes. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Detector tests the player against traffic. Both boxes are shrunk by
// Buffer first so the sprites' transparent corners do not trigger a crash.
type Detector struct {
	Buffer float64
}

// Hit reports whether player and enemy collide
func (d Detector) Hit(player, enemy *vehicle.Vehicle) bool {
	return RectOf(player).Inset(d.Buffer).Intersects(RectOf(enemy).Inset(d.Buffer))
}

// First returns the first enemy colliding with the player, or nil
func (d Detector) First(player *vehicle.Vehicle, enemies []*vehicle.Vehicle) *vehicle.Vehicle {
	for _, e := range enemies {
		if d.Hit(player, e) {
			return e
		}
	}
	return nil
}
