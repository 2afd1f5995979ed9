package vehicle

import "math"

// NoLane marks a vehicle that does not belong to any lane (the player)
const NoLane = -1

// Kind distinguishes the player from traffic
type Kind int

const (
	Enemy Kind = iota
	Player
)

// Vehicle is the numeric record the simulation works on. The presentation
// layer reads it and never writes back.
type Vehicle struct {
	ID      int
	Kind    Kind
	Lane    int // lane index, NoLane for the player
	X, Y    float64
	Width   float64
	Height  float64
	Speed   float64 // last applied vertical advance
	Variant int     // paint scheme, presentation only
}

// NewPlayer creates the player vehicle at the given position
func NewPlayer(x, y, width, height float64) *Vehicle {
	return &Vehicle{
		ID:     0,
		Kind:   Player,
		Lane:   NoLane,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// NewEnemy creates an enemy vehicle in a lane
func NewEnemy(id, lane int, x, y, width, height float64) *Vehicle {
	return &Vehicle{
		ID:     id,
		Kind:   Enemy,
		Lane:   lane,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// Bottom returns the Y of the vehicle's rear edge
func (v *Vehicle) Bottom() float64 {
	return v.Y + v.Height
}

// Sanitize replaces NaN and infinite coordinates with 0
func (v *Vehicle) Sanitize() {
	v.X = Sanitize(v.X)
	v.Y = Sanitize(v.Y)
}

// Sanitize returns 0 for values that are not finite
func Sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
