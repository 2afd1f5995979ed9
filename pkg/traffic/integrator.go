package traffic

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/golangdaddy/lanerush/pkg/road"
	"github.com/golangdaddy/lanerush/pkg/vehicle"
)

// StepStats summarises one integration step
type StepStats struct {
	Moved    int
	Blocked  int
	Recycled int
}

// Integrator advances enemy traffic one tick at a time
type Integrator struct {
	Road   *road.RoadController
	Placer *Placer
	Rand   *rand.Rand

	RoadHeight float64
	SafeGap    float64

	order []*vehicle.Vehicle
}

// Step rebuilds lane occupancy from the enemies' positions and then moves
// every enemy down by speed, front-most first. An enemy whose advance would
// leave it closer than SafeGap to the next vehicle ahead in its lane holds
// position for this tick. Enemies that pass the bottom of the road are
// recycled above it in a lane chosen among the least crowded.
//
// visit is called for every enemy after it has moved; returning false ends
// the step early, leaving the remaining enemies in place.
func (in *Integrator) Step(enemies []*vehicle.Vehicle, speed float64, visit func(*vehicle.Vehicle) bool) StepStats {
	var stats StepStats

	in.Road.Rebuild(enemies)

	in.order = append(in.order[:0], enemies...)
	slices.SortStableFunc(in.order, func(a, b *vehicle.Vehicle) int {
		return cmp.Compare(b.Y, a.Y)
	})

	for _, v := range in.order {
		ahead := in.Road.NearestBelow(v)
		if ahead != nil && ahead.Y-(v.Y+speed) < in.SafeGap {
			v.Speed = 0
			stats.Blocked++
		} else {
			v.Y += speed
			v.Speed = speed
			stats.Moved++
		}

		if v.Y > in.RoadHeight {
			in.recycle(v)
			stats.Recycled++
		}

		if visit != nil && !visit(v) {
			break
		}
	}
	return stats
}

func (in *Integrator) recycle(v *vehicle.Vehicle) {
	lane := in.Placer.PickLane(FewestOccupants, v)
	v.Y = in.Placer.Stack(lane, v)
	in.Road.Move(v, lane)
	v.Variant = in.Rand.Intn(Variants)
}
