package traffic

import (
	"math/rand"

	"github.com/golangdaddy/lanerush/pkg/road"
	"github.com/golangdaddy/lanerush/pkg/vehicle"
)

// Policy decides which lane a vehicle entering the road is put in
type Policy int

const (
	// PreferEmpty picks an empty lane when one exists, otherwise any lane
	PreferEmpty Policy = iota
	// FewestOccupants picks uniformly among the least crowded lanes
	FewestOccupants
	// Uniform picks any lane
	Uniform
)

// Placement is where a vehicle enters the road
type Placement struct {
	Lane     int
	Y        float64
	Attempts int
	Fallback bool // no candidate was clear, Y was stacked above the topmost occupant
}

// Placer finds entry positions above the visible road that keep SafeGap
// to every vehicle already in the chosen lane.
type Placer struct {
	Road *road.RoadController
	Rand *rand.Rand

	VehicleHeight float64
	SafeGap       float64
	Jitter        float64
	Attempts      int
}

// Place draws up to Attempts candidates: a lane by policy and a Y just
// above the road, pushed further up by random jitter on each retry. The
// first candidate clear of every occupant wins. When none is clear the
// last candidate's lane is accepted and the vehicle is stacked above that
// lane's topmost occupant, which always satisfies the gap.
// self is excluded from all occupancy checks and may be nil.
func (p *Placer) Place(policy Policy, self *vehicle.Vehicle) Placement {
	attempts := max(p.Attempts, 1)

	var lane int
	for attempt := 0; attempt < attempts; attempt++ {
		lane = p.pickLane(policy, self)
		y := -p.VehicleHeight - float64(attempt)*p.jitter()
		if p.clear(lane, y, self) {
			return Placement{Lane: lane, Y: y, Attempts: attempt + 1}
		}
	}
	return Placement{Lane: lane, Y: p.Stack(lane, self), Attempts: attempts, Fallback: true}
}

// Stack returns the entry Y for a lane: just above the road, unless the
// lane's topmost occupant is still within SafeGap of the top edge, in
// which case SafeGap plus jitter above that occupant.
func (p *Placer) Stack(lane int, self *vehicle.Vehicle) float64 {
	y := -p.VehicleHeight
	if top := p.Road.Topmost(lane, self); top != nil && top.Y < p.SafeGap {
		y = min(y, top.Y-p.SafeGap-p.jitter())
	}
	return y
}

// PickLane chooses a lane according to policy, ignoring self
func (p *Placer) PickLane(policy Policy, self *vehicle.Vehicle) int {
	return p.pickLane(policy, self)
}

func (p *Placer) pickLane(policy Policy, self *vehicle.Vehicle) int {
	var candidates []int
	switch policy {
	case PreferEmpty:
		candidates = p.Road.Empty(self)
	case FewestOccupants:
		candidates = p.Road.Emptiest(self)
	}
	if len(candidates) == 0 {
		return p.Rand.Intn(p.Road.NumLanes())
	}
	return candidates[p.Rand.Intn(len(candidates))]
}

func (p *Placer) clear(lane int, y float64, self *vehicle.Vehicle) bool {
	for _, o := range p.Road.OccupantsOf(lane) {
		if o == self {
			continue
		}
		if d := o.Y - y; d < p.SafeGap && d > -p.SafeGap {
			return false
		}
	}
	return true
}

func (p *Placer) jitter() float64 {
	if p.Jitter <= 0 {
		return 0
	}
	return p.Rand.Float64() * p.Jitter
}
