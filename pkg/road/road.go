package road

import (
	"cmp"
	"math"
	"slices"

	"github.com/golangdaddy/lanerush/pkg/vehicle"
)

// LaneController tracks which vehicles currently occupy one lane
type LaneController struct {
	index     int
	offset    float64
	occupants []*vehicle.Vehicle // ordered by Y ascending, not owned
}

// NewLaneController creates an empty lane at the given X offset
func NewLaneController(laneIndex int, offset float64) *LaneController {
	return &LaneController{
		index:     laneIndex,
		offset:    offset,
		occupants: make([]*vehicle.Vehicle, 0),
	}
}

// Index returns the lane index
func (lc *LaneController) Index() int {
	return lc.index
}

// Offset returns the X offset vehicles in this lane are drawn at
func (lc *LaneController) Offset() float64 {
	return lc.offset
}

func (lc *LaneController) insert(v *vehicle.Vehicle) {
	i, _ := slices.BinarySearchFunc(lc.occupants, v.Y, func(o *vehicle.Vehicle, y float64) int {
		return cmp.Compare(o.Y, y)
	})
	lc.occupants = slices.Insert(lc.occupants, i, v)
}

func (lc *LaneController) remove(v *vehicle.Vehicle) {
	if i := slices.Index(lc.occupants, v); i >= 0 {
		lc.occupants = slices.Delete(lc.occupants, i, i+1)
	}
}

func (lc *LaneController) sort() {
	slices.SortStableFunc(lc.occupants, func(a, b *vehicle.Vehicle) int {
		return cmp.Compare(a.Y, b.Y)
	})
}

// RoadController owns the lanes and their occupancy lists
type RoadController struct {
	lanes []*LaneController
}

// NewRoadController creates one lane per offset
func NewRoadController(offsets []float64) *RoadController {
	rc := &RoadController{
		lanes: make([]*LaneController, 0, len(offsets)),
	}
	for i, off := range offsets {
		rc.AddLaneController(NewLaneController(i, off))
	}
	return rc
}

func (rc *RoadController) AddLaneController(laneController *LaneController) {
	rc.lanes = append(rc.lanes, laneController)
}

// NumLanes returns the number of lanes
func (rc *RoadController) NumLanes() int {
	return len(rc.lanes)
}

// LaneAt returns the X offset of a lane. Out of range indices are clamped.
func (rc *RoadController) LaneAt(index int) float64 {
	return rc.lane(index).offset
}

// LaneFor returns the lane whose offset is nearest to x
func (rc *RoadController) LaneFor(x float64) int {
	x = vehicle.Sanitize(x)
	best, bestDist := 0, math.Inf(1)
	for _, lc := range rc.lanes {
		if d := math.Abs(lc.offset - x); d < bestDist {
			best, bestDist = lc.index, d
		}
	}
	return best
}

// OccupantsOf returns the vehicles in a lane ordered by Y ascending.
// The slice is shared and only valid until the next Rebuild or Move.
func (rc *RoadController) OccupantsOf(index int) []*vehicle.Vehicle {
	return rc.lane(index).occupants
}

// Rebuild recomputes every lane's occupancy from the vehicles' current
// positions. Lane membership is derived from X, and non-finite
// coordinates are reset to 0 first.
func (rc *RoadController) Rebuild(enemies []*vehicle.Vehicle) {
	for _, lc := range rc.lanes {
		lc.occupants = lc.occupants[:0]
	}
	for _, v := range enemies {
		v.Sanitize()
		v.Lane = rc.LaneFor(v.X)
		rc.lanes[v.Lane].occupants = append(rc.lanes[v.Lane].occupants, v)
	}
	for _, lc := range rc.lanes {
		lc.sort()
	}
}

// Topmost returns the occupant with the smallest Y other than except, or
// nil when the lane holds nothing else.
func (rc *RoadController) Topmost(index int, except *vehicle.Vehicle) *vehicle.Vehicle {
	for _, o := range rc.lane(index).occupants {
		if o != except {
			return o
		}
	}
	return nil
}

// NearestBelow returns the closest occupant of v's lane with a strictly
// greater Y, or nil when nothing is ahead of v.
func (rc *RoadController) NearestBelow(v *vehicle.Vehicle) *vehicle.Vehicle {
	var nearest *vehicle.Vehicle
	for _, o := range rc.lane(v.Lane).occupants {
		if o == v || o.Y <= v.Y {
			continue
		}
		if nearest == nil || o.Y < nearest.Y {
			nearest = o
		}
	}
	return nearest
}

// Add puts v into a lane, snapping its X to the lane offset
func (rc *RoadController) Add(v *vehicle.Vehicle, index int) {
	lc := rc.lane(index)
	v.Lane = lc.index
	v.X = lc.offset
	lc.insert(v)
}

// Move transfers v to another lane after it has been repositioned
func (rc *RoadController) Move(v *vehicle.Vehicle, to int) {
	for _, lc := range rc.lanes {
		lc.remove(v)
	}
	rc.Add(v, to)
}

// Emptiest returns the indices of the lanes with the fewest occupants,
// not counting except
func (rc *RoadController) Emptiest(except *vehicle.Vehicle) []int {
	fewest := math.MaxInt
	var out []int
	for _, lc := range rc.lanes {
		switch n := lc.count(except); {
		case n < fewest:
			fewest = n
			out = append(out[:0], lc.index)
		case n == fewest:
			out = append(out, lc.index)
		}
	}
	return out
}

// Empty returns the indices of lanes with no occupants besides except
func (rc *RoadController) Empty(except *vehicle.Vehicle) []int {
	var out []int
	for _, lc := range rc.lanes {
		if lc.count(except) == 0 {
			out = append(out, lc.index)
		}
	}
	return out
}

func (lc *LaneController) count(except *vehicle.Vehicle) int {
	n := len(lc.occupants)
	if except != nil && slices.Contains(lc.occupants, except) {
		n--
	}
	return n
}

// Offsets returns every lane's X offset in index order
func (rc *RoadController) Offsets() []float64 {
	out := make([]float64, len(rc.lanes))
	for i, lc := range rc.lanes {
		out[i] = lc.offset
	}
	return out
}

func (rc *RoadController) lane(index int) *LaneController {
	if index < 0 {
		index = 0
	}
	if index >= len(rc.lanes) {
		index = len(rc.lanes) - 1
	}
	return rc.lanes[index]
}
