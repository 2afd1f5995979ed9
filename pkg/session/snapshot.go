package session

import "github.com/golangdaddy/lanerush/pkg/vehicle"

// Snapshot is a copy of everything a shell needs to draw one frame.
// It shares no memory with the session.
type Snapshot struct {
	State      State
	Score      uint64
	Speed      float64
	Ticks      uint64
	CrashID    int // enemy the player hit, 0 when none
	Player     vehicle.Vehicle
	Enemies    []vehicle.Vehicle
	RoadLines  []float64
	Lanes      []float64
	RoadWidth  float64
	RoadHeight float64
}

// Snapshot copies the current state for presentation
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Score:      s.progress.Score,
		Speed:      s.progress.Speed,
		Ticks:      s.ticks,
		CrashID:    s.crashID,
		Player:     *s.player,
		Enemies:    make([]vehicle.Vehicle, len(s.enemies)),
		RoadLines:  s.markings.Offsets(),
		Lanes:      s.road.Offsets(),
		RoadWidth:  s.cfg.RoadWidth,
		RoadHeight: s.cfg.RoadHeight,
	}
	for i, e := range s.enemies {
		snap.Enemies[i] = *e
	}
	return snap
}
