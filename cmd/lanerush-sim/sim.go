package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/golangdaddy/lanerush/pkg/autopilot"
	"github.com/golangdaddy/lanerush/pkg/config"
	"github.com/golangdaddy/lanerush/pkg/road"
	"github.com/golangdaddy/lanerush/pkg/sched"
	"github.com/golangdaddy/lanerush/pkg/session"
	"github.com/golangdaddy/lanerush/pkg/vehicle"
)

type options struct {
	frames int
	runs   int
	seed   int64
	pilot  autopilot.Mode
}

// runReport describes one play-through
type runReport struct {
	Frames  int
	Score   uint64
	Speed   float64
	Crashed bool
	CrashID int
	Enemies int
	MinGap  float64 // closest same-lane pair seen, +Inf when no lane ever held two
	Moves   map[autopilot.Move]int
}

// simulate plays opts.runs sessions back to back on a manual clock, one
// frame interval per step, with the autopilot at the wheel. A run that
// follows a crash goes through Restart, one that follows a survived run
// gets a new session.
func simulate(cfg *config.Config, opts options, logger *log.Logger) ([]runReport, error) {
	if opts.runs < 1 {
		return nil, fmt.Errorf("need at least one run, got %d", opts.runs)
	}

	rng := rand.New(rand.NewSource(opts.seed))
	clock := sched.NewManualClock(time.Unix(0, 0))
	pilot := autopilot.New(opts.pilot, cfg.Tuning, rng)
	lanes := road.NewRoadController(cfg.LaneOffsets())

	var s *session.Session
	reports := make([]runReport, 0, opts.runs)
	for run := 0; run < opts.runs; run++ {
		var err error
		if s != nil && s.State() == session.GameOver {
			err = s.Restart()
		} else {
			s, err = session.New(cfg, session.Hooks{}, session.WithRand(rng), session.WithClock(clock), session.WithLogger(logger))
			if err == nil {
				err = s.Start()
			}
		}
		if err != nil {
			return reports, err
		}

		rep := runReport{MinGap: math.Inf(1), Moves: make(map[autopilot.Move]int)}
		for rep.Frames < opts.frames && s.Active() {
			rep.Moves[pilot.Drive(s)]++
			s.Advance(clock.Advance(cfg.FrameInterval))
			rep.Frames++
			rep.MinGap = math.Min(rep.MinGap, minLaneGap(lanes, s.Snapshot()))
		}

		snap := s.Snapshot()
		rep.Score = snap.Score
		rep.Speed = snap.Speed
		rep.Crashed = snap.State == session.GameOver
		rep.CrashID = snap.CrashID
		rep.Enemies = len(snap.Enemies)
		reports = append(reports, rep)
	}
	return reports, nil
}

// minLaneGap returns the smallest distance between consecutive occupants of
// any lane in snap
func minLaneGap(lanes *road.RoadController, snap session.Snapshot) float64 {
	enemies := make([]*vehicle.Vehicle, len(snap.Enemies))
	for i := range snap.Enemies {
		enemies[i] = &snap.Enemies[i]
	}
	lanes.Rebuild(enemies)

	gap := math.Inf(1)
	for lane := 0; lane < lanes.NumLanes(); lane++ {
		occ := lanes.OccupantsOf(lane)
		for i := 1; i < len(occ); i++ {
			gap = math.Min(gap, occ[i].Y-occ[i-1].Y)
		}
	}
	return gap
}
