package autopilot

import (
	"math"
	"math/rand"

	"github.com/golangdaddy/lanerush/pkg/collision"
	"github.com/golangdaddy/lanerush/pkg/config"
	"github.com/golangdaddy/lanerush/pkg/session"
	"github.com/golangdaddy/lanerush/pkg/vehicle"
)

// Move is one steering decision
type Move int

const (
	Hold Move = iota
	Left
	Right
)

func (m Move) String() string {
	switch m {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "hold"
	}
}

// Mode selects how the pilot steers
type Mode int

const (
	// Cautious looks ahead for enemies and drifts back to the road centre
	Cautious Mode = iota
	// Reckless steers at random
	Reckless
)

// ParseMode maps "cautious" and "reckless" to a Mode, defaulting to Cautious
func ParseMode(s string) Mode {
	if s == "reckless" {
		return Reckless
	}
	return Cautious
}

// DefaultHorizon is how many frames ahead a cautious pilot looks
const DefaultHorizon = 90

// Pilot steers the player vehicle from session snapshots
type Pilot struct {
	Mode    Mode
	Horizon int

	tuning   config.Tuning
	detector collision.Detector
	rng      *rand.Rand
}

// New creates a pilot for a session running with the given tuning
func New(mode Mode, tuning config.Tuning, rng *rand.Rand) *Pilot {
	return &Pilot{
		Mode:     mode,
		Horizon:  DefaultHorizon,
		tuning:   tuning,
		detector: collision.Detector{Buffer: tuning.CollisionBuffer},
		rng:      rng,
	}
}

type candidate struct {
	move Move
	x    float64
}

// Decide picks the next move for the state in snap
func (p *Pilot) Decide(snap session.Snapshot) Move {
	if snap.State != session.Running {
		return Hold
	}
	if p.Mode == Reckless {
		return Move(p.rng.Intn(3))
	}

	x := snap.Player.X
	candidates := []candidate{
		{Hold, x},
		{Left, math.Max(x-p.tuning.PlayerStep, p.tuning.MinLeft())},
		{Right, math.Min(x+p.tuning.PlayerStep, p.tuning.MaxLeft())},
	}

	centre := p.tuning.StartLeft()
	best, bestImpact, bestDist := Hold, -1, math.Inf(1)
	for _, c := range candidates {
		impact := p.impact(snap, c.x)
		dist := math.Abs(c.x - centre)
		if impact > bestImpact || (impact == bestImpact && dist < bestDist) {
			best, bestImpact, bestDist = c.move, impact, dist
		}
	}
	return best
}

// impact returns the first frame within the horizon at which a player at x
// would be hit, or Horizon+1 when the way is clear. Enemies are assumed to
// keep the current speed.
func (p *Pilot) impact(snap session.Snapshot, x float64) int {
	player := snap.Player
	player.X = x

	enemies := make([]*vehicle.Vehicle, len(snap.Enemies))
	for i := range snap.Enemies {
		e := snap.Enemies[i]
		enemies[i] = &e
	}
	for frame := 0; frame <= p.Horizon; frame++ {
		if p.detector.First(&player, enemies) != nil {
			return frame
		}
		for _, e := range enemies {
			e.Y += snap.Speed
		}
	}
	return p.Horizon + 1
}

// Drive decides on a move and applies it to s
func (p *Pilot) Drive(s *session.Session) Move {
	m := p.Decide(s.Snapshot())
	switch m {
	case Left:
		s.MoveLeft()
	case Right:
		s.MoveRight()
	}
	return m
}
