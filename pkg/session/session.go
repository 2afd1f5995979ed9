package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/golangdaddy/lanerush/pkg/collision"
	"github.com/golangdaddy/lanerush/pkg/config"
	"github.com/golangdaddy/lanerush/pkg/difficulty"
	"github.com/golangdaddy/lanerush/pkg/road"
	"github.com/golangdaddy/lanerush/pkg/sched"
	"github.com/golangdaddy/lanerush/pkg/traffic"
	"github.com/golangdaddy/lanerush/pkg/vehicle"
)

// State is the lifecycle phase of a session
type State int

const (
	Idle State = iota
	Running
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when Start or Restart is called from a
// state that does not allow it
var ErrInvalidTransition = errors.New("invalid session transition")

// Scheduler task names
const (
	TaskFrame = "frame"
	TaskScore = "score"
	TaskSpawn = "spawn"
)

// Hooks are the notifications a UI shell receives. Nil hooks are skipped.
type Hooks struct {
	OnScoreChanged func(score uint64)
	OnGameOver     func(finalScore uint64)
	OnRestart      func()
}

// Option configures a Session
type Option func(*Session)

// WithRand sets the random source used for lanes, jitter and spawn timing
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithClock sets the clock Start, Restart and Update read
func WithClock(c sched.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithLogger sets the logger for lifecycle messages
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Session is one play-through of the game. It is driven from a single
// goroutine: the shell calls Update (or Advance) once per frame and
// forwards input through MoveLeft and MoveRight.
type Session struct {
	cfg     *config.Config
	tier    difficulty.Tier
	profile difficulty.Profile
	hooks   Hooks

	rng   *rand.Rand
	clock sched.Clock
	log   *log.Logger

	state    State
	progress *difficulty.Progression
	player   *vehicle.Vehicle
	enemies  []*vehicle.Vehicle
	ticks    uint64
	crashID  int

	road       *road.RoadController
	markings   *road.Markings
	placer     *traffic.Placer
	spawner    *traffic.Spawner
	integrator *traffic.Integrator
	detector   collision.Detector
	scheduler  *sched.Scheduler
}

// New creates an idle session. The difficulty tier is read from cfg here
// and reused for every restart.
func New(cfg *config.Config, hooks Hooks, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		tier:    cfg.Tier(),
		profile: cfg.Profile(),
		hooks:   hooks,
		clock:   sched.SystemClock{},
		log:     log.New(io.Discard, "", 0),
		state:   Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	t := cfg.Tuning
	s.progress = difficulty.NewProgression(s.profile, uint64(t.Milestone))
	s.player = vehicle.NewPlayer(t.StartLeft(), t.PlayerTop(), t.VehicleWidth, t.VehicleHeight)
	s.road = road.NewRoadController(t.LaneOffsets())
	s.markings = road.NewMarkings(t.RoadLines, t.RoadHeight, t.RoadLineWrap)
	s.placer = &traffic.Placer{
		Road:          s.road,
		Rand:          s.rng,
		VehicleHeight: t.VehicleHeight,
		SafeGap:       t.SafeGap,
		Jitter:        t.SpawnJitter,
		Attempts:      t.PlacementAttempts,
	}
	s.spawner = &traffic.Spawner{
		Road:        s.road,
		Placer:      s.placer,
		Rand:        s.rng,
		Width:       t.VehicleWidth,
		Height:      t.VehicleHeight,
		Max:         t.MaxEnemies,
		MinInterval: t.SpawnMin,
		MaxInterval: t.SpawnMax,
	}
	s.integrator = &traffic.Integrator{
		Road:       s.road,
		Placer:     s.placer,
		Rand:       s.rng,
		RoadHeight: t.RoadHeight,
		SafeGap:    t.SafeGap,
	}
	s.detector = collision.Detector{Buffer: t.CollisionBuffer}

	s.scheduler = sched.New(t.MaxCatchUp)
	s.scheduler.Every(TaskFrame, t.FrameInterval, s.Tick)
	s.scheduler.Every(TaskScore, t.ScoreInterval, s.ScoreTick)
	s.scheduler.Register(TaskSpawn, s.spawner.NextInterval, s.Spawn)

	s.reset()
	return s, nil
}

// Start begins the first play-through
func (s *Session) Start() error {
	if s.state != Idle {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.state)
	}
	s.reset()
	s.state = Running
	s.startTasks()
	s.log.Printf("Session started (difficulty: %s, speed %.1f +%.1f every %d points)",
		s.tier, s.progress.Speed, s.progress.SpeedIncrement, s.cfg.Milestone)
	s.notifyScore()
	return nil
}

// Restart starts a fresh play-through after a game over: score and speed go
// back to the tier's values, the player is centred and the traffic is laid
// out again above the road.
func (s *Session) Restart() error {
	if s.state != GameOver {
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, s.state)
	}
	s.scheduler.StopAll()
	s.reset()
	s.state = Running
	s.startTasks()
	s.log.Printf("Session restarted (difficulty: %s)", s.tier)
	if s.hooks.OnRestart != nil {
		s.hooks.OnRestart()
	}
	s.notifyScore()
	return nil
}

// Update runs every task that is due at the session clock's current time
func (s *Session) Update() int {
	return s.Advance(s.clock.Now())
}

// Advance runs every task that is due at now
func (s *Session) Advance(now time.Time) int {
	return s.scheduler.Advance(now)
}

// Tick advances the traffic by one frame and checks each enemy against the
// player. It does nothing unless the session is running.
func (s *Session) Tick() {
	if s.state != Running {
		return
	}
	speed := s.progress.Speed
	s.integrator.Step(s.enemies, speed, func(e *vehicle.Vehicle) bool {
		if s.detector.Hit(s.player, e) {
			s.crash(e)
			return false
		}
		return true
	})
	if s.state == Running {
		s.markings.Advance(speed)
	}
	s.ticks++
}

// ScoreTick adds one point and applies any milestone speed bump
func (s *Session) ScoreTick() {
	if s.state != Running {
		return
	}
	if s.progress.Tick() {
		s.log.Printf("Milestone %d reached, speed now %.1f", s.progress.Score, s.progress.Speed)
	}
	s.notifyScore()
}

// Spawn adds an enemy unless the cap is reached
func (s *Session) Spawn() {
	if s.state != Running {
		return
	}
	var v *vehicle.Vehicle
	s.enemies, v = s.spawner.Spawn(s.enemies)
	if v != nil {
		s.log.Printf("Spawned vehicle %d in lane %d (%d on the road)", v.ID, v.Lane, len(s.enemies))
	}
}

// MoveLeft steps the player left, stopping at the road edge
func (s *Session) MoveLeft() {
	s.steer(-s.cfg.PlayerStep)
}

// MoveRight steps the player right, stopping at the road edge
func (s *Session) MoveRight() {
	s.steer(s.cfg.PlayerStep)
}

func (s *Session) steer(dx float64) {
	if s.state != Running {
		return
	}
	s.player.X = clamp(vehicle.Sanitize(s.player.X)+dx, s.cfg.MinLeft(), s.cfg.MaxLeft())
}

func (s *Session) crash(e *vehicle.Vehicle) {
	if s.state != Running {
		return
	}
	s.state = GameOver
	s.crashID = e.ID
	s.scheduler.StopAll()
	s.log.Printf("Crashed into vehicle %d, final score %d", e.ID, s.progress.Score)
	if s.hooks.OnGameOver != nil {
		s.hooks.OnGameOver(s.progress.Score)
	}
}

func (s *Session) reset() {
	t := s.cfg.Tuning
	s.progress.Reset(s.profile)
	s.player.X = t.StartLeft()
	s.player.Y = t.PlayerTop()
	s.enemies = s.spawner.Layout(t.InitialEnemies)
	s.markings.Reset()
	s.ticks = 0
	s.crashID = 0
}

func (s *Session) startTasks() {
	now := s.clock.Now()
	s.scheduler.Start(TaskFrame, now)
	s.scheduler.Start(TaskScore, now)
	s.scheduler.Start(TaskSpawn, now)
}

func (s *Session) notifyScore() {
	if s.hooks.OnScoreChanged != nil {
		s.hooks.OnScoreChanged(s.progress.Score)
	}
}

// State returns the lifecycle phase
func (s *Session) State() State {
	return s.state
}

// Active reports whether physics and input are live
func (s *Session) Active() bool {
	return s.state == Running
}

// Score returns the current score
func (s *Session) Score() uint64 {
	return s.progress.Score
}

// Speed returns the current traffic speed in road units per frame
func (s *Session) Speed() float64 {
	return s.progress.Speed
}

// Tier returns the difficulty tier the session was created with
func (s *Session) Tier() difficulty.Tier {
	return s.tier
}

// Config returns the settings the session runs with
func (s *Session) Config() *config.Config {
	return s.cfg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
