package session

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/golangdaddy/lanerush/pkg/config"
	"github.com/golangdaddy/lanerush/pkg/road"
	"github.com/golangdaddy/lanerush/pkg/sched"
	"github.com/golangdaddy/lanerush/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type recorder struct {
	scores    []uint64
	gameOvers []uint64
	restarts  int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnScoreChanged: func(score uint64) { r.scores = append(r.scores, score) },
		OnGameOver:     func(final uint64) { r.gameOvers = append(r.gameOvers, final) },
		OnRestart:      func() { r.restarts++ },
	}
}

func newTestSession(t *testing.T, mutate func(*config.Config)) (*Session, *recorder, *sched.ManualClock) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	rec := &recorder{}
	clock := sched.NewManualClock(epoch)
	s, err := New(cfg, rec.hooks(), WithRand(rand.New(rand.NewSource(42))), WithClock(clock))
	require.NoError(t, err)
	return s, rec, clock
}

// injectBlocker puts an enemy straight in front of the centred player
func injectBlocker(s *Session) *vehicle.Vehicle {
	e := vehicle.NewEnemy(99, 0, 150, 50, s.cfg.VehicleWidth, s.cfg.VehicleHeight)
	s.enemies = append(s.enemies, e)
	return e
}

func assertLaneGaps(t *testing.T, s *Session) {
	t.Helper()
	snap := s.Snapshot()
	enemies := make([]*vehicle.Vehicle, len(snap.Enemies))
	for i := range snap.Enemies {
		enemies[i] = &snap.Enemies[i]
	}
	rc := road.NewRoadController(snap.Lanes)
	rc.Rebuild(enemies)
	for lane := 0; lane < rc.NumLanes(); lane++ {
		occ := rc.OccupantsOf(lane)
		for i := 1; i < len(occ); i++ {
			require.GreaterOrEqual(t, occ[i].Y-occ[i-1].Y, s.cfg.SafeGap,
				"lane %d: vehicles %d and %d too close", lane, occ[i-1].ID, occ[i].ID)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.SafeGap = 10
	_, err := New(cfg, Hooks{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestTransitions(t *testing.T) {
	s, rec, _ := newTestSession(t, nil)
	assert.Equal(t, Idle, s.State())
	assert.False(t, s.Active())

	assert.ErrorIs(t, s.Restart(), ErrInvalidTransition)

	require.NoError(t, s.Start())
	assert.Equal(t, Running, s.State())
	assert.True(t, s.Active())
	assert.Equal(t, []uint64{0}, rec.scores)
	assert.ErrorIs(t, s.Start(), ErrInvalidTransition)
	assert.ErrorIs(t, s.Restart(), ErrInvalidTransition)
	assert.Equal(t, Running, s.State())
	assert.Zero(t, rec.restarts)

	injectBlocker(s)
	for i := 0; i < 100 && s.Active(); i++ {
		s.Tick()
	}
	assert.Equal(t, GameOver, s.State())
	assert.False(t, s.Active())
	assert.ErrorIs(t, s.Start(), ErrInvalidTransition)

	require.NoError(t, s.Restart())
	assert.Equal(t, Running, s.State())
	assert.Equal(t, 1, rec.restarts)
}

func TestPlayerClampedUnderInputBurst(t *testing.T) {
	s, _, _ := newTestSession(t, nil)

	s.MoveLeft()
	assert.Equal(t, 150.0, s.Snapshot().Player.X, "input is ignored while idle")

	require.NoError(t, s.Start())
	for i := 0; i < 1000; i++ {
		s.MoveLeft()
		require.GreaterOrEqual(t, s.Snapshot().Player.X, s.cfg.MinLeft())
	}
	assert.Equal(t, -10.0, s.Snapshot().Player.X)

	for i := 0; i < 1000; i++ {
		s.MoveRight()
		require.LessOrEqual(t, s.Snapshot().Player.X, s.cfg.MaxLeft())
	}
	assert.Equal(t, 310.0, s.Snapshot().Player.X)

	s.MoveLeft()
	assert.Equal(t, 285.0, s.Snapshot().Player.X)
}

func TestSpeedBumpsOncePerMilestone(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	require.NoError(t, s.Start())

	steps := []struct {
		score uint64
		speed float64
	}{
		{49, 5}, {50, 9}, {99, 9}, {100, 13}, {150, 17},
	}
	for _, step := range steps {
		for s.Score() < step.score {
			s.ScoreTick()
		}
		assert.Equal(t, step.speed, s.Speed(), "at score %d", step.score)
	}
}

func TestCollisionEndsGameOnce(t *testing.T) {
	s, rec, _ := newTestSession(t, func(c *config.Config) { c.InitialEnemies = 0 })
	require.NoError(t, s.Start())
	for i := 0; i < 7; i++ {
		s.ScoreTick()
	}

	blocker := injectBlocker(s)
	ticks := 0
	for s.Active() && ticks < 200 {
		s.Tick()
		ticks++
	}

	require.Equal(t, GameOver, s.State())
	// buffered boxes first overlap once the enemy's rear passes y=240
	assert.Equal(t, 39, ticks)
	assert.Equal(t, 245.0, blocker.Y)
	assert.Equal(t, []uint64{7}, rec.gameOvers)
	assert.Equal(t, 99, s.Snapshot().CrashID)

	for i := 0; i < 50; i++ {
		s.Tick()
		s.ScoreTick()
		s.MoveLeft()
	}
	assert.Len(t, rec.gameOvers, 1)
	assert.Equal(t, uint64(7), s.Score())
	assert.Equal(t, 245.0, blocker.Y, "physics is frozen after the crash")
	assert.Equal(t, 150.0, s.Snapshot().Player.X)
}

func TestScheduledScoreFreezesAtGameOver(t *testing.T) {
	s, rec, clock := newTestSession(t, nil)
	require.NoError(t, s.Start())
	injectBlocker(s)

	for i := 0; i < 1000 && s.Active(); i++ {
		s.Advance(clock.Advance(10 * time.Millisecond))
	}
	require.Equal(t, GameOver, s.State())
	require.Len(t, rec.gameOvers, 1)

	for i := 1; i < len(rec.scores); i++ {
		assert.GreaterOrEqual(t, rec.scores[i], rec.scores[i-1])
	}
	final := s.Score()
	assert.Equal(t, final, rec.gameOvers[0])
	notified := len(rec.scores)

	assert.Zero(t, s.Advance(clock.Advance(5*time.Second)), "no task may run after the crash")
	assert.Equal(t, final, s.Score())
	assert.Len(t, rec.scores, notified)
	assert.False(t, s.scheduler.Running(TaskFrame))
	assert.False(t, s.scheduler.Running(TaskScore))
}

func TestOneSecondOfScheduledPlay(t *testing.T) {
	s, rec, clock := newTestSession(t, nil)
	require.NoError(t, s.Start())

	for i := 0; i < 100; i++ {
		s.Update()
		clock.Advance(10 * time.Millisecond)
	}
	s.Update()

	snap := s.Snapshot()
	assert.Equal(t, Running, snap.State)
	assert.Equal(t, uint64(10), snap.Score)
	assert.Equal(t, uint64(60), snap.Ticks)
	assert.Len(t, rec.scores, 11)
}

func TestRestartResetsEverything(t *testing.T) {
	s, rec, clock := newTestSession(t, func(c *config.Config) { c.Difficulty = "hard" })
	require.NoError(t, s.Start())

	for i := 0; i < 120; i++ {
		s.ScoreTick()
	}
	s.Spawn()
	s.MoveLeft()
	assert.Equal(t, 15.0, s.Speed())

	injectBlocker(s)
	for i := 0; i < 200 && s.Active(); i++ {
		s.Tick()
	}
	require.Equal(t, GameOver, s.State())

	// the tier is read once at creation, later edits to the settings do not leak in
	s.cfg.Difficulty = "easy"
	clock.Advance(time.Minute)
	require.NoError(t, s.Restart())

	assert.Equal(t, Running, s.State())
	assert.Equal(t, 1, rec.restarts)
	assert.Equal(t, uint64(0), rec.scores[len(rec.scores)-1])
	assert.Zero(t, s.Score())
	assert.Equal(t, 7.0, s.Speed())

	snap := s.Snapshot()
	assert.Zero(t, snap.CrashID)
	assert.Equal(t, 150.0, snap.Player.X)
	assert.Len(t, snap.Enemies, s.cfg.InitialEnemies)
	for _, e := range snap.Enemies {
		assert.LessOrEqual(t, e.Y+e.Height, 0.0, "vehicle %d is visible after restart", e.ID)
	}
	assertLaneGaps(t, s)

	next, ok := s.scheduler.Next(TaskScore)
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(s.cfg.ScoreInterval), next, "score timer is recreated, not resumed")
}

func TestLongRunKeepsLaneGaps(t *testing.T) {
	s, rec, _ := newTestSession(t, nil)
	require.NoError(t, s.Start())

	for tick := 1; tick <= 5000; tick++ {
		s.Tick()
		if tick%6 == 0 {
			s.ScoreTick()
		}
		if tick%240 == 0 {
			s.Spawn()
		}
		assertLaneGaps(t, s)
	}

	// the centre of the road is clear of both lanes' buffered boxes
	assert.Equal(t, Running, s.State())
	assert.Empty(t, rec.gameOvers)
	assert.Len(t, s.Snapshot().Enemies, s.cfg.MaxEnemies)
	assert.Greater(t, s.Speed(), 60.0)
}

func TestMalformedPositionTreatedAsZero(t *testing.T) {
	s, _, _ := newTestSession(t, func(c *config.Config) { c.InitialEnemies = 0 })
	require.NoError(t, s.Start())

	e := vehicle.NewEnemy(7, 0, math.NaN(), math.Inf(-1), 100, 350)
	s.enemies = append(s.enemies, e)
	s.Tick()

	assert.Zero(t, e.X)
	assert.Equal(t, 5.0, e.Y)
	assert.Equal(t, Running, s.State())
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	require.NoError(t, s.Start())

	snap := s.Snapshot()
	require.NotEmpty(t, snap.Enemies)
	snap.Enemies[0].Y = 12345
	snap.Player.X = 999
	snap.RoadLines[0] = -1

	again := s.Snapshot()
	assert.NotEqual(t, 12345.0, again.Enemies[0].Y)
	assert.Equal(t, 150.0, again.Player.X)
	assert.Zero(t, again.RoadLines[0])
	assert.Equal(t, []float64{0, 300}, again.Lanes)
}

func TestNilHooksAreSkipped(t *testing.T) {
	s, err := New(config.Default(), Hooks{}, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	require.NoError(t, s.Start())
	s.ScoreTick()
	injectBlocker(s)
	for i := 0; i < 200 && s.Active(); i++ {
		s.Tick()
	}
	assert.Equal(t, GameOver, s.State())
	require.NoError(t, s.Restart())
}
