package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEveryRunsOnInterval(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(10)

	count := 0
	s.Every("score", 100*time.Millisecond, func() { count++ })
	assert.Zero(t, s.Advance(clock.Advance(time.Second)), "unarmed task must not run")

	s.Start("score", clock.Now())
	assert.Zero(t, s.Advance(clock.Advance(99*time.Millisecond)))
	assert.Equal(t, 1, s.Advance(clock.Advance(time.Millisecond)))
	assert.Equal(t, 3, s.Advance(clock.Advance(300*time.Millisecond)))
	assert.Equal(t, 4, count)
}

func TestEarliestDeadlineFirst(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(10)

	var order []string
	s.Every("score", 100*time.Millisecond, func() { order = append(order, "score") })
	s.Every("frame", 40*time.Millisecond, func() { order = append(order, "frame") })
	s.Start("score", clock.Now())
	s.Start("frame", clock.Now())

	s.Advance(clock.Advance(200 * time.Millisecond))
	// frame: 40 80 120 160 200, score: 100 200; ties go to the task registered first
	assert.Equal(t, []string{"frame", "frame", "score", "frame", "frame", "score", "frame"}, order)
}

func TestStopFromInsideTask(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(10)

	count := 0
	s.Every("frame", 10*time.Millisecond, func() {
		count++
		if count == 3 {
			s.StopAll()
		}
	})
	s.Start("frame", clock.Now())

	s.Advance(clock.Advance(time.Second))
	assert.Equal(t, 3, count)
	assert.False(t, s.Running("frame"))

	_, ok := s.Next("frame")
	assert.False(t, ok)
}

func TestRestartCancelsPendingDeadline(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(10)

	count := 0
	s.Every("score", 100*time.Millisecond, func() { count++ })
	s.Start("score", clock.Now())
	clock.Advance(90 * time.Millisecond)

	s.Start("score", clock.Now())
	next, ok := s.Next("score")
	require.True(t, ok)
	assert.Equal(t, epoch.Add(190*time.Millisecond), next)

	s.Advance(clock.Advance(50 * time.Millisecond))
	assert.Zero(t, count)
}

func TestCatchUpIsBounded(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(3)

	count := 0
	s.Every("frame", 10*time.Millisecond, func() { count++ })
	s.Start("frame", clock.Now())

	s.Advance(clock.Advance(time.Second))
	assert.Equal(t, 3, count)

	next, ok := s.Next("frame")
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(10*time.Millisecond), next, "backlog is dropped")
}

func TestRegisterRandomInterval(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(10)

	intervals := []time.Duration{3 * time.Second, 5 * time.Second}
	i := 0
	count := 0
	s.Register("spawn", func() time.Duration {
		d := intervals[i%len(intervals)]
		i++
		return d
	}, func() { count++ })
	s.Start("spawn", clock.Now())

	s.Advance(clock.Advance(3 * time.Second))
	assert.Equal(t, 1, count)
	s.Advance(clock.Advance(4 * time.Second))
	assert.Equal(t, 1, count)
	s.Advance(clock.Advance(time.Second))
	assert.Equal(t, 2, count)
}

func TestUnknownTaskIsIgnored(t *testing.T) {
	s := New(1)
	s.Start("missing", epoch)
	s.Stop("missing")
	assert.False(t, s.Running("missing"))
	assert.Zero(t, s.Advance(epoch.Add(time.Hour)))
}
