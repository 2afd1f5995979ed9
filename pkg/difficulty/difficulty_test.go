package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	tests := map[string]Tier{
		"easy":    Easy,
		"Medium":  Medium,
		" hard ":  Hard,
		"":        Default,
		"extreme": Default,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseTier(in), "input %q", in)
	}
	for _, tier := range Tiers {
		assert.Equal(t, tier, ParseTier(tier.String()))
	}
}

func TestLookupFallsBackToDefault(t *testing.T) {
	tbl := Table{Default: {InitialSpeed: 3, SpeedIncrement: 1}}
	assert.Equal(t, tbl[Default], tbl.Lookup(Hard))
}

func TestProgressionBumpsOncePerMilestone(t *testing.T) {
	p := NewProgression(Profile{InitialSpeed: 5, SpeedIncrement: 4}, 50)

	bumps := 0
	for i := 0; i < 49; i++ {
		if p.Tick() {
			bumps++
		}
	}
	assert.Zero(t, bumps)
	assert.Equal(t, 5.0, p.Speed)

	assert.True(t, p.Tick())
	assert.Equal(t, uint64(50), p.Score)
	assert.Equal(t, 9.0, p.Speed)
	assert.Equal(t, uint64(50), p.LastMilestone)

	for i := 0; i < 100; i++ {
		if p.Tick() {
			bumps++
		}
	}
	assert.Equal(t, 2, bumps)
	assert.Equal(t, 17.0, p.Speed)
}

func TestProgressionMilestoneNotRepeated(t *testing.T) {
	p := NewProgression(Profile{InitialSpeed: 5, SpeedIncrement: 4}, 50)
	p.Score = 49
	assert.True(t, p.Tick())

	// A score that lands on the same milestone again must not bump twice.
	p.Score = 49
	assert.False(t, p.Tick())
	assert.Equal(t, 9.0, p.Speed)
}

func TestProgressionReset(t *testing.T) {
	p := NewProgression(Profile{InitialSpeed: 5, SpeedIncrement: 4}, 2)
	p.Tick()
	p.Tick()
	assert.Equal(t, 9.0, p.Speed)

	hard := Profile{InitialSpeed: 7, SpeedIncrement: 4}
	p.Reset(hard)
	assert.Zero(t, p.Score)
	assert.Zero(t, p.LastMilestone)
	assert.Equal(t, 7.0, p.Speed)
	assert.Equal(t, hard, p.Profile())
}
