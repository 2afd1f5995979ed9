package difficulty

// Progression tracks the score counter and the speed ramp of one play-through
type Progression struct {
	Score          uint64
	Speed          float64
	SpeedIncrement float64
	LastMilestone  uint64

	// Milestone is the score interval at which speed is bumped
	Milestone uint64

	profile Profile
}

// NewProgression creates a progression already reset to profile
func NewProgression(profile Profile, milestone uint64) *Progression {
	p := &Progression{Milestone: milestone}
	p.Reset(profile)
	return p
}

// Reset restores score and speed to the start of a play-through
func (p *Progression) Reset(profile Profile) {
	p.profile = profile
	p.Score = 0
	p.Speed = profile.InitialSpeed
	p.SpeedIncrement = profile.SpeedIncrement
	p.LastMilestone = 0
}

// Profile returns the profile the progression was last reset with
func (p *Progression) Profile() Profile {
	return p.profile
}

// Tick adds one point and bumps the speed when a new milestone is reached.
// It reports whether the speed changed.
func (p *Progression) Tick() bool {
	p.Score++
	if p.Milestone == 0 {
		return false
	}
	if p.Score%p.Milestone == 0 && p.Score != p.LastMilestone {
		p.Speed += p.SpeedIncrement
		p.LastMilestone = p.Score
		return true
	}
	return false
}
