package difficulty

import "strings"

// Tier is one of the selectable difficulty levels
type Tier int

const (
	Default Tier = iota
	Easy
	Medium
	Hard
)

// Tiers lists every tier in menu order
var Tiers = []Tier{Easy, Medium, Hard, Default}

func (t Tier) String() string {
	switch t {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "default"
	}
}

// ParseTier maps a stored setting to a tier. Anything unrecognised is Default.
func ParseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "medium":
		return Medium
	case "hard":
		return Hard
	default:
		return Default
	}
}

// Profile holds the speed parameters a tier starts a session with.
// Speeds are in road units per frame.
type Profile struct {
	InitialSpeed   float64 `ini:"initial_speed"`
	SpeedIncrement float64 `ini:"speed_increment"`
}

// Table maps tiers to their profiles
type Table map[Tier]Profile

// DefaultTable returns the stock tier profiles
func DefaultTable() Table {
	return Table{
		Easy:    {InitialSpeed: 5, SpeedIncrement: 4},
		Medium:  {InitialSpeed: 6, SpeedIncrement: 4},
		Hard:    {InitialSpeed: 7, SpeedIncrement: 4},
		Default: {InitialSpeed: 5, SpeedIncrement: 4},
	}
}

// Lookup returns the profile for t, falling back to the Default entry
func (tbl Table) Lookup(t Tier) Profile {
	if p, ok := tbl[t]; ok {
		return p
	}
	return tbl[Default]
}
