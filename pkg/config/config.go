package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/golangdaddy/lanerush/pkg/difficulty"
	"gopkg.in/ini.v1"
)

// DefaultFile is the settings file the shells look for in the working directory
const DefaultFile = "lanerush.ini"

// ErrInvalidConfig is returned by Validate for tunings the simulation cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// Tuning holds every numeric knob of the simulation. Distances are in road
// units (one unit is one pixel in the windowed shell).
type Tuning struct {
	RoadWidth     float64 `ini:"road_width"`
	RoadHeight    float64 `ini:"road_height"`
	VehicleWidth  float64 `ini:"vehicle_width"`
	VehicleHeight float64 `ini:"vehicle_height"`

	PlayerStep         float64 `ini:"player_step"`
	Overlap            float64 `ini:"overlap"`              // how far the player may hang over either road edge
	PlayerBottomMargin float64 `ini:"player_bottom_margin"` // gap between the player's rear and the road bottom

	SafeGap         float64 `ini:"safe_gap"`
	SpawnJitter     float64 `ini:"spawn_jitter"`
	CollisionBuffer float64 `ini:"collision_buffer"`

	InitialEnemies    int `ini:"initial_enemies"`
	MaxEnemies        int `ini:"max_enemies"`
	PlacementAttempts int `ini:"placement_attempts"`

	SpawnMin      time.Duration `ini:"spawn_min"`
	SpawnMax      time.Duration `ini:"spawn_max"`
	FrameInterval time.Duration `ini:"frame_interval"`
	ScoreInterval time.Duration `ini:"score_interval"`
	MaxCatchUp    int           `ini:"max_catch_up"`

	Milestone int `ini:"milestone"`

	RoadLines    int     `ini:"road_lines"`
	RoadLineWrap float64 `ini:"road_line_wrap"`
}

// Config is the full settings file: the difficulty choice, the tuning and the tier table
type Config struct {
	Difficulty string
	Tuning
	Tiers difficulty.Table
}

// Default returns the stock arcade settings
func Default() *Config {
	return &Config{
		Difficulty: difficulty.Default.String(),
		Tuning: Tuning{
			RoadWidth:          400,
			RoadHeight:         900,
			VehicleWidth:       100,
			VehicleHeight:      350,
			PlayerStep:         25,
			Overlap:            10,
			PlayerBottomMargin: 20,
			SafeGap:            450,
			SpawnJitter:        100,
			CollisionBuffer:    30,
			InitialEnemies:     3,
			MaxEnemies:         6,
			PlacementAttempts:  5,
			SpawnMin:           3 * time.Second,
			SpawnMax:           5 * time.Second,
			FrameInterval:      time.Second / 60,
			ScoreInterval:      100 * time.Millisecond,
			MaxCatchUp:         5,
			Milestone:          50,
			RoadLines:          6,
			RoadLineWrap:       80,
		},
		Tiers: difficulty.DefaultTable(),
	}
}

// Tier returns the parsed difficulty setting
func (c *Config) Tier() difficulty.Tier {
	return difficulty.ParseTier(c.Difficulty)
}

// Profile returns the speed profile of the configured tier
func (c *Config) Profile() difficulty.Profile {
	return c.Tiers.Lookup(c.Tier())
}

// MinLeft is the leftmost player X
func (t Tuning) MinLeft() float64 {
	return -t.Overlap
}

// MaxLeft is the rightmost player X
func (t Tuning) MaxLeft() float64 {
	return t.RoadWidth - t.VehicleWidth + t.Overlap
}

// StartLeft is the player X at the start of a play-through (road centre)
func (t Tuning) StartLeft() float64 {
	return (t.RoadWidth - t.VehicleWidth) / 2
}

// PlayerTop is the fixed Y of the player vehicle
func (t Tuning) PlayerTop() float64 {
	return t.RoadHeight - t.VehicleHeight - t.PlayerBottomMargin
}

// LaneOffsets returns the X offset of the left and right lanes
func (t Tuning) LaneOffsets() []float64 {
	return []float64{0, t.RoadWidth - t.VehicleWidth}
}

// Validate rejects tunings the simulation cannot honour
func (c *Config) Validate() error {
	t := c.Tuning
	switch {
	case t.VehicleWidth <= 0 || t.VehicleHeight <= 0:
		return fmt.Errorf("%w: vehicle size must be positive", ErrInvalidConfig)
	case t.RoadWidth < 2*t.VehicleWidth:
		return fmt.Errorf("%w: road width %.0f cannot fit two lanes of width %.0f", ErrInvalidConfig, t.RoadWidth, t.VehicleWidth)
	case t.RoadHeight <= t.VehicleHeight:
		return fmt.Errorf("%w: road height %.0f must exceed vehicle height %.0f", ErrInvalidConfig, t.RoadHeight, t.VehicleHeight)
	case t.SafeGap < t.VehicleHeight:
		return fmt.Errorf("%w: safe gap %.0f is smaller than a vehicle", ErrInvalidConfig, t.SafeGap)
	case t.PlayerStep <= 0:
		return fmt.Errorf("%w: player step must be positive", ErrInvalidConfig)
	case t.SpawnJitter < 0 || t.Overlap < 0:
		return fmt.Errorf("%w: jitter and overlap cannot be negative", ErrInvalidConfig)
	case t.CollisionBuffer < 0 || 2*t.CollisionBuffer >= t.VehicleWidth:
		return fmt.Errorf("%w: collision buffer %.0f does not fit the vehicle", ErrInvalidConfig, t.CollisionBuffer)
	case t.InitialEnemies < 0 || t.MaxEnemies < t.InitialEnemies:
		return fmt.Errorf("%w: enemy cap %d below initial count %d", ErrInvalidConfig, t.MaxEnemies, t.InitialEnemies)
	case t.PlacementAttempts < 1:
		return fmt.Errorf("%w: placement needs at least one attempt", ErrInvalidConfig)
	case t.SpawnMin <= 0 || t.SpawnMax < t.SpawnMin:
		return fmt.Errorf("%w: spawn interval %s..%s", ErrInvalidConfig, t.SpawnMin, t.SpawnMax)
	case t.FrameInterval <= 0 || t.ScoreInterval <= 0:
		return fmt.Errorf("%w: timer intervals must be positive", ErrInvalidConfig)
	case t.Milestone <= 0:
		return fmt.Errorf("%w: milestone must be positive", ErrInvalidConfig)
	case t.RoadLines < 0:
		return fmt.Errorf("%w: road line count cannot be negative", ErrInvalidConfig)
	}
	for tier, p := range c.Tiers {
		if p.InitialSpeed <= 0 || p.SpeedIncrement < 0 {
			return fmt.Errorf("%w: tier %s has speed %.1f/+%.1f", ErrInvalidConfig, tier, p.InitialSpeed, p.SpeedIncrement)
		}
	}
	if _, ok := c.Tiers[difficulty.Default]; !ok {
		return fmt.Errorf("%w: missing default tier", ErrInvalidConfig)
	}
	return nil
}

// LoadFromFile reads settings from an INI file. Keys that are absent keep
// their default value, and a missing file yields the defaults. A value that
// does not parse is an error.
func LoadFromFile(filename string) (*Config, error) {
	cfg := Default()

	f, err := ini.LoadSources(ini.LoadOptions{Loose: true, Insensitive: true}, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if key := f.Section("game").Key("difficulty"); key.String() != "" {
		cfg.Difficulty = key.String()
	}
	if err := f.Section("tuning").StrictMapTo(&cfg.Tuning); err != nil {
		return nil, fmt.Errorf("failed to parse [tuning]: %w", err)
	}
	for _, tier := range difficulty.Tiers {
		name := "tier." + tier.String()
		if !f.HasSection(name) {
			continue
		}
		p := cfg.Tiers.Lookup(tier)
		if err := f.Section(name).StrictMapTo(&p); err != nil {
			return nil, fmt.Errorf("failed to parse [%s]: %w", name, err)
		}
		cfg.Tiers[tier] = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToFile writes the settings to an INI file
func (c *Config) SaveToFile(filename string) error {
	f := ini.Empty()

	f.Section("game").Key("difficulty").SetValue(c.Tier().String())

	tuning := f.Section("tuning")
	if err := tuning.ReflectFrom(&c.Tuning); err != nil {
		return fmt.Errorf("failed to encode tuning: %w", err)
	}
	for key, d := range map[string]time.Duration{
		"spawn_min":      c.SpawnMin,
		"spawn_max":      c.SpawnMax,
		"frame_interval": c.FrameInterval,
		"score_interval": c.ScoreInterval,
	} {
		tuning.Key(key).SetValue(d.String())
	}

	for _, tier := range difficulty.Tiers {
		p, ok := c.Tiers[tier]
		if !ok {
			continue
		}
		if err := f.Section("tier." + tier.String()).ReflectFrom(&p); err != nil {
			return fmt.Errorf("failed to encode tier %s: %w", tier, err)
		}
	}

	if err := f.SaveTo(filename); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
