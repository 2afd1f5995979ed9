package traffic

import (
	"math/rand"
	"time"

	"github.com/golangdaddy/lanerush/pkg/road"
	"github.com/golangdaddy/lanerush/pkg/vehicle"
)

// Variants is the number of enemy paint schemes
const Variants = 3

// Spawner adds enemy vehicles to the road
type Spawner struct {
	Road   *road.RoadController
	Placer *Placer
	Rand   *rand.Rand

	Width, Height float64
	Max           int
	MinInterval   time.Duration
	MaxInterval   time.Duration

	nextID int
}

// NextInterval returns a random delay in [MinInterval, MaxInterval]
func (s *Spawner) NextInterval() time.Duration {
	span := s.MaxInterval - s.MinInterval
	if span <= 0 {
		return s.MinInterval
	}
	return s.MinInterval + time.Duration(s.Rand.Int63n(int64(span)+1))
}

// Spawn adds one enemy above the road unless the cap is reached.
// It returns the grown slice and the new vehicle, or nil at the cap.
func (s *Spawner) Spawn(enemies []*vehicle.Vehicle) ([]*vehicle.Vehicle, *vehicle.Vehicle) {
	if len(enemies) >= s.Max {
		return enemies, nil
	}
	v := s.place(PreferEmpty)
	return append(enemies, v), v
}

// Layout clears the road and places count fresh enemies above it, each in
// a random lane. IDs restart from 1.
func (s *Spawner) Layout(count int) []*vehicle.Vehicle {
	s.nextID = 0
	s.Road.Rebuild(nil)

	enemies := make([]*vehicle.Vehicle, 0, s.Max)
	for i := 0; i < count; i++ {
		enemies = append(enemies, s.place(Uniform))
	}
	return enemies
}

func (s *Spawner) place(policy Policy) *vehicle.Vehicle {
	pl := s.Placer.Place(policy, nil)
	s.nextID++

	v := vehicle.NewEnemy(s.nextID, pl.Lane, 0, pl.Y, s.Width, s.Height)
	v.Variant = s.Rand.Intn(Variants)
	s.Road.Add(v, pl.Lane)
	return v
}
