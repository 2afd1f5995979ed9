package vehicle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, 0.0, Sanitize(math.NaN()))
	assert.Equal(t, 0.0, Sanitize(math.Inf(1)))
	assert.Equal(t, 0.0, Sanitize(math.Inf(-1)))
	assert.Equal(t, -350.0, Sanitize(-350))

	v := NewEnemy(1, 0, math.NaN(), math.Inf(1), 100, 350)
	v.Sanitize()
	assert.Zero(t, v.X)
	assert.Zero(t, v.Y)
	assert.Equal(t, 350.0, v.Bottom())
}

func TestPlayerHasNoLane(t *testing.T) {
	p := NewPlayer(150, 530, 100, 350)
	assert.Equal(t, NoLane, p.Lane)
	assert.Equal(t, Player, p.Kind)
}
