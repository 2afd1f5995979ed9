package collision

import (
	"testing"

	"github.com/golangdaddy/lanerush/pkg/vehicle"
	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 100, H: 100}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 50, Y: 50, W: 100, H: 100}, true},
		{"contained", Rect{X: 10, Y: 10, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 100, Y: 0, W: 50, H: 50}, false},
		{"touching bottom edge", Rect{X: 0, Y: 100, W: 50, H: 50}, false},
		{"left", Rect{X: -60, Y: 0, W: 50, H: 50}, false},
		{"above", Rect{X: 0, Y: -60, W: 50, H: 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base))
		})
	}
}

func TestInset(t *testing.T) {
	r := Rect{X: 150, Y: 530, W: 100, H: 350}.Inset(30)
	assert.Equal(t, Rect{X: 180, Y: 560, W: 40, H: 290}, r)

	collapsed := Rect{X: 0, Y: 0, W: 40, H: 350}.Inset(30)
	assert.Equal(t, 20.0, collapsed.X)
	assert.Zero(t, collapsed.W)
}

func TestDetectorBuffer(t *testing.T) {
	d := Detector{Buffer: 30}
	player := vehicle.NewPlayer(150, 530, 100, 350)

	// Raw boxes overlap by 50 units vertically, the buffered ones do not.
	grazing := vehicle.NewEnemy(1, 0, 150, 230, 100, 350)
	assert.True(t, RectOf(player).Intersects(RectOf(grazing)))
	assert.False(t, d.Hit(player, grazing))

	deep := vehicle.NewEnemy(2, 0, 150, 300, 100, 350)
	assert.True(t, d.Hit(player, deep))

	// Side by side with a sliver of horizontal overlap.
	beside := vehicle.NewEnemy(3, 1, 230, 530, 100, 350)
	assert.False(t, d.Hit(player, beside))
}

func TestFirst(t *testing.T) {
	d := Detector{Buffer: 30}
	player := vehicle.NewPlayer(150, 530, 100, 350)
	far := vehicle.NewEnemy(1, 0, 0, -400, 100, 350)
	hit := vehicle.NewEnemy(2, 0, 150, 400, 100, 350)

	assert.Nil(t, d.First(player, []*vehicle.Vehicle{far}))
	assert.Equal(t, hit, d.First(player, []*vehicle.Vehicle{far, hit}))
}
