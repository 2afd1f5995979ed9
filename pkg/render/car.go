package render

import (
	"image/color"

	"github.com/golangdaddy/lanerush/pkg/traffic"
	"github.com/golangdaddy/lanerush/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scheme is the paint of one car
type Scheme struct {
	Body color.RGBA
	Roof color.RGBA
}

var (
	PlayerScheme = Scheme{Body: color.RGBA{220, 20, 20, 255}, Roof: color.RGBA{180, 15, 15, 255}}

	// EnemySchemes has one entry per traffic variant
	EnemySchemes = [traffic.Variants]Scheme{
		{Body: color.RGBA{40, 90, 200, 255}, Roof: color.RGBA{30, 70, 160, 255}},
		{Body: color.RGBA{230, 190, 40, 255}, Roof: color.RGBA{190, 150, 30, 255}},
		{Body: color.RGBA{40, 160, 80, 255}, Roof: color.RGBA{30, 120, 60, 255}},
	}

	outlineColor    = color.RGBA{20, 20, 20, 255}
	windshieldColor = color.RGBA{150, 200, 255, 220}
	wheelColor      = color.RGBA{30, 30, 30, 255}
	headlightColor  = color.RGBA{255, 255, 100, 255}
	taillightColor  = color.RGBA{255, 0, 0, 255}
	crashTint       = color.RGBA{255, 80, 40, 120}
)

// SchemeFor returns the paint of v
func SchemeFor(v vehicle.Vehicle) Scheme {
	if v.Kind == vehicle.Player {
		return PlayerScheme
	}
	i := v.Variant
	if i < 0 || i >= len(EnemySchemes) {
		i = 0
	}
	return EnemySchemes[i]
}

type spriteKey struct {
	scheme        Scheme
	width, height int
	facingDown    bool
}

// Garage caches one top-down car sprite per scheme and size
type Garage struct {
	sprites map[spriteKey]*ebiten.Image
}

// NewGarage creates an empty sprite cache
func NewGarage() *Garage {
	return &Garage{sprites: make(map[spriteKey]*ebiten.Image)}
}

// Sprite returns the car image for a scheme, building it on first use.
// Traffic faces down the road toward the player.
func (g *Garage) Sprite(s Scheme, width, height int, facingDown bool) *ebiten.Image {
	key := spriteKey{s, width, height, facingDown}
	if img, ok := g.sprites[key]; ok {
		return img
	}
	img := buildCar(s, float32(width), float32(height), facingDown)
	g.sprites[key] = img
	return img
}

// DrawVehicle draws v with its top-left corner at origin + (v.X, v.Y)*scale
func (g *Garage) DrawVehicle(dst *ebiten.Image, v vehicle.Vehicle, originX, originY, scale float64, crashed bool) {
	w, h := int(v.Width*scale), int(v.Height*scale)
	if w <= 0 || h <= 0 {
		return
	}
	img := g.Sprite(SchemeFor(v), w, h, v.Kind == vehicle.Enemy)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(originX+v.X*scale, originY+v.Y*scale)
	dst.DrawImage(img, op)

	if crashed {
		x := float32(originX + v.X*scale)
		y := float32(originY + v.Y*scale)
		vector.DrawFilledRect(dst, x, y, float32(w), float32(h), crashTint, false)
	}
}

// buildCar paints a top-down car facing up, or down when facingDown is set
func buildCar(s Scheme, w, h float32, facingDown bool) *ebiten.Image {
	img := ebiten.NewImage(int(w), int(h))

	// wheels sit slightly outside the body
	wheelW, wheelH := w*0.15, h*0.14
	for _, wy := range []float32{h * 0.12, h * 0.72} {
		vector.DrawFilledRect(img, 0, wy, wheelW, wheelH, wheelColor, false)
		vector.DrawFilledRect(img, w-wheelW, wy, wheelW, wheelH, wheelColor, false)
	}

	bodyX, bodyW := w*0.1, w*0.8
	vector.DrawFilledRect(img, bodyX, h*0.02, bodyW, h*0.96, s.Body, false)
	vector.StrokeRect(img, bodyX, h*0.02, bodyW, h*0.96, 2, outlineColor, false)
	vector.DrawFilledRect(img, w*0.2, h*0.3, w*0.6, h*0.4, s.Roof, false)

	front, rear := h*0.02, h*0.98
	screenY := h * 0.2
	if facingDown {
		front, rear = rear, front
		screenY = h*0.8 - h*0.12
	}
	vector.DrawFilledRect(img, w*0.22, screenY, w*0.56, h*0.12, windshieldColor, false)

	lampW, lampH := w*0.16, h*0.03
	for _, lx := range []float32{w * 0.18, w*0.82 - lampW} {
		vector.DrawFilledRect(img, lx, front-lampH/2, lampW, lampH, headlightColor, false)
		vector.DrawFilledRect(img, lx, rear-lampH/2, lampW, lampH, taillightColor, false)
	}
	return img
}
