package background

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Verge is a strip of roadside forest that scrolls with the traffic. The
// texture tiles vertically so it can wrap forever.
type Verge struct {
	Width  int
	Height int

	texture *ebiten.Image
	offset  float64
}

// NewVerge generates a verge texture from seed
func NewVerge(width, height int, seed int64) *Verge {
	v := &Verge{Width: width, Height: height}
	v.texture = v.generate(seed)
	return v
}

// Advance scrolls the verge down by dy road units
func (v *Verge) Advance(dy float64) {
	if v.Height <= 0 || math.IsNaN(dy) || math.IsInf(dy, 0) {
		return
	}
	v.offset = math.Mod(v.offset+dy, float64(v.Height))
	if v.offset < 0 {
		v.offset += float64(v.Height)
	}
}

// Reset puts the verge back at its starting scroll position
func (v *Verge) Reset() {
	v.offset = 0
}

// Draw tiles the verge onto dst at x, covering height pixels from y
func (v *Verge) Draw(dst *ebiten.Image, x, y float64, height int) {
	if v.texture == nil {
		return
	}
	for ty := v.offset - float64(v.Height); ty < float64(height); ty += float64(v.Height) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y+ty)
		dst.DrawImage(v.texture, op)
	}
}

func (v *Verge) generate(seed int64) *ebiten.Image {
	img := ebiten.NewImage(v.Width, v.Height)
	rng := rand.New(rand.NewSource(seed))

	img.Fill(color.RGBA{30, 100, 30, 255})

	for i := 0; i < v.Width*v.Height/10; i++ {
		shade := uint8(80 + rng.Intn(60))
		img.Set(rng.Intn(v.Width), rng.Intn(v.Height), color.RGBA{30, shade, 30, 255})
	}

	for y := 0; y < v.Height; y += 12 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)
		for x := 0; x < v.Width; x += 8 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}
			drawX := x + rng.Intn(10) - 5
			drawY := y + rng.Intn(10) - 5
			if rng.Float64() < 0.3 {
				v.drawTree(img, drawX, drawY, rng)
			} else {
				v.drawBush(img, drawX, drawY, rng)
			}
		}
	}
	return img
}

// set writes a pixel, wrapping rows so the texture tiles without seams
func (v *Verge) set(img *ebiten.Image, x, y int, c color.Color) {
	if x < 0 || x >= v.Width {
		return
	}
	y %= v.Height
	if y < 0 {
		y += v.Height
	}
	img.Set(x, y, c)
}

func (v *Verge) drawTree(img *ebiten.Image, x, y int, rng *rand.Rand) {
	height := 30 + rng.Intn(25)
	width := 16 + rng.Intn(12)

	trunk := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + rng.Intn(3)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			v.set(img, x+tx, y-ty, trunk)
		}
	}

	leaves := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	for l := 0; l < 3; l++ {
		layerY := y - height/3 - l*height/4
		layerW := max(width-l*5, 5)
		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				v.set(img, x+lx, layerY-ly, leaves)
			}
		}
	}
}

func (v *Verge) drawBush(img *ebiten.Image, x, y int, rng *rand.Rand) {
	radius := 4 + rng.Intn(8)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				v.set(img, x+dx, y+dy, c)
			}
		}
	}
}
