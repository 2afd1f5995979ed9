package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/golangdaddy/lanerush/pkg/difficulty"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MPHPerUnitPerFrame converts traffic speed (road units per frame) to the
// MPH shown on the HUD
const MPHPerUnitPerFrame = 12.5

// gaugeMaxMPH is the speed at which the gauge bar is full
const gaugeMaxMPH = 400.0

var hudFace = text.NewGoXFace(bitmapfont.Face)

// drawHUD draws the score panel in the top-left corner
func drawHUD(screen *ebiten.Image, score uint64, speed float64, tier difficulty.Tier) {
	x, y := 10.0, 10.0
	width, height := 170.0, 150.0

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, color.RGBA{100, 100, 120, 255}, false)

	drawHUDText(screen, fmt.Sprintf("%d", score), x+width/2, y+20, 3.0, color.RGBA{255, 255, 255, 255})
	drawHUDText(screen, "SCORE", x+width/2, y+65, 1.2, color.RGBA{200, 200, 200, 255})

	mph := speed * MPHPerUnitPerFrame
	drawHUDText(screen, fmt.Sprintf("%.0f MPH", mph), x+width/2, y+88, 1.2, speedColor(mph))
	drawGauge(screen, x+10, y+110, width-20, 12, mph)

	drawHUDText(screen, strings.ToUpper(tier.String()), x+width/2, y+height+8, 1.0, color.RGBA{255, 200, 50, 255})
}

// drawHUDText draws str centred on centerX with its top at topY
func drawHUDText(screen *ebiten.Image, str string, centerX, topY, scale float64, clr color.Color) {
	w := text.Advance(str, hudFace) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-w/2, topY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, hudFace, op)
}

func speedColor(mph float64) color.RGBA {
	switch {
	case mph < gaugeMaxMPH/4:
		return color.RGBA{100, 255, 100, 255}
	case mph < gaugeMaxMPH/2:
		return color.RGBA{255, 255, 100, 255}
	default:
		return color.RGBA{255, 100, 100, 255}
	}
}

// drawGauge draws a horizontal bar filled green to yellow to red with speed
func drawGauge(screen *ebiten.Image, x, y, width, height, mph float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)

	pct := math.Max(0, math.Min(mph/gaugeMaxMPH, 1.0))
	if filled := width * pct; filled > 0 {
		var bar color.RGBA
		if pct < 0.5 {
			ratio := pct / 0.5
			bar = color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
		} else {
			ratio := (pct - 0.5) / 0.5
			bar = color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), bar, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
}
