package ui

import (
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/golangdaddy/lanerush/pkg/difficulty"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen is shown before the first play-through
type TitleScreen struct {
	startTime    time.Time
	tier         difficulty.Tier
	onStart      func()
	onDifficulty func()
}

// NewTitleScreen creates a title screen showing the configured tier
func NewTitleScreen(tier difficulty.Tier, onStart, onDifficulty func()) *TitleScreen {
	return &TitleScreen{
		startTime:    time.Now(),
		tier:         tier,
		onStart:      onStart,
		onDifficulty: onDifficulty,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if ts.onStart != nil {
			ts.onStart()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		if ts.onDifficulty != nil {
			ts.onDifficulty()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// pulsing title
	title := "LANE RUSH"
	scale := 5.0 * (1.0 + 0.08*math.Sin(elapsed*2.0))
	brightness := math.Min(1.0+0.2*math.Sin(elapsed*1.5), 1.0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-text.Advance(title, face)*scale/2, centerY-8*scale)
	op.ColorScale.ScaleWithColor(color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	})
	text.Draw(screen, title, face, op)

	drawText(screen, "Dodge the traffic", centerX, centerY+80, 28, color.RGBA{180, 180, 200, 255})
	drawText(screen, "Difficulty: "+strings.ToUpper(ts.tier.String()), centerX, centerY+140, 22, titleColor)

	// blink every half second
	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press ENTER to Start", centerX, float64(height)-160, 26, color.RGBA{150, 200, 255, 255})
	}
	drawText(screen, "D: Difficulty | Left/Right: Steer", centerX, float64(height)-100, 18, hintColor)

	lineColor := color.RGBA{50, 60, 80, 100}
	vector.DrawFilledRect(screen, 0, float32(height)/6, float32(width), 2, lineColor, false)
	vector.DrawFilledRect(screen, 0, float32(height)*5/6, float32(width), 2, lineColor, false)
}
