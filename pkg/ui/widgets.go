package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	face = text.NewGoXFace(bitmapfont.Face)

	buttonColor         = color.RGBA{40, 40, 60, 255}
	buttonTextColor     = color.RGBA{255, 255, 255, 255}
	selectedButtonColor = color.RGBA{60, 100, 140, 255}
	selectedTextColor   = color.RGBA{200, 240, 255, 255}
	borderColor         = color.RGBA{80, 80, 100, 255}
	hintColor           = color.RGBA{150, 150, 150, 255}
	titleColor          = color.RGBA{255, 200, 50, 255}
)

// menu tracks the highlighted entry of a vertical list
type menu struct {
	selected int
	size     int
}

// update moves the highlight on Up/Down, wrapping at both ends, and reports
// whether the entry was confirmed with Enter or Space
func (m *menu) update() bool {
	if m.size == 0 {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		m.selected = (m.selected - 1 + m.size) % m.size
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.selected = (m.selected + 1) % m.size
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// drawButton draws a bordered button with its label centred
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, selected bool) {
	bg, fg := buttonColor, buttonTextColor
	if selected {
		bg, fg = selectedButtonColor, selectedTextColor
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, borderColor, false)

	// bitmap font is 16px tall, baseline offset 8 centres it
	textWidth := text.Advance(label, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+width/2-textWidth/2, y+height/2-8)
	op.ColorScale.ScaleWithColor(fg)
	text.Draw(screen, label, face, op)
}

// drawText draws str centred on (centerX, centerY) at the given pixel size
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / 16.0
	textWidth := text.Advance(str, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-textWidth/2, centerY-8*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawPanel dims the whole screen and draws a framed box on top
func drawPanel(screen *ebiten.Image, x, y, width, height float64) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 140}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{20, 20, 30, 235}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, borderColor, false)
}
