package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	optionTryAgain = iota
	optionExit
)

// GameOverScreen is drawn over the frozen road after a crash
type GameOverScreen struct {
	menu       menu
	finalScore uint64
	backdrop   func(*ebiten.Image)
	onTryAgain func()
	onExit     func()
}

// NewGameOverScreen creates the crash menu. backdrop draws the frame the
// menu sits on and may be nil.
func NewGameOverScreen(finalScore uint64, backdrop func(*ebiten.Image), onTryAgain, onExit func()) *GameOverScreen {
	return &GameOverScreen{
		menu:       menu{size: 2},
		finalScore: finalScore,
		backdrop:   backdrop,
		onTryAgain: onTryAgain,
		onExit:     onExit,
	}
}

// Update handles input for the crash menu
func (gs *GameOverScreen) Update() error {
	if !gs.menu.update() {
		return nil
	}
	switch gs.menu.selected {
	case optionTryAgain:
		if gs.onTryAgain != nil {
			gs.onTryAgain()
		}
	case optionExit:
		if gs.onExit != nil {
			gs.onExit()
		}
	}
	return nil
}

// Draw renders the crash menu
func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	if gs.backdrop != nil {
		gs.backdrop(screen)
	} else {
		screen.Fill(color.RGBA{20, 20, 30, 255})
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	panelW, panelH := 440.0, 380.0
	panelX, panelY := width/2-panelW/2, height/2-panelH/2
	drawPanel(screen, panelX, panelY, panelW, panelH)

	centerX := width / 2
	drawText(screen, "GAME OVER", centerX, panelY+60, 48, color.RGBA{255, 90, 70, 255})
	drawText(screen, fmt.Sprintf("Final score: %d", gs.finalScore), centerX, panelY+130, 24, titleColor)

	buttonWidth, buttonHeight := 300.0, 50.0
	buttonX := centerX - buttonWidth/2
	drawButton(screen, "Try Again", buttonX, panelY+190, buttonWidth, buttonHeight, gs.menu.selected == optionTryAgain)
	drawButton(screen, "Exit", buttonX, panelY+270, buttonWidth, buttonHeight, gs.menu.selected == optionExit)
}
