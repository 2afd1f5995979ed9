package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/golangdaddy/lanerush/pkg/difficulty"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DifficultyScreen lets the player pick a tier from the table
type DifficultyScreen struct {
	menu     menu
	tiers    []difficulty.Tier
	table    difficulty.Table
	onSelect func(difficulty.Tier)
	onCancel func()
}

// NewDifficultyScreen creates the selection list with current highlighted
func NewDifficultyScreen(table difficulty.Table, current difficulty.Tier, onSelect func(difficulty.Tier), onCancel func()) *DifficultyScreen {
	ds := &DifficultyScreen{
		tiers:    difficulty.Tiers,
		table:    table,
		onSelect: onSelect,
		onCancel: onCancel,
	}
	ds.menu.size = len(ds.tiers)
	for i, t := range ds.tiers {
		if t == current {
			ds.menu.selected = i
		}
	}
	return ds
}

// Update handles input for the selection list
func (ds *DifficultyScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ds.onCancel != nil {
			ds.onCancel()
		}
		return nil
	}
	if ds.menu.update() && ds.onSelect != nil {
		ds.onSelect(ds.tiers[ds.menu.selected])
	}
	return nil
}

// Draw renders the selection list
func (ds *DifficultyScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	centerX := float64(width) / 2
	drawText(screen, "DIFFICULTY", centerX, 120, 56, titleColor)

	buttonWidth, buttonHeight := 460.0, 60.0
	for i, t := range ds.tiers {
		y := 240 + float64(i)*90
		drawButton(screen, formatTier(t, ds.table.Lookup(t)), centerX-buttonWidth/2, y, buttonWidth, buttonHeight, i == ds.menu.selected)
	}

	drawText(screen, "Arrow Keys: Navigate | Enter: Select | Esc: Back", centerX, float64(height)-60, 16, hintColor)
}

func formatTier(t difficulty.Tier, p difficulty.Profile) string {
	return fmt.Sprintf("%-8s speed %.0f, +%.0f every milestone", strings.ToUpper(t.String()), p.InitialSpeed, p.SpeedIncrement)
}
