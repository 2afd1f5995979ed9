package game

import (
	"image/color"

	"github.com/golangdaddy/lanerush/pkg/background"
	"github.com/golangdaddy/lanerush/pkg/render"
	"github.com/golangdaddy/lanerush/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Held steering keys repeat after repeatDelay frames, every repeatInterval frames
const (
	repeatDelay    = 15
	repeatInterval = 4
)

// GameplayScreen runs a session and draws it
type GameplayScreen struct {
	session *session.Session
	garage  *render.Garage

	leftVerge  *background.Verge
	rightVerge *background.Verge

	scale     float64
	originX   float64
	score     uint64
	lastTicks uint64
}

// NewGameplayScreen creates the screen for s
func NewGameplayScreen(s *session.Session) *GameplayScreen {
	cfg := s.Config()
	scale := ScreenHeight / cfg.RoadHeight
	originX := (ScreenWidth - cfg.RoadWidth*scale) / 2

	gs := &GameplayScreen{
		session: s,
		garage:  render.NewGarage(),
		scale:   scale,
		originX: originX,
	}
	if vergeWidth := int(originX); vergeWidth > 0 {
		gs.leftVerge = background.NewVerge(vergeWidth, ScreenHeight, 1)
		gs.rightVerge = background.NewVerge(vergeWidth, ScreenHeight, 2)
	}
	return gs
}

// steering reports whether any of keys was pressed this frame, or has been
// held long enough to repeat
func steering(keys ...ebiten.Key) bool {
	for _, k := range keys {
		d := inpututil.KeyPressDuration(k)
		if d == 1 || (d > repeatDelay && (d-repeatDelay)%repeatInterval == 0) {
			return true
		}
	}
	return false
}

// Update forwards input and runs every due session task
func (gs *GameplayScreen) Update() error {
	if steering(ebiten.KeyArrowLeft, ebiten.KeyA) {
		gs.session.MoveLeft()
	}
	if steering(ebiten.KeyArrowRight, ebiten.KeyD) {
		gs.session.MoveRight()
	}
	gs.session.Update()

	snap := gs.session.Snapshot()
	if snap.Ticks > gs.lastTicks {
		dy := float64(snap.Ticks-gs.lastTicks) * snap.Speed * gs.scale
		if gs.leftVerge != nil {
			gs.leftVerge.Advance(dy)
			gs.rightVerge.Advance(dy)
		}
	}
	gs.lastTicks = snap.Ticks
	return nil
}

// Draw renders the road, the traffic and the HUD
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	snap := gs.session.Snapshot()
	screen.Fill(color.RGBA{30, 100, 30, 255})

	if gs.leftVerge != nil {
		roadRight := gs.originX + snap.RoadWidth*gs.scale
		gs.leftVerge.Draw(screen, 0, 0, ScreenHeight)
		gs.rightVerge.Draw(screen, roadRight, 0, ScreenHeight)
	}
	render.DrawRoad(screen, snap, gs.originX, 0, gs.scale)
	render.DrawTraffic(screen, gs.garage, snap, gs.originX, 0, gs.scale)

	drawHUD(screen, gs.score, snap.Speed, gs.session.Tier())
}

func (gs *GameplayScreen) setScore(score uint64) {
	gs.score = score
}

func (gs *GameplayScreen) reset() {
	gs.lastTicks = 0
	if gs.leftVerge != nil {
		gs.leftVerge.Reset()
		gs.rightVerge.Reset()
	}
}
