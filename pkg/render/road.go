package render

import (
	"image/color"

	"github.com/golangdaddy/lanerush/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	dashWidth  = 10
	dashLength = 60
	edgeWidth  = 6
)

var (
	asphaltColor = color.RGBA{64, 64, 64, 255}
	edgeColor    = color.RGBA{230, 230, 230, 255}
	dashColor    = color.RGBA{255, 255, 255, 255}
)

// DrawRoad draws the asphalt, its edges and the centre dashes of snap
func DrawRoad(dst *ebiten.Image, snap session.Snapshot, originX, originY, scale float64) {
	x, y := float32(originX), float32(originY)
	w, h := float32(snap.RoadWidth*scale), float32(snap.RoadHeight*scale)
	s := float32(scale)

	vector.DrawFilledRect(dst, x, y, w, h, asphaltColor, false)
	vector.DrawFilledRect(dst, x, y, edgeWidth*s, h, edgeColor, false)
	vector.DrawFilledRect(dst, x+w-edgeWidth*s, y, edgeWidth*s, h, edgeColor, false)

	cx := x + w/2 - dashWidth*s/2
	for _, offset := range snap.RoadLines {
		top := float32(offset * scale)
		length := float32(dashLength) * s
		// clip to the road
		if top < 0 {
			length += top
			top = 0
		}
		if top+length > h {
			length = h - top
		}
		if length <= 0 {
			continue
		}
		vector.DrawFilledRect(dst, cx, y+top, dashWidth*s, length, dashColor, false)
	}
}

// DrawTraffic draws every vehicle in snap, marking the one the player hit
func DrawTraffic(dst *ebiten.Image, g *Garage, snap session.Snapshot, originX, originY, scale float64) {
	for _, e := range snap.Enemies {
		if e.Y+e.Height < 0 || e.Y > snap.RoadHeight {
			continue
		}
		g.DrawVehicle(dst, e, originX, originY, scale, snap.CrashID != 0 && e.ID == snap.CrashID)
	}
	g.DrawVehicle(dst, snap.Player, originX, originY, scale, snap.State == session.GameOver)
}
