package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/lanerush/pkg/session"
	"github.com/golangdaddy/lanerush/pkg/vehicle"
)

var enemyColors = []tcell.Color{tcell.ColorBlue, tcell.ColorYellow, tcell.ColorGreen}

// terminal draws a session with one cell per block of road units. Cells are
// roughly twice as tall as they are wide, so a column covers half the road
// units a row does.
type terminal struct {
	screen  tcell.Screen
	session *session.Session

	score uint64
	final uint64

	// layout
	unitsPerRow float64
	unitsPerCol float64
	left, top   int
	cols, rows  int
}

// run owns the session: tcell events arrive over a channel and are handled
// on this goroutine between frames.
func (t *terminal) run(frame time.Duration) {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	t.resize()
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				t.resize()
				t.screen.Sync()
			case *tcell.EventKey:
				if t.handleKey(e) {
					return
				}
			}
		case <-ticker.C:
			t.session.Update()
			t.draw()
		}
	}
}

// handleKey applies a key press and reports whether the player quit
func (t *terminal) handleKey(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		t.session.MoveLeft()
	case tcell.KeyRight:
		t.session.MoveRight()
	case tcell.KeyEnter:
		if t.session.State() == session.Idle {
			_ = t.session.Start()
		}
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q':
			return true
		case 'a':
			t.session.MoveLeft()
		case 'd':
			t.session.MoveRight()
		case ' ':
			if t.session.State() == session.Idle {
				_ = t.session.Start()
			}
		case 'r':
			if t.session.State() == session.GameOver {
				_ = t.session.Restart()
			}
		}
	}
	return false
}

func (t *terminal) resize() {
	w, h := t.screen.Size()
	cfg := t.session.Config()

	// one HUD row above the road and one hint row below
	t.rows = max(h-2, 1)
	t.unitsPerRow = cfg.RoadHeight / float64(t.rows)
	t.unitsPerCol = t.unitsPerRow / 2
	t.cols = int(cfg.RoadWidth / t.unitsPerCol)
	if t.cols > w {
		t.cols = w
		t.unitsPerCol = cfg.RoadWidth / float64(t.cols)
	}
	t.left = max((w-t.cols)/2, 0)
	t.top = 1
}

func (t *terminal) draw() {
	s := t.screen
	s.Clear()
	snap := t.session.Snapshot()

	road := tcell.StyleDefault.Background(tcell.ColorDimGray)
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			s.SetContent(t.left+x, t.top+y, ' ', nil, road)
		}
	}

	dash := road.Foreground(tcell.ColorWhite)
	centre := t.left + t.cols/2
	for _, offset := range snap.RoadLines {
		for y := t.row(offset); y < t.row(offset+60); y++ {
			if y >= 0 && y < t.rows {
				s.SetContent(centre, t.top+y, '|', nil, dash)
			}
		}
	}

	for _, e := range snap.Enemies {
		c := enemyColors[e.Variant%len(enemyColors)]
		if e.ID == snap.CrashID {
			c = tcell.ColorRed
		}
		t.drawVehicle(e, tcell.StyleDefault.Foreground(c).Background(tcell.ColorDimGray))
	}
	player := tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorDimGray).Bold(true)
	t.drawVehicle(snap.Player, player)

	hud := fmt.Sprintf(" Score %d   Speed %.0f   [%s]", t.score, snap.Speed, strings.ToUpper(t.session.Tier().String()))
	drawText(s, 0, 0, hud, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	var hint string
	switch snap.State {
	case session.Idle:
		hint = "Enter: start   Left/Right: steer   q: quit"
	case session.Running:
		hint = "Left/Right: steer   q: quit"
	case session.GameOver:
		hint = fmt.Sprintf("GAME OVER  final score %d   r: try again   q: quit", t.final)
	}
	_, h := s.Size()
	drawText(s, 0, h-1, hint, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	s.Show()
}

func (t *terminal) drawVehicle(v vehicle.Vehicle, st tcell.Style) {
	x0, x1 := t.col(v.X), t.col(v.X+v.Width)
	y0, y1 := t.row(v.Y), t.row(v.Y+v.Height)
	for y := max(y0, 0); y < min(y1, t.rows); y++ {
		for x := max(x0, 0); x < min(x1, t.cols); x++ {
			ch := '█'
			if y == y0 || y == y1-1 {
				ch = '▀'
			}
			t.screen.SetContent(t.left+x, t.top+y, ch, nil, st)
		}
	}
}

func (t *terminal) row(y float64) int {
	return int(math.Floor(y / t.unitsPerRow))
}

func (t *terminal) col(x float64) int {
	return int(math.Floor(x / t.unitsPerCol))
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}
