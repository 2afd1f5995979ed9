package game

import (
	"fmt"
	"log"

	"github.com/golangdaddy/lanerush/pkg/config"
	"github.com/golangdaddy/lanerush/pkg/difficulty"
	"github.com/golangdaddy/lanerush/pkg/session"
	"github.com/golangdaddy/lanerush/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Logical screen size. The road is scaled to the full height and centred,
// with forest verges either side.
const (
	ScreenWidth  = 600
	ScreenHeight = 900
)

// Screen represents a UI screen
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and moves between screens
type Game struct {
	cfg        *config.Config
	configPath string
	log        *log.Logger

	session       *session.Session
	gameplay      *GameplayScreen
	currentScreen Screen
	quit          bool
}

// NewGame creates the game on the title screen. The chosen difficulty is
// written back to configPath.
func NewGame(cfg *config.Config, configPath string, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		cfg:        cfg,
		configPath: configPath,
		log:        logger,
	}
	if err := g.newSession(); err != nil {
		return nil, err
	}
	g.showTitle()
	return g, nil
}

// newSession replaces the session, picking up the configured tier
func (g *Game) newSession() error {
	s, err := session.New(g.cfg, session.Hooks{
		OnScoreChanged: func(score uint64) {
			g.gameplay.setScore(score)
		},
		OnGameOver: g.onGameOver,
		OnRestart: func() {
			g.gameplay.reset()
		},
	}, session.WithLogger(g.log))
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	g.session = s
	g.gameplay = NewGameplayScreen(s)
	return nil
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.session.Tier(), g.start, g.showDifficulty)
}

func (g *Game) showDifficulty() {
	g.currentScreen = ui.NewDifficultyScreen(g.cfg.Tiers, g.session.Tier(), g.selectTier, g.showTitle)
}

func (g *Game) selectTier(tier difficulty.Tier) {
	g.cfg.Difficulty = tier.String()
	if err := g.cfg.SaveToFile(g.configPath); err != nil {
		g.log.Printf("Failed to save settings: %v", err)
	}
	if err := g.newSession(); err != nil {
		g.log.Printf("Keeping previous difficulty: %v", err)
	}
	g.showTitle()
}

func (g *Game) start() {
	if err := g.session.Start(); err != nil {
		g.log.Printf("Failed to start: %v", err)
		return
	}
	g.currentScreen = g.gameplay
}

func (g *Game) onGameOver(finalScore uint64) {
	g.currentScreen = ui.NewGameOverScreen(finalScore, g.gameplay.Draw, g.tryAgain, g.exit)
}

func (g *Game) tryAgain() {
	if err := g.session.Restart(); err != nil {
		g.log.Printf("Failed to restart: %v", err)
		return
	}
	g.currentScreen = g.gameplay
}

func (g *Game) exit() {
	g.quit = true
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}
