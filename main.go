package main

import (
	"flag"
	"log"

	"github.com/golangdaddy/lanerush/pkg/config"
	"github.com/golangdaddy/lanerush/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "settings file")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	g, err := game.NewGame(cfg, *configPath, log.Default())
	if err != nil {
		log.Fatal(err)
	}

	// the logical screen is tall, so the window shows it at two thirds size
	ebiten.SetWindowSize(game.ScreenWidth*2/3, game.ScreenHeight*2/3)
	ebiten.SetWindowTitle("Lane Rush")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
