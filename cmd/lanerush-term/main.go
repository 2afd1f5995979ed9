package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/lanerush/pkg/config"
	"github.com/golangdaddy/lanerush/pkg/session"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "settings file")
	tier := flag.String("difficulty", "", "difficulty tier, overrides the settings file")
	logPath := flag.String("log", "", "write session log to this file")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *tier != "" {
		cfg.Difficulty = *tier
	}

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "lanerush ", log.LstdFlags)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.HideCursor()

	t := &terminal{screen: screen}
	s, err := session.New(cfg, session.Hooks{
		OnScoreChanged: func(score uint64) { t.score = score },
		OnGameOver:     func(final uint64) { t.final = final },
		OnRestart:      func() { t.final = 0 },
	}, session.WithLogger(logger))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	t.session = s
	t.run(cfg.FrameInterval)
}
