package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/golangdaddy/lanerush/pkg/autopilot"
	"github.com/golangdaddy/lanerush/pkg/config"
)

var (
	colorTitle = color.New(color.FgGreen, color.Bold)
	colorLabel = color.New(color.FgHiBlack)
	colorValue = color.New(color.FgCyan)
	colorAlert = color.New(color.FgRed, color.Bold)
	colorOK    = color.New(color.FgGreen)
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "settings file")
	tier := flag.String("difficulty", "", "difficulty tier, overrides the settings file")
	frames := flag.Int("ticks", 60*60, "frames to simulate per run")
	runs := flag.Int("runs", 1, "play-throughs, a run after a crash starts with a restart")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	pilot := flag.String("pilot", "cautious", "autopilot mode: cautious or reckless")
	verbose := flag.Bool("v", false, "print session log")
	flag.Parse()

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		color.Red("Failed to load settings: %v", err)
		os.Exit(1)
	}
	if *tier != "" {
		cfg.Difficulty = *tier
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
	}

	opts := options{frames: *frames, runs: *runs, seed: *seed, pilot: autopilot.ParseMode(*pilot)}
	reports, err := simulate(cfg, opts, logger)
	if err != nil {
		color.Red("Simulation failed: %v", err)
		os.Exit(1)
	}

	colorTitle.Printf("Lane Rush simulation  difficulty=%s pilot=%s seed=%d\n", cfg.Tier(), *pilot, *seed)
	failed := false
	for i, rep := range reports {
		printReport(i+1, rep, cfg)
		if rep.MinGap < cfg.SafeGap {
			failed = true
		}
	}
	if failed {
		os.Exit(2)
	}
}

func printReport(run int, rep runReport, cfg *config.Config) {
	fmt.Println()
	colorTitle.Printf("Run %d\n", run)
	field("frames", fmt.Sprintf("%d (%.1fs)", rep.Frames, (time.Duration(rep.Frames)*cfg.FrameInterval).Seconds()))
	field("score", fmt.Sprintf("%d", rep.Score))
	field("speed", fmt.Sprintf("%.1f", rep.Speed))
	field("enemies", fmt.Sprintf("%d", rep.Enemies))
	field("moves", fmt.Sprintf("left %d  right %d  hold %d",
		rep.Moves[autopilot.Left], rep.Moves[autopilot.Right], rep.Moves[autopilot.Hold]))

	colorLabel.Printf("  %-10s", "min gap")
	switch {
	case math.IsInf(rep.MinGap, 1):
		colorValue.Println("n/a")
	case rep.MinGap < cfg.SafeGap:
		colorAlert.Printf("%.1f (below %.0f)\n", rep.MinGap, cfg.SafeGap)
	default:
		colorOK.Printf("%.1f\n", rep.MinGap)
	}

	colorLabel.Printf("  %-10s", "result")
	if rep.Crashed {
		colorAlert.Printf("crashed into vehicle %d\n", rep.CrashID)
	} else {
		colorOK.Println("survived")
	}
}

func field(label, value string) {
	colorLabel.Printf("  %-10s", label)
	colorValue.Println(value)
}
