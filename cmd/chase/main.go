package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chase/audio"
	"github.com/lixenwraith/chase/config"
	"github.com/lixenwraith/chase/engine"
	"github.com/lixenwraith/chase/event"
	"github.com/lixenwraith/chase/input"
	"github.com/lixenwraith/chase/network"
	"github.com/lixenwraith/chase/render"
	"github.com/lixenwraith/chase/session"
	"github.com/lixenwraith/chase/status"
	"github.com/lixenwraith/chase/terminal"
)

func main() {
	// Panic Recovery: the terminal must be usable after a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCHASE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "usage: chase [-mode solo|host|join] [-addr host:port] [-transport tcp|ws] [-role chaser|target] [-name NAME] [-debug] [-audio=false]")
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "chase: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	reg := status.NewRegistry()
	queue := event.NewEventQueue()
	clock := engine.NewMonotonicTimeProvider()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var game *session.Session
	var svc *network.Service
	switch cfg.Mode {
	case config.ModeSolo:
		game = session.NewSolo(cfg.Session(seed), clock, reg)
	default:
		svc = network.NewService(cfg.Network(), queue, reg)
		if cfg.Mode == config.ModeHost {
			addr, err := svc.Listen()
			if err != nil {
				fmt.Fprintf(os.Stderr, "chase: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "chase: hosting on %s\n", addr)
		}
		game = session.New(cfg.Session(seed), svc, clock, reg)
	}
	log.Printf("main: mode=%s addr=%s transport=%s seed=%d", cfg.Mode, cfg.Address, cfg.Transport, seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	presenters := engine.Presenters{render.NewDefaultOrchestrator(screen, reg)}
	if cfg.Audio {
		cues := audio.NewCues(cfg.Volume)
		if err := cues.Initialize(); err != nil {
			log.Printf("main: %v (continuing without audio)", err)
		} else {
			defer cues.Close()
			presenters = append(presenters, cues)
		}
	}

	// Input polling interacts directly with the terminal on its own goroutine
	poller := input.NewPoller(screen, queue, cfg.Bounds())
	poller.SetCrashHandler(terminal.CrashHandler("EVENT POLLER", os.Stderr))
	go poller.Run()

	if svc != nil {
		svc.Start(ctx)
		defer svc.Stop()
	}

	loop := engine.NewLoop(queue, game, presenters, clock)
	loop.SetInterval(cfg.FrameInterval)
	last := loop.Run(ctx)

	log.Printf("main: exit after %d frames, outcome=%s score=%d", loop.Frames(), game.Outcome(), last.Score)
	log.Printf("main: metrics %s, queue overflow %d", reg.Summary(), queue.Dropped())
}
