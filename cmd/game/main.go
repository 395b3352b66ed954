// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"line-defense/internal/audio"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/state"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		slog.Error("line-defense stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "line-defense.yaml", "path to the run config")
	flag.Parse()

	cfg, err := config.LoadRunConfig(*configPath)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	lib, err := defs.LoadLibrary()
	if err != nil {
		return fmt.Errorf("loading tables: %w", err)
	}
	sink, err := audio.NewSink(ebaudio.NewContext(audio.SampleRate))
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, &state.Env{Config: cfg, Library: lib, Audio: sink}))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Line Defense")
	return ebiten.RunGame(app)
}
