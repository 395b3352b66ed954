// internal/sim/runner.go
package sim

import (
	"context"
	"fmt"
	"line-defense/internal/app"
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/event"
	"line-defense/internal/metrics"
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// ctxCheckEvery — как часто прогон проверяет отмену, в тиках.
const ctxCheckEvery = 600

// Result — итог одного прогона.
type Result struct {
	Run       int     `json:"run"`
	Seed      int64   `json:"seed"`
	Outcome   string  `json:"outcome"` // victory, defeat, timeout
	Wave      int     `json:"wave"`
	Killed    int     `json:"killed"`
	Level     int     `json:"level"`
	TimeAlive float64 `json:"time_alive"`
	Ticks     int     `json:"ticks"`
}

// Runner plays seeded runs headlessly with a fixed draft policy.
type Runner struct {
	cfg     config.RunConfig
	lib     *defs.Library
	metrics *metrics.Metrics
	policy  Policy
	results *Store
}

func NewRunner(cfg config.RunConfig, lib *defs.Library, m *metrics.Metrics, results *Store) (*Runner, error) {
	policy, err := PolicyByName(cfg.Sim.Policy)
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Runner{cfg: cfg, lib: lib, metrics: m, policy: policy, results: results}, nil
}

// RunAll plays sim.runs games in parallel, one per seed starting at cfg.Seed.
func (r *Runner) RunAll(ctx context.Context) ([]Result, error) {
	results := make([]Result, r.cfg.Sim.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range results {
		g.Go(func() error {
			res, err := r.RunOne(gctx, i)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunOne plays run i until it ends or sim.duration_sec of game time passes.
// Endless continuation is always declined.
func (r *Runner) RunOne(ctx context.Context, i int) (Result, error) {
	cfg := r.cfg
	cfg.Seed = r.cfg.Seed + int64(i)

	game, err := app.NewGame(app.Options{
		Config:  cfg,
		Library: r.lib,
		HUD:     r.metrics.HUD(strconv.Itoa(i)),
	})
	if err != nil {
		return Result{}, err
	}

	maxTicks := int(cfg.Sim.DurationSec / cfg.Sim.StepSec)
	ticks := 0
	for ; ticks < maxTicks && !game.Phase().Over(); ticks++ {
		if ticks%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if err := r.decide(game); err != nil {
			return Result{}, err
		}
		start := time.Now()
		game.Update(cfg.Sim.StepSec)
		r.metrics.ObserveTick(time.Since(start))
	}

	res := summarize(game, i, cfg.Seed, ticks)
	if game.Phase().Over() {
		run := game.ECS.Run
		r.metrics.ObserveRunEnded(event.RunEndedData{
			Victory:   run.Phase == component.PhaseVictory,
			Wave:      run.Wave,
			Killed:    run.Killed,
			TimeAlive: run.TimeAlive,
		})
	}
	slog.Info("sim run finished", "run", i, "seed", cfg.Seed, "outcome", res.Outcome, "wave", res.Wave, "level", res.Level)
	if r.results != nil {
		r.results.Add(res)
	}
	return res, nil
}

// decide отвечает на паузы забега: выбор карточки или предложение бесконечного режима.
func (r *Runner) decide(game *app.Game) error {
	switch game.Phase() {
	case component.PhaseLevelUp:
		choices := game.Choices()
		if len(choices) == 0 {
			return nil
		}
		return game.ChooseSkill(r.policy(choices))
	case component.PhaseEndlessPrompt:
		game.DecideEndless(false)
	}
	return nil
}

func summarize(game *app.Game, i int, seed int64, ticks int) Result {
	run := game.ECS.Run
	outcome := "timeout"
	switch run.Phase {
	case component.PhaseVictory:
		outcome = "victory"
	case component.PhaseDefeat:
		outcome = "defeat"
	}
	return Result{
		Run:       i,
		Seed:      seed,
		Outcome:   outcome,
		Wave:      run.Wave,
		Killed:    run.Killed,
		Level:     game.ECS.PlayerState.Level,
		TimeAlive: run.TimeAlive,
		Ticks:     ticks,
	}
}
