// internal/system/wave.go
package system

import (
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/entity"
	"line-defense/internal/event"
	"line-defense/internal/utils"
	"log/slog"
	"math"
)

const (
	spawnIntervalMax   = 0.9
	spawnIntervalRange = 0.5
	spawnIntervalMin   = 0.3
	hpGrowthPerWave    = 0.05
	speedGrowthPerTier = 0.03
	speedTierWaves     = 10
	globalSpeedScale   = 0.5
	crazyHPMult        = 2.0
	crazySpeedMult     = 1.5
	crazyIntervalMult  = 0.5
	endlessQuotaStep   = 5
)

// WaveSystem — директор волн: квота, темп появления и состав врагов.
// Волна считается пройденной, как только вся её квота выпущена.
type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	rng             utils.Rand
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, rng utils.Rand, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{ecs: ecs, lib: lib, rng: rng, eventDispatcher: eventDispatcher}
}

// Quota is the number of spawns of wave w.
func Quota(base, maxWaves, w int, endless bool) int {
	if endless && w > maxWaves {
		return base + utils.FloorInt(float64(maxWaves-1)*0.5) + (w-maxWaves)/endlessQuotaStep
	}
	return base + utils.FloorInt(float64(w-1)*0.5)
}

// SpawnInterval is the delay between spawns of wave w.
func SpawnInterval(w, maxWaves int, crazy bool) float64 {
	interval := math.Max(spawnIntervalMin, spawnIntervalMax-waveProgress(w, maxWaves)*spawnIntervalRange)
	if crazy {
		interval *= crazyIntervalMult
	}
	return interval
}

// waveProgress — доля пройденных волн, 0 на первой и 1 на последней.
func waveProgress(w, maxWaves int) float64 {
	if maxWaves <= 1 {
		return 1
	}
	return float64(w-1) / float64(maxWaves-1)
}

// Scales returns hp and speed multipliers of ordinary enemies in wave w.
func Scales(w int, crazy bool) (hp, speed float64) {
	hp = 1 + float64(w-1)*hpGrowthPerWave
	speed = 1 + float64((w-1)/speedTierWaves)*speedGrowthPerTier
	if crazy {
		hp *= crazyHPMult
		speed *= crazySpeedMult
	}
	return hp, speed * globalSpeedScale
}

func (s *WaveSystem) quota() int {
	run := s.ecs.Run
	return Quota(run.BaseQuota, run.MaxWaves, run.Wave, run.EndlessMode)
}

// Start prepares the current wave: resets counters and recomputes the spawn rate.
func (s *WaveSystem) Start() {
	run := s.ecs.Run
	run.ZombiesInWave = 0
	run.WaveCleared = false
	run.SpawnTimer = 0
	run.SpawnInterval = SpawnInterval(run.Wave, run.MaxWaves, run.CrazyMode)
	slog.Info("wave started", "wave", run.Wave, "quota", s.quota(), "interval", run.SpawnInterval)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: run.Wave})
}

// Update advances the wave. When the last normal wave is released without
// endless mode it raises the endless prompt and stops.
func (s *WaveSystem) Update(dt float64) {
	run := s.ecs.Run
	quota := s.quota()

	if !run.WaveCleared && run.ZombiesInWave >= quota && run.ZombiesInWave > 0 {
		run.WaveCleared = true
		slog.Info("wave cleared", "wave", run.Wave)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: run.Wave})
		if run.Wave >= run.MaxWaves && !run.EndlessMode {
			run.Phase = component.PhaseEndlessPrompt
			s.eventDispatcher.Dispatch(event.Event{Type: event.EndlessPrompt})
			return
		}
		run.Wave++
		s.Start()
		quota = s.quota()
	}

	if run.WaveCleared || run.ZombiesInWave >= quota {
		return
	}
	run.SpawnTimer += dt
	for run.SpawnTimer >= run.SpawnInterval && run.ZombiesInWave < quota {
		run.SpawnTimer -= run.SpawnInterval
		s.spawn()
		run.ZombiesInWave++
	}
}

// ContinueEndless resumes after the final wave with endless mode on.
func (s *WaveSystem) ContinueEndless() {
	run := s.ecs.Run
	run.EndlessMode = true
	run.Phase = component.PhaseRunning
	run.Wave++
	s.Start()
}

func (s *WaveSystem) spawn() {
	run := s.ecs.Run
	if !run.EndlessMode && run.ZombiesInWave == 0 {
		switch run.Wave {
		case config.BossWave:
			s.spawnBoss(defs.KindBoss)
			return
		case config.FinalBossWave:
			s.spawnBoss(defs.KindFinalBoss)
			return
		}
	}

	def := s.lib.Enemy(s.pickKind())
	hpScale, speedScale := Scales(run.Wave, run.CrazyMode)
	x := utils.Between(s.rng, config.SpawnMarginX, config.ScreenWidth-config.SpawnMarginX)
	s.add(def, x, math.Floor(def.HP*hpScale), def.Speed*speedScale)
}

// spawnBoss — босс появляется по центру; здоровье не растёт с волной.
func (s *WaveSystem) spawnBoss(kind defs.EnemyKind) {
	run := s.ecs.Run
	def := s.lib.Enemy(kind)
	hp := def.HP
	if run.CrazyMode {
		hp *= crazyHPMult
	}
	_, speedScale := Scales(run.Wave, run.CrazyMode)
	e := s.add(def, config.ScreenWidth/2, math.Floor(hp), def.Speed*speedScale)
	slog.Info("boss spawned", "kind", kind, "wave", run.Wave, "hp", e.Health.Max)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: kind})
}

func (s *WaveSystem) add(def defs.EnemyDefinition, x, hp, speed float64) *component.Enemy {
	id := s.ecs.NewEntity()
	e := component.NewEnemy(id, def, x, config.SpawnY, hp, speed)
	s.ecs.Enemies.Add(id, e)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return e
}

// KindWeights returns the walker, brute, spitter and resistant weights of wave w.
func KindWeights(w, maxWaves int) []float64 {
	p := waveProgress(w, maxWaves)
	spitter := utils.Clamp(p*0.4, 0, 0.38)
	brute := utils.Clamp(p*0.3, 0, 0.28)
	walker := math.Max(0.05, 1-spitter-brute)
	resistant := 0.0
	if w >= config.ResistantWave {
		resistant = config.ResistantWeight
	}
	return []float64{walker, brute, spitter, resistant}
}

func (s *WaveSystem) pickKind() defs.EnemyKind {
	switch utils.ChooseWeighted(s.rng, KindWeights(s.ecs.Run.Wave, s.ecs.Run.MaxWaves)) {
	case 1:
		return defs.KindBrute
	case 2:
		return defs.KindSpitter
	case 3:
		return defs.ResistantKinds[s.rng.Intn(len(defs.ResistantKinds))]
	}
	return defs.KindWalker
}
