// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/entity"
	"line-defense/internal/event"
	"line-defense/internal/interfaces"
	"line-defense/internal/system"
	"line-defense/internal/utils"
	"log/slog"
	"strings"
)

var (
	ErrNoChoicePending = errors.New("app: no level-up choice pending")
	ErrBadChoice       = errors.New("app: choice index out of range")
)

// Options — внешние зависимости забега. Пустые синки заменяются заглушками.
type Options struct {
	Config   config.RunConfig
	Library  *defs.Library
	Renderer interfaces.Renderer
	Audio    interfaces.Audio
	HUD      interfaces.HUD
	Rand     utils.Rand
}

// Game holds one run: the entity store, every system and the level-up flow.
type Game struct {
	Config          config.RunConfig
	Library         *defs.Library
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             utils.Rand

	Scheduler          *system.Scheduler
	Progression        *system.ProgressionSystem
	DamageSystem       *system.DamageSystem
	Draft              *system.DraftPool
	WeaponSystem       *system.WeaponSystem
	TalentSystem       *system.TalentSystem
	ProjectileSystem   *system.ProjectileSystem
	CastingSystem      *system.CastingSystem
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	EffectSystem       *system.EffectSystem
	PlayerSystem       *system.PlayerSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	AuraSystem         *system.AuraSystem

	renderer interfaces.Renderer
	audio    interfaces.Audio
	hud      interfaces.HUD

	choices []defs.SkillDefinition
}

var _ interfaces.Game = (*Game)(nil)

// NewGame wires a fresh run and starts its first wave.
func NewGame(opts Options) (*Game, error) {
	lib := opts.Library
	if lib == nil {
		var err error
		if lib, err = defs.LoadLibrary(); err != nil {
			return nil, fmt.Errorf("loading tables: %w", err)
		}
	}
	if opts.Renderer == nil {
		opts.Renderer = interfaces.NopRenderer{}
	}
	if opts.Audio == nil {
		opts.Audio = interfaces.NopAudio{}
	}
	if opts.HUD == nil {
		opts.HUD = interfaces.NopHUD{}
	}
	if opts.Rand == nil {
		opts.Rand = utils.NewPRNGService(opts.Config.Seed)
	}

	ecs := entity.NewECS()
	if opts.Config.MaxWaves > 0 {
		ecs.Run.MaxWaves = opts.Config.MaxWaves
	}
	if opts.Config.ZombiesPerWave > 0 {
		ecs.Run.BaseQuota = opts.Config.ZombiesPerWave
	}
	ecs.Run.CrazyMode = opts.Config.CrazyMode

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Config:          opts.Config,
		Library:         lib,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             opts.Rand,
		Scheduler:       system.NewScheduler(),
		renderer:        opts.Renderer,
		audio:           opts.Audio,
		hud:             opts.HUD,
	}

	g.Progression = system.NewProgressionSystem(lib)
	g.DamageSystem = system.NewDamageSystem(ecs, g.Progression, g.Rng, eventDispatcher)
	g.Draft = system.NewDraftPool(g.Progression, g.Rng, opts.Config.MaxMainSkills)
	g.WeaponSystem = system.NewWeaponSystem(ecs, g.Progression, g.audio, eventDispatcher)
	g.TalentSystem = system.NewTalentSystem(ecs, g.Progression, g.DamageSystem, g.Rng, g.renderer)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.Progression, g.DamageSystem, g.TalentSystem)
	g.CastingSystem = system.NewCastingSystem(ecs, g.Progression, g.DamageSystem, g.Scheduler, g.Rng, g.renderer, g.audio, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, lib, g.Rng, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, g.DamageSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.EffectSystem = system.NewEffectSystem(ecs, g.Progression, g.DamageSystem, g.audio)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, g.renderer)
	g.AuraSystem = system.NewAuraSystem(ecs, g.renderer)

	// Слушатель подписывается после StateSystem: к моменту LevelUpReady фаза уже сменилась.
	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.LevelUpReady, listener)
	eventDispatcher.Subscribe(event.BossSpawned, listener)
	eventDispatcher.Subscribe(event.EndlessPrompt, listener)
	eventDispatcher.Subscribe(event.RunEnded, listener)

	g.applyVolumes()
	g.syncPlayer()
	g.audio.StartLoop()
	slog.Info("run started", "seed", opts.Config.Seed, "crazy", ecs.Run.CrazyMode, "max_waves", ecs.Run.MaxWaves)
	g.WaveSystem.Start()
	g.pushHUD()
	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.LevelUpReady:
		g.audio.PlayOneShot(interfaces.SoundLevelUp)
		if g.ECS.Run.Phase == component.PhaseLevelUp && len(g.choices) == 0 {
			g.offerChoices()
		}
	case event.BossSpawned:
		g.audio.PlayOneShot(interfaces.SoundBoss)
	case event.EndlessPrompt:
		slog.Info("final wave released, waiting for endless decision", "wave", g.ECS.Run.Wave)
	case event.RunEnded:
		g.audio.StopLoop()
		if data, ok := e.Data.(event.RunEndedData); ok && !data.Victory {
			g.audio.PlayOneShot(interfaces.SoundDefeat)
		}
		g.pushHUD()
	}
}

// Update advances the run by one frame. Pause phases freeze every timer:
// nothing but the HUD is touched until the player decides.
func (g *Game) Update(deltaTime float64) {
	run := g.ECS.Run
	if run.Phase.Paused() || run.Phase.Over() {
		g.pushHUD()
		return
	}
	dt := min(deltaTime, config.MaxDeltaTime)
	if dt <= 0 {
		return
	}

	g.ECS.GameTime += dt
	run.TimeAlive += dt
	g.Scheduler.Advance(g.ECS.GameTime)

	// Игрок
	g.WeaponSystem.Update(dt)

	// Бой и столкновения
	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.EffectSystem.Update(dt)

	// Скиллы
	g.CastingSystem.Update(dt)
	g.TalentSystem.Update(dt)

	// Визуальные эффекты
	g.VisualEffectSystem.Update(dt)
	g.AuraSystem.Update(dt)

	g.StateSystem.Update(dt)
	g.ECS.Sweep()
	g.pushHUD()
}

func (g *Game) Phase() component.RunPhase { return g.ECS.Run.Phase }

// Choices returns the cards of the pending level-up, or nil outside of it.
func (g *Game) Choices() []defs.SkillDefinition {
	if g.ECS.Run.Phase != component.PhaseLevelUp {
		return nil
	}
	return g.choices
}

// ChooseSkill applies the i-th offered card and moves on to the next queued
// level-up or back to battle.
func (g *Game) ChooseSkill(i int) error {
	if g.ECS.Run.Phase != component.PhaseLevelUp || len(g.choices) == 0 {
		return ErrNoChoicePending
	}
	if i < 0 || i >= len(g.choices) {
		return fmt.Errorf("%w: %d of %d", ErrBadChoice, i, len(g.choices))
	}
	def := g.choices[i]
	g.choices = nil

	g.Progression.LevelUp(def.Key)
	slog.Info("skill chosen", "skill", def.Key.String(), "level", g.Progression.Level(def.Key))
	g.EventDispatcher.Dispatch(event.Event{Type: event.SkillLeveled, Data: def.Key})
	g.PlayerSystem.ConsumeLevelUp()
	g.syncPlayer()
	g.offerChoices()
	g.pushHUD()
	return nil
}

// DecideEndless answers the prompt after the final wave: continue in endless
// mode or end the run as a victory.
func (g *Game) DecideEndless(cont bool) {
	if g.ECS.Run.Phase != component.PhaseEndlessPrompt {
		return
	}
	if !cont {
		g.StateSystem.DeclineEndless()
		return
	}
	slog.Info("endless mode on")
	g.WaveSystem.ContinueEndless()
	// Уровни, набранные во время вопроса, предлагаем сразу.
	if g.StateSystem.RequestChoice() {
		g.offerChoices()
	}
	g.pushHUD()
}

// SelectTargetAt pins the weapon on the enemy under the click.
func (g *Game) SelectTargetAt(x, y float64) {
	g.WeaponSystem.SelectTargetAt(x, y)
}

// WeaponStats returns the current weapon derived from skill levels.
func (g *Game) WeaponStats() system.WeaponStats {
	return g.WeaponSystem.Stats()
}

// NewRun builds a fresh session with the same options. Nothing carries over.
func (g *Game) NewRun() (*Game, error) {
	return NewGame(Options{
		Config:   g.Config,
		Library:  g.Library,
		Renderer: g.renderer,
		Audio:    g.audio,
		HUD:      g.hud,
	})
}

// offerChoices draws cards for the next queued level-up. An exhausted pool
// drops the remaining level-ups instead of blocking the run.
func (g *Game) offerChoices() {
	if g.ECS.PlayerState.PendingLevelUps > 0 {
		g.choices = g.Draft.Pick3Distinct()
		if len(g.choices) > 0 {
			return
		}
		slog.Info("draft pool exhausted", "skipped", g.ECS.PlayerState.PendingLevelUps)
		for g.PlayerSystem.ConsumeLevelUp() {
		}
	}
	g.choices = nil
	g.StateSystem.ResumeAfterChoice()
}

// syncPlayer keeps the player's base damage equal to the weapon damage,
// which also feeds skill damage.
func (g *Game) syncPlayer() {
	g.ECS.Player.Damage = g.WeaponSystem.Stats().Damage
}

func (g *Game) applyVolumes() {
	a := g.Config.Audio
	g.audio.SetVolume(interfaces.ChannelMaster, a.Master)
	g.audio.SetVolume(interfaces.ChannelSFX, a.SFX)
	g.audio.SetVolume(interfaces.ChannelMusic, a.Music)
}

func (g *Game) pushHUD() {
	run := g.ECS.Run
	ps := g.ECS.PlayerState
	h := g.hud

	h.SetNumber(interfaces.FieldDefenseHP, run.DefenseHP)
	h.SetNumber(interfaces.FieldDefenseMaxHP, run.DefenseMaxHP)
	h.SetNumber(interfaces.FieldLevel, float64(ps.Level))
	h.SetNumber(interfaces.FieldXP, float64(ps.CurrentXP))
	h.SetNumber(interfaces.FieldXPNext, float64(ps.XPToNextLevel))
	h.SetNumber(interfaces.FieldWave, float64(run.Wave))
	h.SetText(interfaces.FieldWaveLabel, WaveLabel(run))
	h.SetNumber(interfaces.FieldTimeAlive, run.TimeAlive)
	h.SetNumber(interfaces.FieldKills, float64(run.Killed))
	h.SetText(interfaces.FieldPhase, run.Phase.String())

	ws := g.WeaponSystem.Stats()
	h.SetNumber(interfaces.FieldWeaponDamage, ws.Damage)
	h.SetNumber(interfaces.FieldWeaponInterval, ws.Interval)
	h.SetNumber(interfaces.FieldWeaponBurst, float64(ws.Burst))
	h.SetNumber(interfaces.FieldWeaponBullets, float64(ws.Bullets))
	h.SetNumber(interfaces.FieldWeaponPierce, float64(ws.Pierce))
	h.SetNumber(interfaces.FieldWeaponSplit, float64(max(ws.Split2*2, ws.Split4*4)))
	h.SetNumber(interfaces.FieldWeaponCrit, g.ECS.Player.CritChance)
	h.SetText(interfaces.FieldSkills, g.skillsText())

	stats := g.DamageSystem.Stats()
	h.SetNumber(interfaces.FieldDamageTotal, stats.Total())
	h.SetDamageBreakdown(stats.Breakdown())
}

// WaveLabel formats the wave counter shown in the HUD.
func WaveLabel(run *component.RunState) string {
	var b strings.Builder
	if run.CrazyMode {
		b.WriteString("CRAZY ")
	}
	if run.EndlessMode {
		fmt.Fprintf(&b, "Endless wave %d", run.Wave)
	} else {
		fmt.Fprintf(&b, "Wave %d/%d", run.Wave, run.MaxWaves)
	}
	return b.String()
}

// skillsText lists unlocked actives with level and current cooldown.
func (g *Game) skillsText() string {
	var lines []string
	for _, id := range g.Progression.UnlockedActives() {
		lv := g.Progression.LevelOf(id)
		name := g.Library.Skill(defs.Main(id)).Name
		line := fmt.Sprintf("%s Lv%d  cd %.1fs", name, lv, g.Progression.Cooldown(id, lv))
		if st := g.CastingSystem.State(id); st != nil && st.Cooldown > 0 {
			line += fmt.Sprintf(" (%.1f)", st.Cooldown)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
