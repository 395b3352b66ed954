// internal/system/casting.go
package system

import (
	"image/color"
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/entity"
	"line-defense/internal/event"
	"line-defense/internal/interfaces"
	"line-defense/internal/utils"
	"log/slog"
)

// Фактор оружия: чем реже срабатывает скилл, тем больше он берёт от урона игрока.
const (
	weaponFactorBaseCooldown = 5.0
	weaponFactorMin          = 0.2
	weaponFactorMax          = 2.5
)

// castFunc executes the effect of one active skill at the given level.
type castFunc func(c *CastingSystem, lv int)

// castRegistry maps every active skill to its effect.
// Populated by init() in the skill_*.go files.
var castRegistry = map[defs.SkillID]castFunc{}

func registerCast(id defs.SkillID, fn castFunc) {
	castRegistry[id] = fn
}

// SkillState — состояние одного активного скилла: собственный таймер перезарядки.
type SkillState struct {
	ID       defs.SkillID
	Cooldown float64
}

// CastingSystem ведёт перезарядку активных скиллов и запускает их эффекты.
type CastingSystem struct {
	ecs             *entity.ECS
	progress        *ProgressionSystem
	damage          *DamageSystem
	scheduler       *Scheduler
	rng             utils.Rand
	renderer        interfaces.Renderer
	audio           interfaces.Audio
	eventDispatcher *event.Dispatcher
	states          []*SkillState
}

func NewCastingSystem(
	ecs *entity.ECS,
	progress *ProgressionSystem,
	damage *DamageSystem,
	scheduler *Scheduler,
	rng utils.Rand,
	renderer interfaces.Renderer,
	audio interfaces.Audio,
	eventDispatcher *event.Dispatcher,
) *CastingSystem {
	s := &CastingSystem{
		ecs:             ecs,
		progress:        progress,
		damage:          damage,
		scheduler:       scheduler,
		rng:             rng,
		renderer:        renderer,
		audio:           audio,
		eventDispatcher: eventDispatcher,
	}
	for _, id := range defs.ActiveSkills {
		if _, ok := castRegistry[id]; !ok {
			panic("system: no cast registered for " + string(id))
		}
		s.states = append(s.states, &SkillState{ID: id})
	}
	return s
}

// State returns the cooldown record of an active skill.
func (s *CastingSystem) State(id defs.SkillID) *SkillState {
	for _, st := range s.states {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// Update counts every unlocked skill down and casts the ones that are ready.
// A ready skill with no enemy in its trigger range waits a short retry instead of a full cooldown.
func (s *CastingSystem) Update(dt float64) {
	for _, st := range s.states {
		lv := s.progress.LevelOf(st.ID)
		if lv <= 0 {
			continue
		}
		st.Cooldown -= dt
		if st.Cooldown > 0 {
			continue
		}
		full := s.progress.Cooldown(st.ID, lv)
		if !s.InTriggerRange(st.ID) {
			st.Cooldown = full * config.SkillRetryFraction
			continue
		}
		s.Cast(st.ID, lv)
		st.Cooldown = full
	}
}

// TriggerRange is the sector checked before a skill may cast.
func (s *CastingSystem) TriggerRange(id defs.SkillID) RangeShape {
	return ArcRange(s.ecs.Player.Range * config.SkillTriggerRangeFactor * s.progress.RadiusMult(id))
}

// InTriggerRange reports whether any live enemy is inside the skill's trigger range.
func (s *CastingSystem) InTriggerRange(id defs.SkillID) bool {
	shape := s.TriggerRange(id)
	p := s.ecs.Player
	for _, e := range s.ecs.LiveEnemies() {
		if shape.Contains(p.X, p.Y, e.X, e.Y) {
			return true
		}
	}
	return false
}

// Cast runs the effect of id immediately, ignoring cooldown and range.
func (s *CastingSystem) Cast(id defs.SkillID, lv int) {
	castRegistry[id](s, lv)
	slog.Debug("skill cast", "skill", id, "level", lv, "t", s.ecs.GameTime)
	s.eventDispatcher.Dispatch(event.Event{Type: event.SkillCast, Data: id})
}

func (s *CastingSystem) weaponFactor(id defs.SkillID, lv int) float64 {
	return utils.Clamp(s.progress.Cooldown(id, lv)/weaponFactorBaseCooldown, weaponFactorMin, weaponFactorMax)
}

// skillDamage scales a skill's base value with the player's weapon and the damage branch.
func (s *CastingSystem) skillDamage(id defs.SkillID, lv int, base float64) float64 {
	return (base + s.weaponFactor(id, lv)*s.ecs.Player.Damage) * s.progress.DamageMult(id)
}

func (s *CastingSystem) damageType(id defs.SkillID) defs.DamageType {
	return skillDamageType(s.progress.Library(), id)
}

func (s *CastingSystem) source(id defs.SkillID) string {
	return skillSource(s.progress.Library(), id)
}

// hit applies skill damage through the target's damage-taken multiplier.
func (s *CastingSystem) hit(e *component.Enemy, amount float64, id defs.SkillID) bool {
	return s.damage.Scaled(e, amount, s.damageType(id), s.source(id))
}

func (s *CastingSystem) nearest() *component.Enemy {
	return nearestEnemy(s.ecs, s.ecs.Player.X, s.ecs.Player.Y)
}

func (s *CastingSystem) mark(m component.Marker) {
	s.renderer.Spawn(m)
}

func (s *CastingSystem) ring(x, y, r float64, c color.RGBA, d float64) {
	s.mark(component.Marker{Shape: component.MarkerRing, X: x, Y: y, Radius: r, Width: 2, Color: c, Duration: d})
}

func (s *CastingSystem) line(x1, y1, x2, y2, w float64, c color.RGBA, d float64) {
	s.mark(component.Marker{Shape: component.MarkerLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: w, Color: c, Duration: d})
}
