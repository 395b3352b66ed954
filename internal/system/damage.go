// internal/system/damage.go
package system

import (
	"line-defense/internal/component"
	"line-defense/internal/defs"
	"line-defense/internal/entity"
	"line-defense/internal/event"
	"line-defense/internal/utils"
)

const (
	critEnhanceMult     = 2.0
	critEnhancePerLevel = 0.025
)

// DamageSystem превращает сырой урон в итоговый и применяет его к врагам.
// Вся запись статистики и уведомления об убийствах идут через него.
type DamageSystem struct {
	ecs             *entity.ECS
	progress        *ProgressionSystem
	rng             utils.Rand
	stats           *DamageStats
	eventDispatcher *event.Dispatcher
}

func NewDamageSystem(ecs *entity.ECS, progress *ProgressionSystem, rng utils.Rand, eventDispatcher *event.Dispatcher) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		progress:        progress,
		rng:             rng,
		stats:           NewDamageStats(),
		eventDispatcher: eventDispatcher,
	}
}

func (s *DamageSystem) Stats() *DamageStats { return s.stats }

// Resolve computes the final damage of one hit and whether it was critical.
// Shock, resistance and weakness multiply in that order; a crit either scales by
// the player's crit multiplier or, with the crit-enhance talent, is replaced by
// base*mult*2 plus a share of the target's max health. Result is never negative.
func (s *DamageSystem) Resolve(base float64, target *component.Enemy, dtype defs.DamageType) (float64, bool) {
	mult := target.DamageTakenMult(s.ecs.GameTime, dtype)
	final := base * mult
	isCrit := s.rng.Float64() < s.ecs.Player.CritChance
	if isCrit {
		if lv := s.progress.Level(defs.Main(defs.SkillTalentCritEnhance)); lv > 0 {
			final = base*mult*critEnhanceMult + target.Health.Max*critEnhancePerLevel*float64(lv)
		} else {
			final *= s.ecs.Player.CritDamageMult
		}
	}
	return max(0, final), isCrit
}

// Strike resolves a hit with crit roll and applies it.
func (s *DamageSystem) Strike(target *component.Enemy, base float64, dtype defs.DamageType, source string) (dealt float64, isCrit, killed bool) {
	dealt, isCrit = s.Resolve(base, target, dtype)
	killed = s.Apply(target, dealt, source, isCrit)
	return dealt, isCrit, killed
}

// Scaled applies amount times the target's damage-taken multiplier, without a crit roll.
func (s *DamageSystem) Scaled(target *component.Enemy, amount float64, dtype defs.DamageType, source string) bool {
	final := max(0, amount*target.DamageTakenMult(s.ecs.GameTime, dtype))
	return s.Apply(target, final, source, false)
}

// Apply subtracts an already final amount, records it and reports whether the hit killed.
func (s *DamageSystem) Apply(target *component.Enemy, amount float64, source string, isCrit bool) bool {
	if !target.Alive() || amount <= 0 {
		return false
	}
	s.stats.Record(source, amount)
	died := target.TakeDamage(amount)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DamageDealt,
		Data: event.DamageData{Target: target.ID, Source: source, Amount: amount, Crit: isCrit},
	})
	if died {
		s.kill(target)
	}
	return died
}

func (s *DamageSystem) kill(target *component.Enemy) {
	target.Removed = true
	s.ecs.Run.Killed++
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{ID: target.ID, Kind: target.Kind, Exp: target.Exp, X: target.X, Y: target.Y},
	})
}
