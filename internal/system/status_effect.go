// internal/system/status_effect.go
package system

import "line-defense/internal/entity"

// StatusEffectSystem наносит периодический урон от горения.
// Заморозка и шок — просто таймеры, их читают другие системы.
type StatusEffectSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewStatusEffectSystem(ecs *entity.ECS, damage *DamageSystem) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, damage: damage}
}

// Update applies burn as a share of max hp per second. Burn ignores resistances.
func (s *StatusEffectSystem) Update(dt float64) {
	now := s.ecs.GameTime
	for _, e := range s.ecs.LiveEnemies() {
		if burn := e.Status.BurnDamage(dt, now, e.Health.Max); burn > 0 {
			s.damage.Apply(e, burn, SourceBurn, false)
		}
	}
}
