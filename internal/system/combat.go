// internal/system/combat.go
package system

import (
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/entity"
	"line-defense/internal/event"
)

const enemyShotRemoveMargin = 60.0

// CombatSystem управляет атаками врагов по линии обороны.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update lets attacking enemies strike and resolves enemy shots against the line.
func (s *CombatSystem) Update(dt float64) {
	now := s.ecs.GameTime
	for _, e := range s.ecs.LiveEnemies() {
		if e.Status.IsFrozen(now) || e.Teleport != nil {
			continue
		}
		if !e.TryAttack(dt) {
			continue
		}
		switch e.Mode {
		case defs.AttackRanged:
			id := s.ecs.NewEntity()
			s.ecs.EnemyShots.Add(id, &component.EnemyShot{
				ID:       id,
				Position: component.Position{X: e.X, Y: e.Y + config.EnemyShotOffsetY},
				VY:       e.ShotSpeed,
				Damage:   e.Attack.Damage,
			})
		default:
			s.DamageDefense(e.Attack.Damage)
		}
	}

	for _, shot := range s.ecs.EnemyShots.All() {
		if shot.Removed {
			continue
		}
		if shot.Y >= config.DefenseLineY {
			s.DamageDefense(shot.Damage)
			shot.Removed = true
			continue
		}
		if shot.Y > config.ScreenHeight+enemyShotRemoveMargin {
			shot.Removed = true
		}
	}
}

// DamageDefense lowers the defense line hp, never below zero.
func (s *CombatSystem) DamageDefense(amount float64) {
	run := s.ecs.Run
	if amount <= 0 || run.DefenseHP <= 0 {
		return
	}
	run.DefenseHP = max(0, run.DefenseHP-amount)
	s.eventDispatcher.Dispatch(event.Event{Type: event.DefenseDamaged, Data: amount})
}
