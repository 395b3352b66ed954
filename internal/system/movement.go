// internal/system/movement.go
package system

import (
	"line-defense/internal/config"
	"line-defense/internal/entity"
)

// MovementSystem двигает врагов к линии обороны и снаряды врагов вниз.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(dt float64) {
	now := s.ecs.GameTime
	for _, e := range s.ecs.LiveEnemies() {
		e.Update(dt, now, config.DefenseLineY)
	}
	for _, shot := range s.ecs.EnemyShots.All() {
		if !shot.Removed {
			shot.Y += shot.VY * dt
		}
	}
}
