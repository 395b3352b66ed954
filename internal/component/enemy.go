// internal/component/enemy.go
package component

import (
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID   types.EntityID
	Kind defs.EnemyKind
	Position
	Health
	Attack
	Status StatusEffects

	Speed    float64
	Size     float64
	Boss     bool
	Exp      int
	Color    uint32
	Elements defs.ElementProfile

	// Teleport != nil пока враг летит к точке появления.
	Teleport *Teleport
	Removed  bool
}

// Teleport — анимация переноса врага к верхнему краю.
type Teleport struct {
	FromX, FromY float64
	ToX, ToY     float64
	Progress     float64
}

// NewEnemy builds an enemy from its kind definition with already scaled hp and speed.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, x, y, hp, speed float64) *Enemy {
	return &Enemy{
		ID:       id,
		Kind:     def.Kind,
		Position: Position{X: x, Y: y},
		Health:   Health{Value: hp, Max: hp},
		Attack: Attack{
			Mode:         def.AttackMode,
			Damage:       def.AttackDamage,
			Interval:     def.AttackInterval,
			StopDistance: def.StopDistance,
			ShotSpeed:    def.ShotSpeed,
		},
		Status:   NewStatusEffects(),
		Speed:    speed,
		Size:     def.Size,
		Boss:     def.Boss,
		Exp:      def.Exp,
		Color:    def.Color,
		Elements: def.Elements(),
	}
}

// Alive — враг в игре и у него осталось здоровье.
func (e *Enemy) Alive() bool {
	return !e.Removed && e.Health.Value > 0
}

// Radius is the collision radius derived from size.
func (e *Enemy) Radius() float64 {
	return e.Size * config.EnemyRadiusPerSize
}

// Update advances movement and the attack state by one tick.
// Frozen enemies neither move nor count down their attack.
func (e *Enemy) Update(dt, now, defenseLineY float64) {
	if e.Status.IsFrozen(now) || e.Teleport != nil {
		return
	}
	if e.Attacking {
		e.Cooldown = max(0, e.Cooldown-dt)
		return
	}

	e.Status.DecayKnockback(config.KnockbackDecay)
	e.Y += (e.Speed + e.Status.ExtraVy) * dt

	stopY := e.StopLine(defenseLineY)
	if e.Y >= stopY {
		e.Y = stopY
		e.Attacking = true
		e.Cooldown = 0
	}
}

// TryAttack reports whether the enemy strikes this tick. The first strike is immediate.
func (e *Enemy) TryAttack(dt float64) bool {
	if !e.Attacking {
		return false
	}
	e.Cooldown = max(0, e.Cooldown-dt)
	if e.Cooldown > 0 {
		return false
	}
	e.Cooldown = e.Interval
	return true
}

// TakeDamage subtracts amount and reports whether the enemy died.
func (e *Enemy) TakeDamage(amount float64) bool {
	e.Health.Value -= amount
	return e.Health.Value <= 0
}

// DamageTakenMult combines the shock multiplier with the elemental profile.
func (e *Enemy) DamageTakenMult(now float64, t defs.DamageType) float64 {
	return e.Status.ShockMultiplier(now) * e.Elements.Multiplier(t)
}

// Velocity is the expected movement used for lead prediction.
func (e *Enemy) Velocity(now float64) Velocity {
	if e.Attacking || e.Status.IsFrozen(now) || e.Teleport != nil {
		return Velocity{}
	}
	return Velocity{VY: e.Speed}
}
