package component

import (
	"testing"

	"line-defense/internal/defs"

	"github.com/stretchr/testify/assert"
)

func walkerDef() defs.EnemyDefinition {
	return defs.EnemyDefinition{
		Kind: defs.KindWalker, HP: 10, Speed: 28, AttackMode: defs.AttackMelee,
		AttackDamage: 6, AttackInterval: 0.7, Exp: 3, Size: 1,
	}
}

func TestEnemyTakeDamageScenario(t *testing.T) {
	e := NewEnemy(1, walkerDef(), 100, 0, 10, 28)
	dead := e.TakeDamage(5)
	assert.False(t, dead)
	assert.Equal(t, 5.0, e.Health.Value)
	assert.True(t, e.Alive())

	assert.True(t, e.TakeDamage(5))
	assert.False(t, e.Alive())
}

func TestEnemyReachesStopLineAndAttacks(t *testing.T) {
	e := NewEnemy(1, walkerDef(), 100, 500, 10, 28)
	e.Update(1, 0, 520)
	assert.Equal(t, 520.0, e.Y, "clamped to the line")
	assert.True(t, e.Attacking)

	assert.True(t, e.TryAttack(0.016), "first strike is immediate")
	assert.False(t, e.TryAttack(0.5))
	assert.True(t, e.TryAttack(0.2))

	e.Update(1, 0, 520)
	assert.Equal(t, 520.0, e.Y, "attacking enemies never move again")
}

func TestRangedEnemyStopsShort(t *testing.T) {
	def := walkerDef()
	def.AttackMode = defs.AttackRanged
	def.StopDistance = 90
	e := NewEnemy(1, def, 100, 420, 14, 20)
	e.Update(1, 0, 520)
	assert.Equal(t, 430.0, e.Y)
	assert.True(t, e.Attacking)
}

func TestFrozenEnemySkipsMovementAndCooldown(t *testing.T) {
	e := NewEnemy(1, walkerDef(), 100, 0, 10, 28)
	e.Status.ApplyFreeze(0, 1)
	e.Update(0.5, 0.5, 520)
	assert.Equal(t, 0.0, e.Y)
	assert.Equal(t, Velocity{}, e.Velocity(0.5))

	e.Update(0.5, 1.0, 520)
	assert.InDelta(t, 14, e.Y, 1e-9)
	assert.Equal(t, Velocity{VY: 28}, e.Velocity(1.0))
}

func TestKnockbackPushesUp(t *testing.T) {
	e := NewEnemy(1, walkerDef(), 100, 200, 10, 28)
	e.Status.KnockUp(100)
	e.Update(0.1, 0, 520)
	// extraVy decays to -88 before moving: (28 - 88) * 0.1 = -6
	assert.InDelta(t, 194, e.Y, 1e-9)
}

func TestDamageTakenMult(t *testing.T) {
	def := walkerDef()
	def.Resistances = map[defs.DamageType]float64{defs.DamageFire: 0.5}
	def.Weaknesses = map[defs.DamageType]float64{defs.DamageFire: 0.5}
	e := NewEnemy(1, def, 0, 0, 10, 10)

	assert.InDelta(t, 0.75, e.DamageTakenMult(0, defs.DamageFire), 1e-9)
	e.Status.ApplyShock(0, 1, 2)
	assert.InDelta(t, 1.5, e.DamageTakenMult(0.5, defs.DamageFire), 1e-9)
	assert.InDelta(t, 2.0, e.DamageTakenMult(0.5, defs.DamageIce), 1e-9)
}
