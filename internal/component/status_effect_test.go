package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreezeNeverWeakens(t *testing.T) {
	s := NewStatusEffects()
	s.ApplyFreeze(10, 3)
	s.ApplyFreeze(10, 1)
	assert.Equal(t, 13.0, s.FrozenUntil)
	assert.True(t, s.IsFrozen(12.9))
	assert.False(t, s.IsFrozen(13))
}

func TestShockAxesMaximizedIndependently(t *testing.T) {
	s := NewStatusEffects()
	s.ApplyShock(0, 4, 1.2)
	s.ApplyShock(0, 2, 1.5)

	assert.Equal(t, 4.0, s.ShockedUntil, "longer duration kept")
	assert.Equal(t, 1.5, s.ShockMult, "stronger multiplier kept")
	assert.Equal(t, 1.5, s.ShockMultiplier(3.9))
	assert.Equal(t, 1.0, s.ShockMultiplier(4.0))
}

func TestBurnDamage(t *testing.T) {
	s := NewStatusEffects()
	assert.Zero(t, s.BurnDamage(0.1, 0, 100))

	s.ApplyBurn(0, 2, 0.05)
	s.ApplyBurn(0, 1, 0.01)
	assert.InDelta(t, 100*0.05*0.1, s.BurnDamage(0.1, 1.5, 100), 1e-9)
	assert.Zero(t, s.BurnDamage(0.1, 2, 100))
}

func TestKnockUpKeepsStronger(t *testing.T) {
	s := NewStatusEffects()
	s.KnockUp(150)
	s.KnockUp(100)
	assert.Equal(t, -150.0, s.ExtraVy)

	s.KnockUp(-200)
	assert.Equal(t, -200.0, s.ExtraVy, "sign of the impulse is ignored")

	s.DecayKnockback(0.12)
	assert.InDelta(t, -176, s.ExtraVy, 1e-9)
}
