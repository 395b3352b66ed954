package system

import (
	"testing"

	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/event"
	"line-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryActiveSkillHasACast(t *testing.T) {
	for _, id := range defs.ActiveSkills {
		_, ok := castRegistry[id]
		assert.True(t, ok, "no cast for %s", id)
	}
}

func TestSkillDamageFormula(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillAurora, 1)
	// cd 3.85 → фактор 0.77, урон (8+3.2 + 0.77*5) * 1
	assert.InDelta(t, 0.77, w.casting.weaponFactor(defs.SkillAurora, 1), 1e-9)
	assert.InDelta(t, 15.05, w.casting.skillDamage(defs.SkillAurora, 1, 8+3.2), 1e-9)
}

func TestCastingWaitsWithoutTargets(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillAurora, 1)
	casts := collect(w.dispatcher, event.SkillCast)

	w.casting.Update(0.016)
	assert.Empty(t, *casts)
	st := w.casting.State(defs.SkillAurora)
	assert.InDelta(t, 0.385, st.Cooldown, 1e-9, "retry is a tenth of the cooldown")

	// Враг за пределами дальности не считается.
	w.spawn(defs.KindWalker, config.PlayerX, config.PlayerY-600, 100)
	w.casting.Update(0.4)
	assert.Empty(t, *casts)
}

func TestCastingFiresAndRestartsCooldown(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillAurora, 1)
	casts := collect(w.dispatcher, event.SkillCast)
	e := w.spawn(defs.KindWalker, 200, 300, 100)

	w.casting.Update(0.016)
	require.Len(t, *casts, 1)
	assert.Equal(t, defs.SkillAurora, (*casts)[0].Data)
	assert.InDelta(t, 3.85, w.casting.State(defs.SkillAurora).Cooldown, 1e-9)
	assert.InDelta(t, 100-15.05, e.Health.Value, 1e-9)
	assert.InDelta(t, 15.05, w.dealt("Aurora"), 1e-9)

	w.casting.Update(1)
	assert.Len(t, *casts, 1)
}

func TestLockedSkillsNeverCast(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	casts := collect(w.dispatcher, event.SkillCast)
	w.spawn(defs.KindWalker, 200, 300, 100)
	w.casting.Update(10)
	assert.Empty(t, *casts)
}

func TestAuroraHitsColumnOnly(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillAurora, 1)
	near := w.spawn(defs.KindWalker, 200, 400, 100)
	column := w.spawn(defs.KindWalker, 210, 100, 100)
	aside := w.spawn(defs.KindWalker, 300, 400, 100)

	w.casting.Cast(defs.SkillAurora, 1)
	assert.Less(t, near.Health.Value, 100.0)
	assert.Less(t, column.Health.Value, 100.0)
	assert.Equal(t, 100.0, aside.Health.Value)
}

func TestThermobaricStaggersSubBursts(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillThermobaric, 1)
	w.progress.LevelUp(defs.Branch(defs.SkillThermobaric, defs.UpgradeCount))
	e := w.spawn(defs.KindBrute, 240, 300, 1000)

	w.casting.Cast(defs.SkillThermobaric, 1)
	first := e.Health.Value
	assert.Less(t, first, 1000.0)
	assert.Equal(t, 1, w.scheduler.Len())

	w.advance(0.31)
	assert.Less(t, e.Health.Value, first)
	assert.Equal(t, 0, w.scheduler.Len())
}

func TestGuidedLaserPicksWeakest(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillGuidedLaser, 1)
	strong := w.spawn(defs.KindBrute, 100, 300, 500)
	weak1 := w.spawn(defs.KindWalker, 200, 300, 400)
	weak2 := w.spawn(defs.KindWalker, 300, 300, 300)

	w.casting.Cast(defs.SkillGuidedLaser, 1)
	assert.Equal(t, 500.0, strong.Health.Value)
	assert.Less(t, weak1.Health.Value, 400.0)
	assert.Less(t, weak2.Health.Value, 300.0)
}

func TestIcePierceHitsOnlyNearestOnRay(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.99))
	w.unlock(defs.SkillIcePierce, 1)
	front := w.spawn(defs.KindWalker, config.PlayerX, 400, 100)
	behind := w.spawn(defs.KindWalker, config.PlayerX, 200, 100)

	w.casting.Cast(defs.SkillIcePierce, 1)
	assert.Less(t, front.Health.Value, 100.0)
	assert.Equal(t, 100.0, behind.Health.Value)
	assert.False(t, front.Status.IsFrozen(w.ecs.GameTime), "0.99 misses the freeze roll")
}

func TestChainElectronJumpsToDistinctTargets(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillChainElectron, 1)
	a := w.spawn(defs.KindWalker, 240, 400, 1000)
	b := w.spawn(defs.KindWalker, 240, 340, 1000)
	c := w.spawn(defs.KindWalker, 240, 280, 1000)
	far := w.spawn(defs.KindWalker, 240, 50, 1000)

	w.casting.Cast(defs.SkillChainElectron, 1)
	dmg := w.casting.skillDamage(defs.SkillChainElectron, 1, 18+5)
	for _, e := range []struct {
		name string
		hp   float64
	}{{"a", a.Health.Value}, {"b", b.Health.Value}, {"c", c.Health.Value}} {
		assert.InDelta(t, 1000-dmg, e.hp, 1e-9, e.name)
	}
	assert.Equal(t, 1000.0, far.Health.Value, "out of jump radius")
}

func TestEmpFirstHitIsNotAmplifiedByItsOwnShock(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0))
	w.unlock(defs.SkillEmpPierce, 1)
	e := w.spawn(defs.KindWalker, 240, 400, 10000)
	dmg := w.casting.skillDamage(defs.SkillEmpPierce, 1, 20+6)

	w.casting.Cast(defs.SkillEmpPierce, 1)
	assert.InDelta(t, 10000-dmg, e.Health.Value, 1e-9)
	assert.True(t, e.Status.IsShocked(w.ecs.GameTime))

	// Следующий удар по уже шокированной цели идёт с множителем 1.2+0.05.
	hp := e.Health.Value
	w.casting.Cast(defs.SkillEmpPierce, 1)
	assert.InDelta(t, hp-dmg*1.25, e.Health.Value, 1e-9)
}

func TestIceStormFirstTickIsNotAmplifiedByFreeze(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	fx := newEffects(w)
	e := w.spawn(defs.KindWalker, 240, 360, 1000)

	w.casting.Cast(defs.SkillIceStorm, 1)
	require.Equal(t, 1, w.ecs.IceFogs.Len())
	dps := w.casting.skillDamage(defs.SkillIceStorm, 1, 15+5)

	fx.Update(0.1)
	assert.InDelta(t, 1000-dps*0.1, e.Health.Value, 1e-9)
	assert.True(t, e.Status.IsFrozen(w.ecs.GameTime))

	hp := e.Health.Value
	fx.Update(0.1)
	assert.InDelta(t, hp-dps*0.1, e.Health.Value, 1e-9, "freeze does not change damage taken")
}

func TestChainElectronHitsUnshockedTargetsAtBaseDamage(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0))
	w.unlock(defs.SkillChainElectron, 1)
	fresh := w.spawn(defs.KindWalker, 240, 400, 1000)
	dmg := w.casting.skillDamage(defs.SkillChainElectron, 1, 18+5)

	w.casting.Cast(defs.SkillChainElectron, 1)
	assert.InDelta(t, 1000-dmg, fresh.Health.Value, 1e-9)
	assert.False(t, fresh.Status.IsShocked(w.ecs.GameTime), "chain electron leaves no shock")

	shocked := w.spawn(defs.KindWalker, 240, 420, 1000)
	shocked.Status.ApplyShock(w.ecs.GameTime, 5, 1.25)
	fresh.Removed = true
	w.casting.Cast(defs.SkillChainElectron, 1)
	assert.InDelta(t, 1000-dmg*1.25, shocked.Health.Value, 1e-9)
}

func TestEmpChainRecastsExactlyOnce(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0))
	w.unlock(defs.SkillEmpPierce, 1)
	w.progress.LevelUp(defs.Branch(defs.SkillEmpPierce, defs.UpgradeChain))

	first := w.spawn(defs.KindWalker, 240, 400, 1)
	second := w.spawn(defs.KindWalker, 100, 100, 1)

	w.casting.Cast(defs.SkillEmpPierce, 1)
	require.False(t, first.Alive())
	require.True(t, second.Alive())
	assert.True(t, first.Status.IsShocked(w.ecs.GameTime) || first.Removed)

	w.advance(0.35)
	assert.False(t, second.Alive(), "chain fired after the kill")

	third := w.spawn(defs.KindWalker, 240, 300, 1)
	w.advance(5)
	assert.True(t, third.Alive(), "the chained cast does not chain again")
	assert.Equal(t, 0, w.scheduler.Len())
}

func TestEmpWithoutKillDoesNotChain(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0))
	w.unlock(defs.SkillEmpPierce, 1)
	w.progress.LevelUp(defs.Branch(defs.SkillEmpPierce, defs.UpgradeChain))
	tank := w.spawn(defs.KindBrute, 240, 400, 10000)

	w.casting.Cast(defs.SkillEmpPierce, 1)
	hp := tank.Health.Value
	assert.True(t, tank.Status.IsShocked(w.ecs.GameTime))
	w.advance(2)
	assert.Equal(t, hp, tank.Health.Value)
}

func TestPersistentSkillsSpawnEffects(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.spawn(defs.KindWalker, 240, 300, 100)

	w.casting.Cast(defs.SkillTornado, 1)
	w.casting.Cast(defs.SkillNapalm, 1)
	w.casting.Cast(defs.SkillHighEnergyRay, 1)
	w.casting.Cast(defs.SkillArmoredCar, 1)
	w.casting.Cast(defs.SkillMiniVortex, 1)
	w.casting.Cast(defs.SkillIceStorm, 1)

	assert.Equal(t, 1, w.ecs.Tornados.Len())
	assert.Equal(t, 1, w.ecs.NapalmShells.Len())
	assert.Equal(t, 1, w.ecs.Beams.Len())
	assert.Equal(t, 1, w.ecs.Cars.Len())
	assert.Equal(t, 1, w.ecs.Vortexes.Len())
	assert.Equal(t, 1, w.ecs.IceFogs.Len())
}
