package system

import (
	"math"
	"testing"

	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/interfaces"
	"line-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectiles(w *world) *ProjectileSystem {
	talents := NewTalentSystem(w.ecs, w.progress, w.damage, w.rng, interfaces.NopRenderer{})
	return NewProjectileSystem(w.ecs, w.progress, w.damage, talents)
}

// fireUp adds a weapon bullet at (x, y) flying straight up.
func fireUp(w *world, x, y float64, pierce int) *component.Bullet {
	id := w.ecs.NewEntity()
	b := component.NewBullet(id, x, y, 0, -config.BulletSpeed, 5, 0, pierce)
	w.ecs.Bullets.Add(id, b)
	return b
}

func runTicks(s *ProjectileSystem, n int) {
	for i := 0; i < n; i++ {
		s.Update(0.016)
	}
}

func TestBulletStopsAfterPierceBudget(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	ps := newProjectiles(w)
	first := w.spawn(defs.KindWalker, 240, 390, 100)
	second := w.spawn(defs.KindWalker, 240, 370, 100)
	b := fireUp(w, 240, 400, 1)

	runTicks(ps, 10)
	assert.Equal(t, 95.0, first.Health.Value)
	assert.Equal(t, 100.0, second.Health.Value)
	assert.True(t, b.Removed)
}

func TestPiercingBulletHitsEachEnemyOnce(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	ps := newProjectiles(w)
	first := w.spawn(defs.KindWalker, 240, 390, 100)
	second := w.spawn(defs.KindWalker, 240, 370, 100)
	b := fireUp(w, 240, 400, 2)

	runTicks(ps, 10)
	assert.Equal(t, 95.0, first.Health.Value)
	assert.Equal(t, 95.0, second.Health.Value)
	assert.True(t, b.Removed)
	assert.InDelta(t, 10.0, w.dealt(SourceWeapon), 1e-9)
}

func TestFastBulletIsSweptThroughTarget(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	ps := newProjectiles(w)
	e := w.spawn(defs.KindWalker, 240, 380, 100)
	b := fireUp(w, 240, 400, 1)

	// За 0.2с пуля пролетает 52px и оказывается далеко за врагом.
	ps.Update(0.2)
	assert.Equal(t, 95.0, e.Health.Value)
	assert.True(t, b.Removed)
}

func TestBulletLeavesTheField(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	ps := newProjectiles(w)
	b := fireUp(w, 240, -30, 1)
	ps.Update(0.1)
	assert.True(t, b.Removed)
}

func TestSplitTwoAimsAtNearbyEnemy(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillWeaponSplit2, 1)
	ps := newProjectiles(w)
	hit := w.spawn(defs.KindWalker, 240, 390, 100)
	side := w.spawn(defs.KindWalker, 300, 390, 100)
	fireUp(w, 240, 400, 1)

	ps.Update(0.016)
	require.Equal(t, 2, w.ecs.SecondaryBullets.Len())
	for _, sb := range w.ecs.SecondaryBullets.All() {
		assert.True(t, sb.Secondary)
		assert.InDelta(t, 3.0, sb.Damage, 1e-9)
		assert.Equal(t, hit.ID, sb.ExcludedTarget)
		assert.InDelta(t, w.ecs.Player.Range*config.SecondaryRangeFactor, sb.MaxDistance, 1e-9)
	}
	right := w.ecs.SecondaryBullets.All()[1]
	assert.Greater(t, right.VX, 0.0)
	assert.Less(t, math.Abs(math.Atan2(right.VY, right.VX)), 0.2, "bent toward the side enemy")

	runTicks(ps, 60)
	assert.InDelta(t, 97.0, side.Health.Value, 1e-9)
	assert.Equal(t, 95.0, hit.Health.Value, "the split source is never hit by its fragments")
}

func TestSplitFourReplacesSplitTwo(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillWeaponSplit2, 1)
	w.unlock(defs.SkillWeaponSplit4, 1)
	ps := newProjectiles(w)
	w.spawn(defs.KindWalker, 240, 390, 100)
	fireUp(w, 240, 400, 1)

	ps.Update(0.016)
	require.Equal(t, 4, w.ecs.SecondaryBullets.Len())
	for _, sb := range w.ecs.SecondaryBullets.All() {
		assert.InDelta(t, 2.5, sb.Damage, 1e-9)
	}
}

func TestSplitFromLargeTargetExcludesNothing(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillWeaponSplit2, 1)
	ps := newProjectiles(w)
	w.spawn(defs.KindBoss, 240, 380, 1000)
	fireUp(w, 240, 400, 1)

	ps.Update(0.016)
	require.Equal(t, 2, w.ecs.SecondaryBullets.Len())
	for _, sb := range w.ecs.SecondaryBullets.All() {
		assert.Zero(t, sb.ExcludedTarget)
	}
}

func TestAimSplitsClaimsEachEnemyOnce(t *testing.T) {
	nearby := []splitCandidate{{id: 1, angle: 0.1, dist: 10}}
	got := aimSplits([]float64{0, 0.2}, nearby)
	assert.Equal(t, []float64{0.1, 0.2}, got)
}
