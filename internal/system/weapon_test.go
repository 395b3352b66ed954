package system

import (
	"math"
	"testing"

	"line-defense/internal/defs"
	"line-defense/internal/interfaces"
	"line-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeapon(w *world) *WeaponSystem {
	return NewWeaponSystem(w.ecs, w.progress, interfaces.NopAudio{}, w.dispatcher)
}

func TestSpreadAngles(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		spread float64
		want   []float64
	}{
		{"single", 1, 0.42, []float64{0}},
		{"even count starts on the aim line", 2, 0.28, []float64{0, 0.28}},
		{"odd count centres on the aim line", 3, 0.42, []float64{-0.21, 0, 0.21}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpreadAngles(0, tt.n, tt.spread)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-9)
			}
		})
	}
}

func TestPredictIntercept(t *testing.T) {
	x, y := PredictIntercept(0, 0, 0, -100, 0, 0, 260)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, -100.0, y, "still target is aimed at directly")

	x, y = PredictIntercept(0, 0, 5, -10, 0, 50, 260)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, -10.0, y, "close target is aimed at directly")

	x, y = PredictIntercept(0, 0, 0, -260, 0, 26, 260)
	assert.Equal(t, 0.0, x)
	assert.Greater(t, y, -260.0, "moving target is led")
	// Точка упреждения: цель пройдёт 26*t, пуля — 260*t.
	tFlight := -y / 260
	assert.InDelta(t, -260+26*tFlight, y, 0.5)
}

func TestWeaponHoldsFireWithoutTarget(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	ws := newWeapon(w)

	ws.Update(0.1)
	assert.Equal(t, 0, w.ecs.Bullets.Len())
	assert.True(t, w.ecs.Player.CanFire(), "no cooldown is spent on an empty field")

	// Враг в слепой зоне под игроком тоже не цель.
	w.spawn(defs.KindWalker, w.ecs.Player.X, w.ecs.Player.Y+30, 10)
	ws.Update(0.1)
	assert.Equal(t, 0, w.ecs.Bullets.Len())
}

func TestWeaponFiresAndCoolsDown(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	ws := newWeapon(w)
	w.spawn(defs.KindWalker, 240, 300, 10)

	ws.Update(0.016)
	require.Equal(t, 1, w.ecs.Bullets.Len())
	b := w.ecs.Bullets.All()[0]
	assert.Equal(t, 5.0, b.Damage)
	assert.Equal(t, 1, b.Pierce)
	assert.Less(t, b.VY, 0.0)
	assert.InDelta(t, 0.5, w.ecs.Player.FireCooldown, 1e-9)

	ws.Update(0.1)
	assert.Equal(t, 1, w.ecs.Bullets.Len())
}

func TestWeaponSpreadFiresOneBulletPerLane(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillBulletSpread, 1)
	ws := newWeapon(w)
	w.spawn(defs.KindWalker, 240, 300, 10)

	ws.Update(0.016)
	assert.Equal(t, 2, w.ecs.Bullets.Len())
}

func TestWeaponBurstQueuesVolleys(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	w.unlock(defs.SkillWeaponRapidFire, 1)
	ws := newWeapon(w)
	w.spawn(defs.KindWalker, 240, 300, 10)

	ws.Update(0.016)
	assert.Equal(t, 1, w.ecs.Bullets.Len())
	ws.Update(0.02)
	assert.Equal(t, 1, w.ecs.Bullets.Len(), "burst interval not reached")
	ws.Update(0.02)
	assert.Equal(t, 2, w.ecs.Bullets.Len())

	first, second := w.ecs.Bullets.All()[0], w.ecs.Bullets.All()[1]
	assert.InDelta(t, math.Atan2(first.VY, first.VX), math.Atan2(second.VY, second.VX), 1e-9,
		"queued volleys keep the original aim")
}

func TestWeaponManualTarget(t *testing.T) {
	w := newWorld(t, utils.NewSequenceRand(0.5))
	ws := newWeapon(w)
	w.spawn(defs.KindWalker, 240, 400, 10)
	far := w.spawn(defs.KindWalker, 100, 200, 10)

	ws.SelectTargetAt(110, 210)
	got, ok := ws.ManualTarget()
	require.True(t, ok)
	assert.Equal(t, far.ID, got.ID)

	ws.Update(0.016)
	require.Equal(t, 1, w.ecs.Bullets.Len())
	assert.Less(t, w.ecs.Bullets.All()[0].VX, 0.0, "shot goes left toward the pinned enemy")

	far.Removed = true
	_, ok = ws.ManualTarget()
	assert.False(t, ok)

	ws.SelectTargetAt(470, 10)
	_, ok = ws.ManualTarget()
	assert.False(t, ok, "click far from any enemy clears the pin")
}
