package system

import (
	"testing"

	"line-defense/internal/defs"
	"line-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftNeverOffersLockedBranches(t *testing.T) {
	p := newProgression(t)
	pool := NewDraftPool(p, utils.NewPRNGService(7), 4)

	for i := 0; i < 200; i++ {
		for _, def := range pool.Pick3Distinct() {
			if parent, need, ok := def.Parent(); ok {
				assert.GreaterOrEqual(t, p.LevelOf(parent), need, "offered %s", def.Key)
			}
		}
	}
}

func TestDraftPicksAreDistinct(t *testing.T) {
	p := newProgression(t)
	pool := NewDraftPool(p, utils.NewPRNGService(11), 4)

	for i := 0; i < 100; i++ {
		picks := pool.Pick3Distinct()
		require.Len(t, picks, 3)
		seen := map[defs.SkillKey]bool{}
		for _, def := range picks {
			assert.False(t, seen[def.Key], "duplicate %s", def.Key)
			seen[def.Key] = true
		}
	}
}

func TestDraftCapStopsNewActives(t *testing.T) {
	p := newProgression(t)
	for _, id := range []defs.SkillID{defs.SkillAurora, defs.SkillNapalm, defs.SkillTornado, defs.SkillIceStorm} {
		p.LevelUp(defs.Main(id))
	}
	pool := NewDraftPool(p, utils.NewPRNGService(3), 4)

	keys := map[defs.SkillKey]bool{}
	for _, def := range pool.Candidates() {
		keys[def.Key] = true
		if def.IsMain() {
			assert.NotEqual(t, defs.CategoryActive, def.Category, "new active %s offered", def.Key)
			if def.Category != defs.CategoryPassive {
				assert.Equal(t, defs.Main(defs.SkillBulletSpread), def.Key)
			}
		}
	}
	assert.True(t, keys[defs.Main(defs.SkillBulletSpread)])
	assert.True(t, keys[defs.Main(defs.SkillWeaponPierce)])
	assert.True(t, keys[defs.Branch(defs.SkillAurora, defs.UpgradeDamage)])
}

func TestDraftFillsWithReplacement(t *testing.T) {
	p := newProgression(t)
	// Выкачиваем всё, кроме одного варианта.
	lib := p.Library()
	for _, key := range lib.SkillOrder() {
		def := lib.Skill(key)
		if key == defs.Main(defs.SkillWeaponPierce) {
			continue
		}
		p.levels[key] = max(def.MaxLevel, 1)
	}

	pool := NewDraftPool(p, utils.NewPRNGService(5), 99)
	picks := pool.Pick3Distinct()
	require.Len(t, picks, 3)
	for _, def := range picks {
		assert.Equal(t, defs.Main(defs.SkillWeaponPierce), def.Key)
	}
}

func TestDraftEmptyPool(t *testing.T) {
	p := newProgression(t)
	lib := p.Library()
	for _, key := range lib.SkillOrder() {
		p.levels[key] = max(lib.Skill(key).MaxLevel, 1)
	}
	pool := NewDraftPool(p, utils.NewPRNGService(5), 4)
	assert.Empty(t, pool.Pick3Distinct())
}
