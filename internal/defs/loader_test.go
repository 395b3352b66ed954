package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary()
	require.NoError(t, err)

	walker := lib.Enemy(KindWalker)
	assert.Equal(t, 10.0, walker.HP)
	assert.Equal(t, 28.0, walker.Speed)
	assert.Equal(t, AttackMelee, walker.AttackMode)
	assert.Equal(t, 3, walker.Exp)
	assert.Equal(t, uint32(0x86ff7a), walker.Color)

	spitter := lib.Enemy(KindSpitter)
	assert.Equal(t, AttackRanged, spitter.AttackMode)
	assert.Equal(t, 90.0, spitter.StopDistance)
	assert.Equal(t, 140.0, spitter.ShotSpeed)

	assert.True(t, lib.Enemy(KindBoss).Boss)
	assert.True(t, lib.Enemy(KindFinalBoss).Boss)
	assert.False(t, lib.Enemy(KindBrute).Boss)
}

func TestActiveSkillsHaveFiveBranches(t *testing.T) {
	lib := MustLoadLibrary()
	for _, id := range ActiveSkills {
		for _, kind := range StandardUpgrades {
			_, ok := lib.Skills[Branch(id, kind)]
			assert.True(t, ok, "%s/%s", id, kind)
		}
	}
	_, ok := lib.Skills[Branch(SkillBulletSpread, UpgradeDamage)]
	assert.False(t, ok, "bullet spread has no branches")
}

func TestSkillOverrides(t *testing.T) {
	lib := MustLoadLibrary()

	count := lib.Skill(Branch(SkillThermobaric, UpgradeCount))
	assert.Equal(t, 999, count.MaxLevel)
	assert.Equal(t, 1.2, count.Weight)

	assert.Equal(t, 0, lib.Skill(Branch(SkillAurora, UpgradeCount)).MaxLevel)
	assert.Equal(t, 0, lib.Skill(Branch(SkillChainElectron, UpgradeDuration)).MaxLevel)
	assert.Equal(t, 5, lib.Skill(Branch(SkillAurora, UpgradeDamage)).MaxLevel)
	assert.Equal(t, 0.6, lib.Skill(Branch(SkillAurora, UpgradeDamage)).Weight)

	chain := lib.Skill(Branch(SkillEmpPierce, UpgradeChain))
	assert.Equal(t, 1, chain.MaxLevel)
	assert.Equal(t, CategoryUpgrade, chain.Category)
	assert.Equal(t, DamageElectric, chain.DamageType)
}

func TestCooldownCurve(t *testing.T) {
	lib := MustLoadLibrary()
	aurora := lib.Skill(Main(SkillAurora)).Cooldown
	require.NotNil(t, aurora)

	assert.InDelta(t, 4.2-0.35, aurora.At(1), 1e-9)
	assert.InDelta(t, 1.2, aurora.At(20), 1e-9, "floored")

	for _, id := range ActiveSkills {
		c := lib.Skill(Main(id)).Cooldown
		require.NotNil(t, c, id)
		prev := c.At(0)
		for lv := 1; lv <= 30; lv++ {
			cur := c.At(lv)
			assert.LessOrEqual(t, cur, prev)
			assert.GreaterOrEqual(t, cur, c.Floor)
			prev = cur
		}
	}
}

func TestParents(t *testing.T) {
	lib := MustLoadLibrary()

	p, lvl, ok := lib.Skill(Main(SkillWeaponSplit4)).Parent()
	assert.True(t, ok)
	assert.Equal(t, SkillWeaponSplit2, p)
	assert.Equal(t, 1, lvl)

	p, lvl, ok = lib.Skill(Branch(SkillNapalm, UpgradeRadius)).Parent()
	assert.True(t, ok)
	assert.Equal(t, SkillNapalm, p)
	assert.Equal(t, 1, lvl)

	_, _, ok = lib.Skill(Main(SkillAurora)).Parent()
	assert.False(t, ok)
}

func TestSkillOrderIsByPriority(t *testing.T) {
	lib := MustLoadLibrary()
	order := lib.SkillOrder()
	require.Len(t, order, len(lib.Skills))
	assert.Equal(t, Main(SkillBulletSpread), order[0])
	for i := 1; i < len(order); i++ {
		assert.LessOrEqual(t, lib.Skills[order[i-1]].Priority, lib.Skills[order[i]].Priority)
	}
}

func TestParseEnemiesRejectsInvalidRows(t *testing.T) {
	_, err := ParseEnemies([]byte("- kind: ghost\n  hp: 0\n  size: 1\n"))
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = ParseEnemies([]byte("- kind: a\n  hp: 1\n  size: 1\n- kind: a\n  hp: 1\n  size: 1\n"))
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = ParseEnemies([]byte("not: [valid"))
	assert.Error(t, err)
}

func TestParseSkillsUnknownOverride(t *testing.T) {
	_, err := ParseSkills([]byte("upgrades:\n  - {main: nope, kind: damage}\n"))
	assert.ErrorIs(t, err, ErrUnknownSkill)
}

func TestElementProfileMultiplier(t *testing.T) {
	p := ElementProfile{
		Resistances: map[DamageType]float64{DamageFire: 0.5},
		Weaknesses:  map[DamageType]float64{DamageFire: 0.5, DamageIce: 0.25},
	}
	assert.InDelta(t, 0.75, p.Multiplier(DamageFire), 1e-9)
	assert.InDelta(t, 1.25, p.Multiplier(DamageIce), 1e-9)
	assert.InDelta(t, 1.0, p.Multiplier(DamagePhysical), 1e-9)
	assert.InDelta(t, 1.0, ElementProfile{}.Multiplier(DamageWind), 1e-9)
}
