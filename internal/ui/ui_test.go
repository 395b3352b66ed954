package ui

import (
	"testing"

	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHUDStore(t *testing.T) {
	h := NewHUDStore()
	h.SetNumber(interfaces.FieldLevel, 3)
	h.SetText(interfaces.FieldWaveLabel, "Wave 2/20")

	entries := []interfaces.DamageEntry{{Source: "main_weapon", Amount: 10, Share: 1}}
	h.SetDamageBreakdown(entries)
	entries[0].Amount = 99

	assert.Equal(t, 3, h.Int(interfaces.FieldLevel))
	assert.Equal(t, "Wave 2/20", h.Text(interfaces.FieldWaveLabel))
	require.Len(t, h.Breakdown(), 1)
	assert.Equal(t, 10.0, h.Breakdown()[0].Amount, "store keeps its own copy")
	assert.Zero(t, h.Number("missing"))
}

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 10: "X", 14: "XIV", 20: "XX", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), n)
	}
}

func TestBossWaves(t *testing.T) {
	assert.True(t, IsBossWave(10))
	assert.True(t, IsBossWave(20))
	assert.False(t, IsBossWave(11))
}

func TestXPRatio(t *testing.T) {
	assert.Equal(t, 0.5, XPRatio(5, 10))
	assert.Equal(t, 1.0, XPRatio(30, 10))
	assert.Zero(t, XPRatio(5, 0))
}

func TestHealthColor(t *testing.T) {
	assert.Equal(t, healthHighColor, HealthColor(1500, 2000))
	assert.Equal(t, healthLowColor, HealthColor(1000, 2000))
	assert.Equal(t, healthLowColor, HealthColor(0, 0))
}

func TestChoiceCardsHitTest(t *testing.T) {
	c := NewChoiceCards()
	r := c.Rect(1)
	assert.Equal(t, 1, c.HitTest(r.Min.X+5, r.Min.Y+5, 3))
	assert.Equal(t, -1, c.HitTest(r.Min.X+5, r.Min.Y+5, 1), "only one card shown")
	assert.Equal(t, -1, c.HitTest(0, 0, 3))
	assert.Equal(t, (config.ScreenWidth-cardWidth)/2, c.Rect(0).Min.X)
}

func TestCardSubtitle(t *testing.T) {
	main := defs.SkillDefinition{Key: defs.Main(defs.SkillAurora), Category: defs.CategoryActive, MaxLevel: 5}
	assert.Equal(t, "[active] NEW", CardSubtitle(main, 0))
	assert.Equal(t, "[active] Lv 2 -> 3 / 5", CardSubtitle(main, 2))

	branch := defs.SkillDefinition{Key: defs.Branch(defs.SkillAurora, defs.UpgradeDamage), Category: defs.CategoryUpgrade, MaxLevel: 5}
	assert.Equal(t, "[upgrade of aurora] Lv 0 -> 1 / 5", CardSubtitle(branch, 0))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, Wrap("one two three", 8))
	assert.Equal(t, []string{"verylongword"}, Wrap("verylongword", 4))
	assert.Nil(t, Wrap("", 10))
}

func TestInfoPanelSlides(t *testing.T) {
	p := NewInfoPanel()
	assert.False(t, p.IsVisible)

	p.Toggle()
	assert.True(t, p.IsVisible)
	for i := 0; i < 100; i++ {
		p.Update()
	}
	assert.Equal(t, float64(config.ScreenWidth-panelWidth-panelMargin), p.currentX)

	p.Toggle()
	for i := 0; i < 100; i++ {
		p.Update()
	}
	assert.False(t, p.IsVisible)
}

func TestWeaponLines(t *testing.T) {
	h := NewHUDStore()
	h.SetNumber(interfaces.FieldWeaponDamage, 6)
	h.SetNumber(interfaces.FieldWeaponSplit, 4)
	h.SetNumber(interfaces.FieldWeaponCrit, 0.05)

	lines := WeaponLines(h)
	assert.Contains(t, lines, "Damage   6.0")
	assert.Contains(t, lines, "Split    x4")
	assert.Contains(t, lines, "Crit     5%")
}

func TestBreakdownLines(t *testing.T) {
	entries := []interfaces.DamageEntry{
		{Source: "main_weapon", Amount: 300, Share: 0.75},
		{Source: "Aurora", Amount: 100, Share: 0.25},
	}
	lines := BreakdownLines(entries, 1)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "main_weapon")
	assert.Contains(t, lines[0], "75%")
}
