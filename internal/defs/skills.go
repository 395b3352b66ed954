// internal/defs/skills.go
package defs

import (
	"fmt"
	"math"
)

// CooldownCurve — кулдаун в зависимости от уровня: max(Floor, Init - level*Step).
type CooldownCurve struct {
	Floor float64 `yaml:"floor"`
	Init  float64 `yaml:"init"`
	Step  float64 `yaml:"step"`
}

// At returns the base cooldown for the given skill level.
func (c CooldownCurve) At(level int) float64 {
	return math.Max(c.Floor, c.Init-float64(level)*c.Step)
}

// SkillDefinition holds the static data of one draftable skill or upgrade branch.
type SkillDefinition struct {
	Key           SkillKey
	Name          string
	Desc          string
	Category      SkillCategory
	Weight        float64
	MaxLevel      int
	Priority      int
	DamageType    DamageType
	Requires      SkillID
	RequiresLevel int
	Cooldown      *CooldownCurve
}

// IsMain reports whether the definition is a main skill rather than a branch.
func (d SkillDefinition) IsMain() bool { return !d.Key.IsUpgrade() }

// Parent returns the dependency of the definition, if any.
// Branches depend on their main skill at level 1.
func (d SkillDefinition) Parent() (SkillID, int, bool) {
	if d.Key.IsUpgrade() {
		return d.Key.Main, 1, true
	}
	if d.Requires == "" {
		return "", 0, false
	}
	lvl := d.RequiresLevel
	if lvl <= 0 {
		lvl = 1
	}
	return d.Requires, lvl, true
}

var upgradeTitles = map[UpgradeKind]string{
	UpgradeDamage:   "Damage Up",
	UpgradeCooldown: "Cooldown Down",
	UpgradeCount:    "More Count",
	UpgradeRadius:   "Wider Area",
	UpgradeDuration: "Longer Duration",
}

func upgradeDesc(mainName string, kind UpgradeKind) string {
	switch kind {
	case UpgradeDamage:
		return fmt.Sprintf("%s damage +20%% per level.", mainName)
	case UpgradeCooldown:
		return fmt.Sprintf("%s cooldown -10%% per level (down to 40%%).", mainName)
	case UpgradeCount:
		return fmt.Sprintf("%s fires one more projectile, beam or trigger per level.", mainName)
	case UpgradeRadius:
		return fmt.Sprintf("%s radius or width +12%% per level.", mainName)
	case UpgradeDuration:
		return fmt.Sprintf("%s duration +15%% per level.", mainName)
	}
	return mainName
}
