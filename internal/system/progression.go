// internal/system/progression.go
package system

import (
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"math"
)

// Шаги множителей веток улучшений.
const (
	damagePerBranch   = 0.20
	cooldownPerBranch = 0.10
	cooldownFloor     = 0.40
	radiusPerBranch   = 0.12
	durationPerBranch = 0.15
)

// ProgressionSystem хранит уровни скиллов и выводит из них числовые множители.
type ProgressionSystem struct {
	lib    *defs.Library
	levels map[defs.SkillKey]int
}

func NewProgressionSystem(lib *defs.Library) *ProgressionSystem {
	return &ProgressionSystem{lib: lib, levels: make(map[defs.SkillKey]int)}
}

func (p *ProgressionSystem) Library() *defs.Library { return p.lib }

// Level returns the current level of a main skill or branch; 0 means locked.
func (p *ProgressionSystem) Level(key defs.SkillKey) int {
	return p.levels[key]
}

// LevelOf is Level for a main skill.
func (p *ProgressionSystem) LevelOf(id defs.SkillID) int {
	return p.levels[defs.Main(id)]
}

// LevelUp raises the level by one. It is a no-op at max level and reports whether it changed anything.
func (p *ProgressionSystem) LevelUp(key defs.SkillKey) bool {
	def := p.lib.Skill(key)
	if p.levels[key] >= def.MaxLevel {
		return false
	}
	p.levels[key]++
	return true
}

// Eligible reports whether def may be offered in a draft.
func (p *ProgressionSystem) Eligible(def defs.SkillDefinition) bool {
	if p.levels[def.Key] >= def.MaxLevel {
		return false
	}
	if parent, need, ok := def.Parent(); ok && p.LevelOf(parent) < need {
		return false
	}
	return true
}

// ActiveCount counts unlocked active skills. Weapon spread and passives do not count.
func (p *ProgressionSystem) ActiveCount() int {
	n := 0
	for _, id := range defs.ActiveSkills {
		if p.LevelOf(id) > 0 {
			n++
		}
	}
	return n
}

// UnlockedActives returns unlocked actives in tick order.
func (p *ProgressionSystem) UnlockedActives() []defs.SkillID {
	var out []defs.SkillID
	for _, id := range defs.ActiveSkills {
		if p.LevelOf(id) > 0 {
			out = append(out, id)
		}
	}
	return out
}

func (p *ProgressionSystem) branch(id defs.SkillID, kind defs.UpgradeKind) int {
	return p.levels[defs.Branch(id, kind)]
}

// Has reports whether a flag-like branch (EMP specials) is taken.
func (p *ProgressionSystem) Has(id defs.SkillID, kind defs.UpgradeKind) bool {
	return p.branch(id, kind) > 0
}

func (p *ProgressionSystem) DamageMult(id defs.SkillID) float64 {
	return 1 + float64(p.branch(id, defs.UpgradeDamage))*damagePerBranch
}

func (p *ProgressionSystem) CooldownMult(id defs.SkillID) float64 {
	return math.Max(cooldownFloor, 1-float64(p.branch(id, defs.UpgradeCooldown))*cooldownPerBranch)
}

func (p *ProgressionSystem) CountBonus(id defs.SkillID) int {
	return p.branch(id, defs.UpgradeCount)
}

func (p *ProgressionSystem) RadiusMult(id defs.SkillID) float64 {
	return 1 + float64(p.branch(id, defs.UpgradeRadius))*radiusPerBranch
}

func (p *ProgressionSystem) DurationMult(id defs.SkillID) float64 {
	return 1 + float64(p.branch(id, defs.UpgradeDuration))*durationPerBranch
}

// BaseCooldown is the level curve of an active skill before the cooldown branch.
func (p *ProgressionSystem) BaseCooldown(id defs.SkillID, lv int) float64 {
	def := p.lib.Skill(defs.Main(id))
	if def.Cooldown == nil {
		return 6
	}
	return def.Cooldown.At(lv)
}

// Cooldown is the full cooldown after a cast.
func (p *ProgressionSystem) Cooldown(id defs.SkillID, lv int) float64 {
	return p.BaseCooldown(id, lv) * p.CooldownMult(id)
}

// WeaponStats — производные характеристики основного оружия.
type WeaponStats struct {
	Bullets     int
	SpreadAngle float64
	Burst       int
	Interval    float64
	Damage      float64
	Pierce      int
	Split2      int
	Split4      int
}

// Weapon derives the weapon from the spread skill and weapon passives.
func (p *ProgressionSystem) Weapon(baseDamage float64) WeaponStats {
	spread := p.LevelOf(defs.SkillBulletSpread)
	angle := 0.0
	switch {
	case spread >= 2:
		angle = 0.42
	case spread == 1:
		angle = 0.28
	}
	return WeaponStats{
		Bullets:     1 + spread,
		SpreadAngle: angle,
		Burst:       1 + p.LevelOf(defs.SkillWeaponRapidFire),
		Interval:    config.PlayerFireInterval / (1 + 0.1*float64(p.LevelOf(defs.SkillWeaponFireRate))),
		Damage:      baseDamage * (1 + 0.2*float64(p.LevelOf(defs.SkillWeaponDamage))),
		Pierce:      1 + p.LevelOf(defs.SkillWeaponPierce),
		Split2:      p.LevelOf(defs.SkillWeaponSplit2),
		Split4:      p.LevelOf(defs.SkillWeaponSplit4),
	}
}
