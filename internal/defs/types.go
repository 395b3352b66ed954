// internal/defs/types.go
package defs

// DamageType — стихия урона.
type DamageType string

const (
	DamageWind     DamageType = "wind"
	DamageFire     DamageType = "fire"
	DamageElectric DamageType = "electric"
	DamageEnergy   DamageType = "energy"
	DamageIce      DamageType = "ice"
	DamagePhysical DamageType = "physical"
)

// AllDamageTypes lists the element set in a stable order.
var AllDamageTypes = []DamageType{DamageWind, DamageFire, DamageElectric, DamageEnergy, DamageIce, DamagePhysical}

// EnemyKind identifies a row of the enemy table.
type EnemyKind string

const (
	KindWalker    EnemyKind = "walker"
	KindBrute     EnemyKind = "brute"
	KindSpitter   EnemyKind = "spitter"
	KindBoss      EnemyKind = "boss"
	KindFinalBoss EnemyKind = "final_boss"

	KindWindResistant     EnemyKind = "wind_resistant"
	KindFireResistant     EnemyKind = "fire_resistant"
	KindElectricResistant EnemyKind = "electric_resistant"
	KindEnergyResistant   EnemyKind = "energy_resistant"
	KindIceResistant      EnemyKind = "ice_resistant"
	KindPhysicalResistant EnemyKind = "physical_resistant"
)

// ResistantKinds — элементальные варианты, выбираемые равновероятно.
var ResistantKinds = []EnemyKind{
	KindWindResistant, KindFireResistant, KindElectricResistant,
	KindEnergyResistant, KindIceResistant, KindPhysicalResistant,
}

// AttackMode — ближний или дальний бой.
type AttackMode string

const (
	AttackMelee  AttackMode = "melee"
	AttackRanged AttackMode = "ranged"
)

// SkillID names a main skill: the weapon spread, an active skill, a weapon passive or a talent.
type SkillID string

const (
	SkillBulletSpread SkillID = "bullet_spread"

	SkillAurora        SkillID = "aurora"
	SkillTornado       SkillID = "tornado"
	SkillThermobaric   SkillID = "thermobaric"
	SkillNapalm        SkillID = "napalm"
	SkillIcePierce     SkillID = "ice_pierce"
	SkillHighEnergyRay SkillID = "high_energy_ray"
	SkillGuidedLaser   SkillID = "guided_laser"
	SkillArmoredCar    SkillID = "armored_car"
	SkillMiniVortex    SkillID = "mini_vortex"
	SkillAirBlast      SkillID = "air_blast"
	SkillCarpetBomb    SkillID = "carpet_bomb"
	SkillIceStorm      SkillID = "ice_storm"
	SkillEmpPierce     SkillID = "emp_pierce"
	SkillChainElectron SkillID = "chain_electron"

	SkillWeaponRapidFire SkillID = "weapon_rapid_fire"
	SkillWeaponFireRate  SkillID = "weapon_fire_rate"
	SkillWeaponDamage    SkillID = "weapon_damage"
	SkillWeaponPierce    SkillID = "weapon_pierce"
	SkillWeaponSplit2    SkillID = "weapon_split_2"
	SkillWeaponSplit4    SkillID = "weapon_split_4"

	SkillTalentTeleport    SkillID = "talent_teleport"
	SkillTalentInstakill   SkillID = "talent_instakill"
	SkillTalentCritEnhance SkillID = "talent_crit_enhance"
)

// ActiveSkills — 14 скиллов с кулдауном, в порядке обхода каждый тик.
var ActiveSkills = []SkillID{
	SkillAurora, SkillTornado, SkillThermobaric, SkillNapalm, SkillIcePierce,
	SkillHighEnergyRay, SkillGuidedLaser, SkillArmoredCar, SkillMiniVortex,
	SkillAirBlast, SkillCarpetBomb, SkillIceStorm, SkillEmpPierce, SkillChainElectron,
}

// UpgradeKind — ось ветки улучшения.
type UpgradeKind string

const (
	UpgradeNone     UpgradeKind = ""
	UpgradeDamage   UpgradeKind = "damage"
	UpgradeCooldown UpgradeKind = "cooldown"
	UpgradeCount    UpgradeKind = "count"
	UpgradeRadius   UpgradeKind = "radius"
	UpgradeDuration UpgradeKind = "duration"

	// EMP specials, flags of level 1.
	UpgradeExtra1         UpgradeKind = "extra_1"
	UpgradeExtra2         UpgradeKind = "extra_2"
	UpgradeElectricDamage UpgradeKind = "electric_damage"
	UpgradeExplosion      UpgradeKind = "explosion"
	UpgradeChain          UpgradeKind = "chain"
)

// StandardUpgrades — пять числовых осей, которые есть у каждого основного скилла.
var StandardUpgrades = []UpgradeKind{UpgradeDamage, UpgradeCooldown, UpgradeCount, UpgradeRadius, UpgradeDuration}

// SkillKey is the composite identifier of any skill definition.
// A zero Upgrade denotes the main skill itself.
type SkillKey struct {
	Main    SkillID
	Upgrade UpgradeKind
}

// Main returns the key of a main skill.
func Main(id SkillID) SkillKey { return SkillKey{Main: id} }

// Branch returns the key of an upgrade branch.
func Branch(id SkillID, kind UpgradeKind) SkillKey { return SkillKey{Main: id, Upgrade: kind} }

// IsUpgrade reports whether the key denotes a branch.
func (k SkillKey) IsUpgrade() bool { return k.Upgrade != UpgradeNone }

func (k SkillKey) String() string {
	if k.Upgrade == UpgradeNone {
		return string(k.Main)
	}
	return string(k.Main) + "/" + string(k.Upgrade)
}

// SkillCategory groups skills for the draft cap.
type SkillCategory string

const (
	CategoryWeapon  SkillCategory = "weapon"  // bullet spread
	CategoryActive  SkillCategory = "active"  // cooldown-driven skills, capped
	CategoryPassive SkillCategory = "passive" // weapon passives and talents
	CategoryUpgrade SkillCategory = "upgrade"
)
