// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific kind of enemy.
type EnemyDefinition struct {
	Kind           EnemyKind              `yaml:"kind"`
	Name           string                 `yaml:"name"`
	Color          uint32                 `yaml:"color"`
	HP             float64                `yaml:"hp"`
	Speed          float64                `yaml:"speed"`
	AttackMode     AttackMode             `yaml:"attack_mode"`
	AttackDamage   float64                `yaml:"attack_damage"`
	AttackInterval float64                `yaml:"attack_interval"`
	StopDistance   float64                `yaml:"stop_distance"`
	ShotSpeed      float64                `yaml:"shot_speed"`
	Exp            int                    `yaml:"exp"`
	Size           float64                `yaml:"size"`
	Boss           bool                   `yaml:"boss"`
	Resistances    map[DamageType]float64 `yaml:"resistances"`
	Weaknesses     map[DamageType]float64 `yaml:"weaknesses"`
}

// Elements returns the resistance/weakness profile of the kind.
func (d EnemyDefinition) Elements() ElementProfile {
	return ElementProfile{Resistances: d.Resistances, Weaknesses: d.Weaknesses}
}

// ElementProfile — сопротивления и уязвимости цели по стихиям.
type ElementProfile struct {
	Resistances map[DamageType]float64
	Weaknesses  map[DamageType]float64
}

// Multiplier returns (1-resistance)*(1+weakness) for the damage type.
func (p ElementProfile) Multiplier(t DamageType) float64 {
	mult := 1.0
	if r, ok := p.Resistances[t]; ok {
		mult *= 1 - r
	}
	if w, ok := p.Weaknesses[t]; ok {
		mult *= 1 + w
	}
	return mult
}
