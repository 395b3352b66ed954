// internal/component/player.go
package component

import "line-defense/internal/config"

// Player — неподвижный стрелок у линии обороны.
type Player struct {
	Position
	Range          float64
	FireInterval   float64
	Damage         float64
	CritChance     float64
	CritDamageMult float64
	FireCooldown   float64
}

// NewPlayer creates the player with base weapon stats.
func NewPlayer() *Player {
	return &Player{
		Position:       Position{X: config.PlayerX, Y: config.PlayerY},
		Range:          config.PlayerRange,
		FireInterval:   config.PlayerFireInterval,
		Damage:         config.PlayerDamage,
		CritChance:     config.PlayerCritChance,
		CritDamageMult: config.PlayerCritDamageMult,
	}
}

// Update counts the fire cooldown down.
func (p *Player) Update(dt float64) {
	p.FireCooldown = max(0, p.FireCooldown-dt)
}

func (p *Player) CanFire() bool { return p.FireCooldown <= 0 }

func (p *Player) ConsumeFire() { p.FireCooldown = p.FireInterval }

// PlayerStateComponent хранит уровень и опыт игрока.
type PlayerStateComponent struct {
	Level           int
	CurrentXP       int
	XPToNextLevel   int
	PendingLevelUps int
}
