// internal/component/combat.go
package component

import "line-defense/internal/defs"

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Attack — атака врага по линии обороны.
type Attack struct {
	Mode         defs.AttackMode
	Damage       float64
	Interval     float64
	Cooldown     float64
	StopDistance float64
	ShotSpeed    float64
	Attacking    bool // достиг линии остановки; обратно не переключается
}

// StopLine returns the y at which the enemy stops and starts attacking.
func (a Attack) StopLine(defenseLineY float64) float64 {
	if a.Mode == defs.AttackRanged {
		return defenseLineY - max(0, a.StopDistance)
	}
	return defenseLineY
}
