// internal/event/types.go
package event

import (
	"line-defense/internal/defs"
	"line-defense/internal/types"
)

const (
	EnemySpawned   EventType = "EnemySpawned"   // Враг появился
	EnemyKilled    EventType = "EnemyKilled"    // Враг убит, Data: EnemyKilledData
	DamageDealt    EventType = "DamageDealt"    // Урон нанесён, Data: DamageData
	DefenseDamaged EventType = "DefenseDamaged" // Урон по линии обороны, Data: float64
	WaveStarted    EventType = "WaveStarted"    // Data: int (номер волны)
	WaveCleared    EventType = "WaveCleared"    // Квота волны выпущена, Data: int
	BossSpawned    EventType = "BossSpawned"    // Data: defs.EnemyKind
	LevelUpReady   EventType = "LevelUpReady"   // Нужно выбрать улучшение
	SkillLeveled   EventType = "SkillLeveled"   // Data: defs.SkillKey
	SkillCast      EventType = "SkillCast"      // Data: defs.SkillID
	ShotFired      EventType = "ShotFired"
	EndlessPrompt  EventType = "EndlessPrompt"  // Финальная волна пройдена
	RunEnded       EventType = "RunEnded"       // Data: RunEndedData
)

// EnemyKilledData — payload of EnemyKilled.
type EnemyKilledData struct {
	ID   types.EntityID
	Kind defs.EnemyKind
	Exp  int
	X, Y float64
}

// DamageData — payload of DamageDealt.
type DamageData struct {
	Target types.EntityID
	Source string
	Amount float64
	Crit   bool
}

// RunEndedData — payload of RunEnded.
type RunEndedData struct {
	Victory   bool
	Wave      int
	Killed    int
	TimeAlive float64
}
