// internal/interfaces/game.go
package interfaces

import (
	"line-defense/internal/component"
	"line-defense/internal/defs"
)

// Game — то, что состояния экрана и симулятор видят от забега.
// Числа для HUD приходят через HUD-синк, здесь только управление.
type Game interface {
	Update(deltaTime float64)
	Phase() component.RunPhase
	Choices() []defs.SkillDefinition
	ChooseSkill(i int) error
	DecideEndless(cont bool)
	SelectTargetAt(x, y float64)
}
