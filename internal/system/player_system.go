// internal/system/player_system.go
package system

import (
	"line-defense/internal/config"
	"line-defense/internal/entity"
	"line-defense/internal/event"
	"log/slog"
)

// PlayerSystem отвечает за опыт игрока и очередь повышений уровня.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if data, ok := e.Data.(event.EnemyKilledData); ok {
		s.GainXP(data.Exp)
	}
}

// GainXP adds experience. Every threshold crossed queues one level-up choice,
// so a single big kill may grant several.
func (s *PlayerSystem) GainXP(amount int) int {
	ps := s.ecs.PlayerState
	ps.CurrentXP += amount
	gained := 0
	for ps.CurrentXP >= ps.XPToNextLevel {
		ps.CurrentXP -= ps.XPToNextLevel
		ps.Level++
		ps.XPToNextLevel = config.CalculateXPForNextLevel(ps.Level)
		ps.PendingLevelUps++
		gained++
	}
	if gained > 0 {
		slog.Debug("level up", "level", ps.Level, "pending", ps.PendingLevelUps)
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUpReady, Data: ps.PendingLevelUps})
	}
	return gained
}

// ConsumeLevelUp takes one queued level-up and reports whether there was any.
func (s *PlayerSystem) ConsumeLevelUp() bool {
	ps := s.ecs.PlayerState
	if ps.PendingLevelUps <= 0 {
		return false
	}
	ps.PendingLevelUps--
	return true
}
