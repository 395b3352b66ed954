// internal/system/state.go
package system

import (
	"line-defense/internal/component"
	"line-defense/internal/entity"
	"line-defense/internal/event"
	"log/slog"
)

// StateSystem ведёт фазы забега: бой, выбор улучшения, вопрос о бесконечном
// режиме, поражение и победа.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.LevelUpReady, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.LevelUpReady {
		s.RequestChoice()
	}
}

// RequestChoice enters the level-up phase when the run is in battle and a
// choice is queued. It reports whether the phase changed.
func (s *StateSystem) RequestChoice() bool {
	if s.Current() != component.PhaseRunning || s.ecs.PlayerState.PendingLevelUps <= 0 {
		return false
	}
	s.ecs.Run.Phase = component.PhaseLevelUp
	return true
}

// Update ends the run in defeat once the defense line falls.
// Defeat wins over any pending choice raised in the same tick.
func (s *StateSystem) Update(float64) {
	if s.Current().Over() {
		return
	}
	if s.ecs.Run.DefenseHP <= 0 {
		s.end(component.PhaseDefeat)
	}
}

// ResumeAfterChoice returns to battle, or stays in the level-up phase while
// more choices are queued.
func (s *StateSystem) ResumeAfterChoice() {
	if s.Current() != component.PhaseLevelUp {
		return
	}
	if s.ecs.PlayerState.PendingLevelUps > 0 {
		return
	}
	s.ecs.Run.Phase = component.PhaseRunning
}

// DeclineEndless ends the run as a victory.
func (s *StateSystem) DeclineEndless() {
	if s.Current() == component.PhaseEndlessPrompt {
		s.end(component.PhaseVictory)
	}
}

func (s *StateSystem) Current() component.RunPhase {
	return s.ecs.Run.Phase
}

func (s *StateSystem) end(phase component.RunPhase) {
	run := s.ecs.Run
	run.Phase = phase
	data := event.RunEndedData{
		Victory:   phase == component.PhaseVictory,
		Wave:      run.Wave,
		Killed:    run.Killed,
		TimeAlive: run.TimeAlive,
	}
	slog.Info("run ended", "victory", data.Victory, "wave", data.Wave, "killed", data.Killed, "time", data.TimeAlive)
	s.eventDispatcher.Dispatch(event.Event{Type: event.RunEnded, Data: data})
}
