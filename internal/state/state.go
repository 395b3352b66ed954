// internal/state/state.go
package state

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями.
// Состояние, которое не может продолжить, сообщает ошибку через Fail,
// и цикл ebiten завершается с ней.
type StateMachine struct {
	current State
	err     error
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	slog.Debug("state change", "from", fmt.Sprintf("%T", sm.current), "to", fmt.Sprintf("%T", newState))
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Fail stops the machine with err. The first error wins.
func (sm *StateMachine) Fail(err error) {
	if sm.err == nil {
		sm.err = err
	}
}

func (sm *StateMachine) Err() error { return sm.err }

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.err != nil {
		return sm.err
	}
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	return sm.err
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
