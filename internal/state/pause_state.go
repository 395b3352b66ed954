// internal/state/pause_state.go
package state

import (
	"line-defense/internal/config"
	"line-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает предыдущее состояние: оно рисуется, но не обновляется.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	audio         interfaces.Audio
}

func NewPauseState(sm *StateMachine, prevState State, audio interfaces.Audio) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		audio:         audio,
	}
}

func (s *PauseState) Enter() {
	s.audio.StopLoop()
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	dim(screen)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	drawTitle(screen, "PAUSED", cx, cy-20)
	drawLine(screen, "F9 / ESC - resume", cx, cy+4)
}

func (s *PauseState) Exit() {
	s.audio.StartLoop()
}
