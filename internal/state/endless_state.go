// internal/state/endless_state.go
package state

import (
	"line-defense/internal/config"
	"line-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*EndlessState)(nil)

// EndlessState спрашивает после финальной волны, продолжать ли бесконечный режим.
type EndlessState struct {
	sm     *StateMachine
	battle *BattleState
}

func NewEndlessState(sm *StateMachine, battle *BattleState) *EndlessState {
	return &EndlessState{sm: sm, battle: battle}
}

func (s *EndlessState) Enter() {}

func (s *EndlessState) Update(deltaTime float64) {
	game := s.battle.Game()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		game.DecideEndless(true)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		game.DecideEndless(false)
	}

	s.battle.Tick(deltaTime)
	if screenFor(game.Phase()) != screenEndless {
		s.sm.SetState(s.battle)
		s.battle.route()
	}
}

func (s *EndlessState) Draw(screen *ebiten.Image) {
	s.battle.Draw(screen)
	dim(screen)

	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	drawTitle(screen, "FINAL WAVE CLEARED", cx, cy-60)
	drawLine(screen, s.battle.hud.Text(interfaces.FieldWaveLabel), cx, cy-30)
	drawLine(screen, "Y - continue in endless mode", cx, cy)
	drawLine(screen, "N - take the victory", cx, cy+20)
}

func (s *EndlessState) Exit() {}
