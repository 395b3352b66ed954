// internal/state/run_over_state.go
package state

import (
	"fmt"
	"image"
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/interfaces"
	"line-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*RunOverState)(nil)

// RunOverState — экран победы или поражения с итогами забега.
type RunOverState struct {
	sm       *StateMachine
	battle   *BattleState
	newRun   *ui.Button
	backMenu *ui.Button
}

func NewRunOverState(sm *StateMachine, battle *BattleState) *RunOverState {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &RunOverState{
		sm:       sm,
		battle:   battle,
		newRun:   ui.NewButton(image.Rect(cx-80, cy+50, cx+80, cy+84), "New run (Enter)"),
		backMenu: ui.NewButton(image.Rect(cx-80, cy+94, cx+80, cy+128), "Menu (M)"),
	}
}

func (s *RunOverState) Enter() {}

func (s *RunOverState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || (clicked && s.newRun.Contains(x, y)):
		if err := s.battle.Restart(); err != nil {
			s.sm.Fail(err)
			return
		}
		s.sm.SetState(s.battle)
	case inpututil.IsKeyJustPressed(ebiten.KeyM) || (clicked && s.backMenu.Contains(x, y)):
		s.sm.SetState(NewMenuState(s.sm, s.battle.env))
	default:
		s.battle.Tick(deltaTime)
	}
}

// Summary — итоговые строки забега.
func Summary(run *component.RunState, label string) []string {
	return []string{
		label,
		fmt.Sprintf("Kills %d", run.Killed),
		"Time " + formatClock(run.TimeAlive),
	}
}

func (s *RunOverState) Draw(screen *ebiten.Image) {
	s.battle.Draw(screen)
	dim(screen)

	game := s.battle.Game()
	run := game.ECS.Run
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	title := "DEFEAT"
	if run.Phase == component.PhaseVictory {
		title = "VICTORY"
	}
	drawTitle(screen, title, cx, cy-80)
	for i, line := range Summary(run, s.battle.hud.Text(interfaces.FieldWaveLabel)) {
		drawLine(screen, line, cx, cy-50+i*18)
	}

	x, y := ebiten.CursorPosition()
	s.newRun.Draw(screen, x, y)
	s.backMenu.Draw(screen, x, y)
}

func (s *RunOverState) Exit() {}
