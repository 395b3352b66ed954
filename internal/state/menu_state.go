// internal/state/menu_state.go
package state

import (
	"line-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран. Space начинает забег, C переключает безумный режим.
type MenuState struct {
	sm    *StateMachine
	env   *Env
	crazy bool
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	return &MenuState{sm: sm, env: env, crazy: env.Config.CrazyMode}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		m.crazy = !m.crazy
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		cfg := m.env.Config
		cfg.CrazyMode = m.crazy
		battle, err := NewBattleState(m.sm, m.env, cfg)
		if err != nil {
			m.sm.Fail(err)
			return
		}
		m.sm.SetState(battle)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := config.ScreenWidth / 2
	drawTitle(screen, "LINE DEFENSE", cx, 200)
	drawLine(screen, "SPACE - start", cx, 280)
	mode := "C - crazy mode: off"
	if m.crazy {
		mode = "C - crazy mode: ON"
	}
	drawLine(screen, mode, cx, 300)
	drawLine(screen, "click an enemy to focus fire", cx, 340)
	drawLine(screen, "TAB weapon info   F9/ESC pause", cx, 360)
}

func (m *MenuState) Exit() {}
