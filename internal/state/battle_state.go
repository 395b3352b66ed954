// internal/state/battle_state.go
package state

import (
	"fmt"
	"line-defense/internal/app"
	"line-defense/internal/config"
	"line-defense/internal/interfaces"
	"line-defense/internal/types"
	"line-defense/internal/ui"
	"line-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*BattleState)(nil)

// BattleState — основной экран забега.
type BattleState struct {
	sm  *StateMachine
	env *Env

	game    *app.Game
	hud     *ui.HUDStore
	markers *render.MarkerRenderer
	world   *render.WorldRenderer

	defense   *ui.DefenseIndicator
	level     *ui.PlayerLevelIndicator
	wave      *ui.WaveIndicator
	infoPanel *ui.InfoPanel

	selected types.EntityID
}

// NewBattleState starts a run with cfg.
func NewBattleState(sm *StateMachine, env *Env, cfg config.RunConfig) (*BattleState, error) {
	b := &BattleState{
		sm:        sm,
		env:       env,
		hud:       ui.NewHUDStore(),
		markers:   render.NewMarkerRenderer(),
		defense:   ui.NewDefenseIndicator(90, config.ScreenHeight-24),
		level:     ui.NewPlayerLevelIndicator(90, 8),
		wave:      ui.NewWaveIndicator(config.ScreenWidth/2, 26),
		infoPanel: ui.NewInfoPanel(),
	}
	game, err := app.NewGame(app.Options{
		Config:   cfg,
		Library:  env.Library,
		Renderer: b.markers,
		Audio:    env.Audio,
		HUD:      b.hud,
	})
	if err != nil {
		return nil, fmt.Errorf("starting run: %w", err)
	}
	b.game = game
	b.world = render.NewWorldRenderer(game.ECS, b.markers)
	return b, nil
}

// Restart заменяет забег новым с теми же настройками.
func (b *BattleState) Restart() error {
	game, err := b.game.NewRun()
	if err != nil {
		return fmt.Errorf("new run: %w", err)
	}
	b.game = game
	b.world.SetECS(game.ECS)
	b.markers.Clear()
	b.selected = 0
	return nil
}

func (b *BattleState) Game() *app.Game { return b.game }

func (b *BattleState) Enter() {}

func (b *BattleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		b.sm.SetState(NewPauseState(b.sm, b, b.env.audio()))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		b.infoPanel.Toggle()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		b.game.SelectTargetAt(float64(x), float64(y))
	}

	b.game.Update(deltaTime)
	b.Tick(deltaTime)
	b.route()
}

// Tick продвигает только анимации интерфейса. Оверлеи зовут его, чтобы панель доезжала.
func (b *BattleState) Tick(deltaTime float64) {
	if !b.game.Phase().Paused() && !b.game.Phase().Over() {
		b.markers.Update(deltaTime)
	}
	b.infoPanel.Update()
	b.selected = 0
	if e, ok := b.game.WeaponSystem.ManualTarget(); ok {
		b.selected = e.ID
	}
}

// route переключает экран по фазе забега.
func (b *BattleState) route() {
	switch screenFor(b.game.Phase()) {
	case screenLevelUp:
		b.sm.SetState(NewLevelUpState(b.sm, b))
	case screenEndless:
		b.sm.SetState(NewEndlessState(b.sm, b))
	case screenRunOver:
		b.sm.SetState(NewRunOverState(b.sm, b))
	}
}

func (b *BattleState) Draw(screen *ebiten.Image) {
	b.world.Draw(screen, b.selected)

	h := b.hud
	b.defense.Draw(screen, h.Number(interfaces.FieldDefenseHP), h.Number(interfaces.FieldDefenseMaxHP))
	b.level.Draw(screen, h.Int(interfaces.FieldLevel), h.Int(interfaces.FieldXP), h.Int(interfaces.FieldXPNext))
	b.wave.Draw(screen, h.Int(interfaces.FieldWave), h.Text(interfaces.FieldWaveLabel))
	ui.DrawBreakdown(screen, h)
	ui.DrawSkillsBar(screen, h)
	b.infoPanel.Draw(screen, h)

	stats := fmt.Sprintf("%s  kills %d", formatClock(h.Number(interfaces.FieldTimeAlive)), h.Int(interfaces.FieldKills))
	ui.DrawText(screen, stats, config.ScreenWidth-ui.TextWidth(stats)-10, 30, config.TextLightColor)
}

func (b *BattleState) Exit() {}

// formatClock — время забега как m:ss.
func formatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	s := int(seconds)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
