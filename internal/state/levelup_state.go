// internal/state/levelup_state.go
package state

import (
	"line-defense/internal/ui"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*LevelUpState)(nil)

var choiceKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// LevelUpState показывает карточки поверх замороженного боя.
type LevelUpState struct {
	sm     *StateMachine
	battle *BattleState
	cards  *ui.ChoiceCards
}

func NewLevelUpState(sm *StateMachine, battle *BattleState) *LevelUpState {
	return &LevelUpState{sm: sm, battle: battle, cards: ui.NewChoiceCards()}
}

func (s *LevelUpState) Enter() {}

func (s *LevelUpState) Update(deltaTime float64) {
	game := s.battle.Game()
	choices := game.Choices()

	pick := -1
	for i, k := range choiceKeys {
		if i < len(choices) && inpututil.IsKeyJustPressed(k) {
			pick = i
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if i := s.cards.HitTest(x, y, len(choices)); i >= 0 {
			pick = i
		}
	}
	if pick >= 0 {
		if err := game.ChooseSkill(pick); err != nil {
			slog.Warn("choice rejected", "index", pick, "error", err)
		}
	}

	s.battle.Tick(deltaTime)
	if screenFor(game.Phase()) != screenLevelUp {
		s.sm.SetState(s.battle)
		s.battle.route()
	}
}

func (s *LevelUpState) Draw(screen *ebiten.Image) {
	s.battle.Draw(screen)
	dim(screen)

	game := s.battle.Game()
	choices := game.Choices()
	levels := make([]int, len(choices))
	for i, def := range choices {
		levels[i] = game.Progression.Level(def.Key)
	}
	x, y := ebiten.CursorPosition()
	s.cards.Draw(screen, choices, levels, x, y)
}

func (s *LevelUpState) Exit() {}
