// internal/state/env.go
package state

import (
	"image/color"
	"line-defense/internal/component"
	"line-defense/internal/config"
	"line-defense/internal/defs"
	"line-defense/internal/interfaces"
	"line-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Env — то, что живёт дольше одного забега.
type Env struct {
	Config  config.RunConfig
	Library *defs.Library
	Audio   interfaces.Audio
}

func (e *Env) audio() interfaces.Audio {
	if e.Audio == nil {
		return interfaces.NopAudio{}
	}
	return e.Audio
}

// screen — какой экран должен быть поверх боя в данной фазе.
type screen int

const (
	screenBattle screen = iota
	screenLevelUp
	screenEndless
	screenRunOver
)

func screenFor(p component.RunPhase) screen {
	switch p {
	case component.PhaseLevelUp:
		return screenLevelUp
	case component.PhaseEndlessPrompt:
		return screenEndless
	case component.PhaseDefeat, component.PhaseVictory:
		return screenRunOver
	default:
		return screenBattle
	}
}

var dimColor = color.RGBA{0, 0, 0, 140}

func dim(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, config.ScreenWidth, config.ScreenHeight, dimColor, false)
}

func drawTitle(dst *ebiten.Image, s string, cx, y int) {
	w := ui.TextWidth(s)
	ui.DrawOutlined(dst, s, cx-w/2, y, 1, config.HighlightColor, color.Black)
}

func drawLine(dst *ebiten.Image, s string, cx, y int) {
	ui.DrawCentered(dst, s, cx, y, config.TextLightColor)
}
