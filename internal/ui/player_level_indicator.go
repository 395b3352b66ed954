// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"line-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth  = 300
	xpBarHeight = 6
	borderWidth = 1
)

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// XPRatio is the filled share of the bar, clamped to [0, 1].
func XPRatio(currentXP, xpToNext int) float64 {
	if xpToNext <= 0 {
		return 0
	}
	return max(0, min(1, float64(currentXP)/float64(xpToNext)))
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, config.TextLightColor, true)

	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * XPRatio(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, config.XPBarFillColor, true)
	}

	DrawText(screen, fmt.Sprintf("Lv %d", level), int(i.X+xpBarWidth)+6, int(i.Y)-4, config.TextLightColor)
}
